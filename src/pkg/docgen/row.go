package docgen

import (
	"regexp"
	"strings"
)

// Row is one raw, untrusted line of user input. Amount stays `any` because
// the transport may deliver it as a string ("120.00") or a JSON number.
type Row struct {
	Date        string `json:"date"`
	Number      string `json:"number"`
	Client      string `json:"client"`
	Amount      any    `json:"amount"`
	Description string `json:"description"`
}

/*
NormalizeRows trims every string field and drops rows where all trimmed
values are empty. Order of the remaining rows is preserved. The returned
slice is fresh; the input is never mutated.
*/
func NormalizeRows(rows []Row) []Row {
	result := make([]Row, 0, len(rows))
	for _, row := range rows {
		normalized := Row{
			Date:        strings.TrimSpace(row.Date),
			Number:      strings.TrimSpace(row.Number),
			Client:      strings.TrimSpace(row.Client),
			Amount:      trimAmount(row.Amount),
			Description: strings.TrimSpace(row.Description),
		}
		if normalized.Date == "" && normalized.Number == "" && normalized.Client == "" &&
			amountEmpty(normalized.Amount) && normalized.Description == "" {
			continue
		}
		result = append(result, normalized)
	}
	return result
}

func trimAmount(raw any) any {
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return raw
}

// amountEmpty reports whether the amount field is absent. A numeric zero is
// present, just zero.
func amountEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeNumber makes a document number filesystem-safe: every character
// outside [A-Za-z0-9_-] becomes "_", and an empty number falls back to the
// kind placeholder ("INV"/"REC").
func SanitizeNumber(number string, kind Kind) string {
	if number == "" {
		return kind.FallbackNumber()
	}
	return unsafeFilenameChars.ReplaceAllString(number, "_")
}
