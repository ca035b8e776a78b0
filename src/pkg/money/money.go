// Package money formats amounts in the configured currency and spells them
// in words. Parsing is split into a strict and a lenient variant so the
// caller decides whether a bad amount is an error or a zero.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tuumbleweed/xerr"

	"docmint/src/pkg/words"
)

// English-locale printer gives us thousands grouping for free.
var printer = message.NewPrinter(language.English)

/*
Parse converts a raw row amount (string or number, whatever the transport
handed us) into a float64. Empty, missing or non-numeric input is an error;
the orchestrator decides whether that rejects the row or degrades to zero.
*/
func Parse(raw any) (amount float64, e *xerr.Error) {
	switch v := raw.(type) {
	case nil:
		err := fmt.Errorf("amount is missing")
		e = xerr.NewError(err, "parse amount", "<nil>")
		return
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			err := fmt.Errorf("amount is empty")
			e = xerr.NewError(err, "parse amount", v)
			return
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			e = xerr.NewError(err, "parse amount", v)
			return
		}
		return parsed, nil
	default:
		err := fmt.Errorf("unsupported amount type %T", raw)
		e = xerr.NewError(err, "parse amount", fmt.Sprintf("%v", raw))
		return
	}
}

// Coerce is the lenient variant: anything that does not parse becomes 0.0.
func Coerce(raw any) float64 {
	amount, e := Parse(raw)
	if e != nil {
		return 0.0
	}
	return amount
}

// Format renders an amount as "<symbol><thousands-grouped, 2 decimals>",
// e.g. Format("A$", 1234.5) == "A$1,234.50".
func Format(symbol string, amount float64) string {
	return symbol + printer.Sprintf("%.2f", amount)
}

/*
InWords spells an amount as sentence-cased English, dollars and cents
pluralized independently:

	InWords(200)  == "Two hundred dollars"
	InWords(1.01) == "One dollar and one cent"

The amount is rounded to whole cents first.
*/
func InWords(amount float64) string {
	totalCents := int64(math.Round(amount * 100))
	dollars := totalCents / 100
	cents := totalCents % 100

	phrase := words.SpellInteger(dollars) + " " + pluralize(dollars, "dollar")
	if cents > 0 {
		phrase += " and " + words.SpellInteger(cents) + " " + pluralize(cents, "cent")
	}
	return sentenceCase(phrase)
}

func pluralize(n int64, label string) string {
	if n == 1 {
		return label
	}
	return label + "s"
}

func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
