package docgen

// Tagged render contexts, one per document kind. Each exposes exactly the
// placeholder vocabulary valid for that kind; the template engine never sees
// an invoice key on a receipt or vice versa.

// InvoiceContext carries the invoice placeholder set, including the derived
// due date.
type InvoiceContext struct {
	Number      string
	DateISO     string
	DateLong    string
	DueDateISO  string
	DueDateLong string
	Client      string
	Amount      string
	Description string
}

func (c InvoiceContext) Placeholders() map[string]string {
	return map[string]string{
		"invoice_number": c.Number,
		"date_iso":       c.DateISO,
		"date_long":      c.DateLong,
		"due_date_iso":   c.DueDateISO,
		"due_date_long":  c.DueDateLong,
		"client":         c.Client,
		"amount":         c.Amount,
		"description":    c.Description,
	}
}

// ReceiptContext carries the receipt placeholder set, including the amount
// spelled in words.
type ReceiptContext struct {
	Number      string
	DateISO     string
	DateLong    string
	Client      string
	Amount      string
	AmountWords string
	Description string
}

func (c ReceiptContext) Placeholders() map[string]string {
	return map[string]string{
		"receipt_number": c.Number,
		"date_iso":       c.DateISO,
		"date_long":      c.DateLong,
		"client":         c.Client,
		"amount":         c.Amount,
		"amount_words":   c.AmountWords,
		"description":    c.Description,
	}
}
