// Package docgen turns normalized invoice/receipt rows into rendered PDF
// documents, one per row, isolating every row failure into the batch
// outcome instead of aborting.
package docgen

// Paper is the page size handed to the external renderer.
type Paper string

const PaperA4 Paper = "A4"

// Orientation of the rendered page. Fixed per document kind.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Kind selects the due-date logic, filename prefix, orientation and template
// default that apply to a row.
type Kind int

const (
	Invoice Kind = iota
	Receipt
)

// Name is the lowercase kind name, also the template file base name
// (<name>.html).
func (k Kind) Name() string {
	if k == Invoice {
		return "invoice"
	}
	return "receipt"
}

// Prefix is the human-readable filename prefix.
func (k Kind) Prefix() string {
	if k == Invoice {
		return "Invoice"
	}
	return "Cash Receipt"
}

// FallbackNumber substitutes for a document number that sanitizes to nothing.
func (k Kind) FallbackNumber() string {
	if k == Invoice {
		return "INV"
	}
	return "REC"
}

// Orientation is portrait for invoices, landscape for receipts.
func (k Kind) Orientation() Orientation {
	if k == Invoice {
		return Portrait
	}
	return Landscape
}
