package docgen

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tuumbleweed/xerr"
)

// fakeRenderer records each HTML it receives and fails on demand.
type fakeRenderer struct {
	htmls    []string
	failWhen string // fail when the HTML contains this marker
}

func (r *fakeRenderer) RenderPDF(ctx context.Context, html string, paper Paper, orientation Orientation) ([]byte, *xerr.Error) {
	r.htmls = append(r.htmls, html)
	if r.failWhen != "" && strings.Contains(html, r.failWhen) {
		return nil, xerr.NewError(fmt.Errorf("boom"), "render PDF", "fake")
	}
	return []byte("%PDF-fake " + string(orientation)), nil
}

type memStore struct {
	saved []string
}

func (s *memStore) Save(name string, data []byte) *xerr.Error {
	s.saved = append(s.saved, name)
	return nil
}

func newTestGenerator(t *testing.T) (*Generator, *fakeRenderer, *memStore) {
	t.Helper()
	renderer := &fakeRenderer{}
	st := &memStore{}
	return &Generator{
		Renderer:       renderer,
		Store:          st,
		TemplateDir:    t.TempDir(), // empty: built-in templates
		Location:       time.UTC,
		CurrencySymbol: "A$",
		RenderTimeout:  time.Second,
	}, renderer, st
}

func TestGenerateBatchIsolation(t *testing.T) {
	g, _, st := newTestGenerator(t)

	outcome := g.Generate(context.Background(), BatchRequest{
		Invoices: []Row{
			{Date: "2025-09-01", Number: "INV-101", Client: "Acme", Amount: "120.00"},
			{Date: "2025-09-01", Number: "", Client: "Acme", Amount: "125.00"},
			{Date: "2025-09-01", Number: "INV-103", Client: "Acme", Amount: "130.00"},
		},
	})

	if len(outcome.Generated) != 2 {
		t.Fatalf("expected 2 generated files, got %d: %v", len(outcome.Generated), outcome.Generated)
	}
	if len(outcome.Messages) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(outcome.Messages), outcome.Messages)
	}
	if !strings.Contains(outcome.Messages[0], "row 2") || !strings.Contains(outcome.Messages[0], "number") {
		t.Fatalf("diagnostic does not name row 2 / number: %q", outcome.Messages[0])
	}
	if outcome.Generated[0] != "Invoice INV-101.pdf" || outcome.Generated[1] != "Invoice INV-103.pdf" {
		t.Fatalf("unexpected filenames: %v", outcome.Generated)
	}
	if len(st.saved) != 2 {
		t.Fatalf("store should hold 2 documents, has %d", len(st.saved))
	}
}

func TestGenerateRendererFailureIsolatesRow(t *testing.T) {
	g, renderer, _ := newTestGenerator(t)
	renderer.failWhen = "Broken Pty"

	outcome := g.Generate(context.Background(), BatchRequest{
		Receipts: []Row{
			{Date: "2025-09-01", Number: "REC-1", Client: "Acme", Amount: "10"},
			{Date: "2025-09-01", Number: "REC-2", Client: "Broken Pty", Amount: "20"},
			{Date: "2025-09-01", Number: "REC-3", Client: "Acme", Amount: "30"},
		},
	})

	if len(outcome.Generated) != 2 {
		t.Fatalf("expected 2 generated, got %v", outcome.Generated)
	}
	if len(outcome.Messages) != 1 || !strings.Contains(outcome.Messages[0], "REC-2") {
		t.Fatalf("expected one diagnostic naming REC-2, got %v", outcome.Messages)
	}
	if outcome.Generated[1] != "Cash Receipt REC-3.pdf" {
		t.Fatalf("row after the failure did not generate: %v", outcome.Generated)
	}
}

func TestGenerateEmptyBatch(t *testing.T) {
	g, _, _ := newTestGenerator(t)

	outcome := g.Generate(context.Background(), BatchRequest{
		Invoices: []Row{{Date: "  ", Number: "", Client: "", Amount: "", Description: " "}},
	})

	if len(outcome.Generated) != 0 {
		t.Fatalf("expected no generated files, got %v", outcome.Generated)
	}
	if len(outcome.Messages) != 1 || !strings.Contains(outcome.Messages[0], "Nothing to generate") {
		t.Fatalf("expected single nothing-to-generate message, got %v", outcome.Messages)
	}
}

func TestGenerateLenientDefaultsBadInput(t *testing.T) {
	g, renderer, _ := newTestGenerator(t)

	outcome := g.Generate(context.Background(), BatchRequest{
		Invoices: []Row{{Date: "not-a-date", Number: "INV-1", Client: "Acme", Amount: "junk"}},
	})

	if len(outcome.Generated) != 1 || len(outcome.Messages) != 0 {
		t.Fatalf("lenient mode should still generate: %+v", outcome)
	}
	if !strings.Contains(renderer.htmls[0], "A$0.00") {
		t.Fatalf("bad amount should render as zero, html: %q", renderer.htmls[0])
	}
}

func TestGenerateStrictRejectsBadInput(t *testing.T) {
	g, _, _ := newTestGenerator(t)
	g.Strict = true

	outcome := g.Generate(context.Background(), BatchRequest{
		Invoices: []Row{
			{Date: "2025-09-01", Number: "INV-1", Client: "Acme", Amount: "junk"},
			{Date: "not-a-date", Number: "INV-2", Client: "Acme", Amount: "10"},
			{Date: "", Number: "INV-3", Client: "Acme", Amount: "10"},
		},
	})

	if len(outcome.Generated) != 0 {
		t.Fatalf("strict mode generated from bad rows: %v", outcome.Generated)
	}
	if len(outcome.Messages) != 3 {
		t.Fatalf("expected 3 diagnostics, got %v", outcome.Messages)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	g, _, _ := newTestGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := g.Generate(ctx, BatchRequest{
		Invoices: []Row{{Date: "2025-09-01", Number: "INV-1", Client: "Acme", Amount: "10"}},
		Receipts: []Row{{Date: "2025-09-01", Number: "REC-1", Client: "Acme", Amount: "10"}},
	})

	if len(outcome.Generated) != 0 {
		t.Fatalf("cancelled batch still generated: %v", outcome.Generated)
	}
	if len(outcome.Messages) != 1 || !strings.Contains(outcome.Messages[0], "cancelled") {
		t.Fatalf("expected single cancellation message, got %v", outcome.Messages)
	}
}

func TestGenerateEscapesClientMarkup(t *testing.T) {
	g, renderer, _ := newTestGenerator(t)

	g.Generate(context.Background(), BatchRequest{
		Invoices: []Row{{Date: "2025-09-01", Number: "INV-1", Client: "<script>alert(1)</script>", Amount: "10"}},
	})

	if strings.Contains(renderer.htmls[0], "<script>alert(1)</script>") {
		t.Fatal("client markup reached the renderer unescaped")
	}
	if !strings.Contains(renderer.htmls[0], "&lt;script&gt;") {
		t.Fatal("client markup not escaped")
	}
}

func TestReceiptContextExposesAmountWords(t *testing.T) {
	g, renderer, _ := newTestGenerator(t)
	g.InjectCSS = true

	outcome := g.Generate(context.Background(), BatchRequest{
		Receipts: []Row{{Date: "2025-09-01", Number: "REC-1", Client: "Acme", Amount: "200"}},
	})

	if len(outcome.Generated) != 1 {
		t.Fatalf("expected one receipt, got %+v", outcome)
	}
	html := renderer.htmls[0]
	if !strings.Contains(html, "@page { size: A4 landscape") {
		t.Fatalf("page CSS not injected for receipt: %q", html)
	}
	// Built-in receipt template has no amount_words token, so check the
	// context directly too.
	ctx := g.buildContext(Receipt, Row{Date: "2025-09-01", Number: "REC-1", Amount: "200"})
	placeholders := ctx.Placeholders()
	if placeholders["amount_words"] != "Two hundred dollars" {
		t.Fatalf("amount_words = %q", placeholders["amount_words"])
	}
	if _, ok := placeholders["due_date_iso"]; ok {
		t.Fatal("receipt context must not expose invoice-only keys")
	}
}

func TestInvoiceContextDerivesDueDate(t *testing.T) {
	g, _, _ := newTestGenerator(t)
	ctx := g.buildContext(Invoice, Row{Date: "2025-09-01", Number: "INV-1", Amount: "120"})
	placeholders := ctx.Placeholders()
	if placeholders["due_date_iso"] != "2025-09-08" {
		t.Fatalf("due_date_iso = %q, want 2025-09-08", placeholders["due_date_iso"])
	}
	if placeholders["due_date_long"] != "8 September 2025" {
		t.Fatalf("due_date_long = %q", placeholders["due_date_long"])
	}
	if _, ok := placeholders["amount_words"]; ok {
		t.Fatal("invoice context must not expose receipt-only keys")
	}
}
