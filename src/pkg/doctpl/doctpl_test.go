package doctpl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type mapContext map[string]string

func (m mapContext) Placeholders() map[string]string { return m }

func TestRenderReplacesEveryKnownPlaceholder(t *testing.T) {
	tpl := Template{Name: "invoice", Text: "{{invoice_number}} {{date_iso}} {{date_long}} {{due_date_iso}} {{due_date_long}} {{client}} {{amount}} {{description}}"}
	ctx := mapContext{
		"invoice_number": "INV-101",
		"date_iso":       "2025-09-01",
		"date_long":      "1 September 2025",
		"due_date_iso":   "2025-09-08",
		"due_date_long":  "8 September 2025",
		"client":         "Acme Pty Ltd",
		"amount":         "A$120.00",
		"description":    "Weekly service fee",
	}
	got := Render(tpl, ctx)
	if strings.Contains(got, "{{") {
		t.Fatalf("rendered output still contains placeholder tokens: %q", got)
	}
	if !strings.Contains(got, "INV-101") || !strings.Contains(got, "8 September 2025") {
		t.Fatalf("rendered output missing substituted values: %q", got)
	}
}

func TestRenderLeavesUnknownPlaceholderVerbatim(t *testing.T) {
	tpl := Template{Name: "invoice", Text: "<p>{{client}} {{mystery_token}}</p>"}
	got := Render(tpl, mapContext{"client": "Acme"})
	if !strings.Contains(got, "{{mystery_token}}") {
		t.Fatalf("unknown placeholder was not left verbatim: %q", got)
	}
}

func TestRenderEscapesValues(t *testing.T) {
	tpl := Template{Name: "receipt", Text: "<div>{{client}}</div>"}
	got := Render(tpl, mapContext{"client": `<script>alert("x")</script>`})
	if strings.Contains(got, "<script>") {
		t.Fatalf("client value rendered as live markup: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("client value not HTML-escaped: %q", got)
	}
}

func TestLoadPrefersFileOverFallback(t *testing.T) {
	dir := t.TempDir()
	custom := "<html><body>{{invoice_number}}</body></html>"
	if err := os.WriteFile(filepath.Join(dir, "invoice.html"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	tpl := Load(dir, "invoice")
	if tpl.Text != custom {
		t.Fatalf("Load did not read the template file, got %q", tpl.Text)
	}
}

func TestLoadFallbackDiffersPerKind(t *testing.T) {
	dir := t.TempDir() // empty, both kinds fall back

	invoice := Load(dir, "invoice")
	if !strings.Contains(invoice.Text, "{{invoice_number}}") {
		t.Error("invoice fallback lacks {{invoice_number}}")
	}
	if !strings.Contains(invoice.Text, "{{due_date_long}}") {
		t.Error("invoice fallback lacks the due-date line")
	}

	receipt := Load(dir, "receipt")
	if !strings.Contains(receipt.Text, "{{receipt_number}}") {
		t.Error("receipt fallback lacks {{receipt_number}}")
	}
	if strings.Contains(receipt.Text, "due_date") {
		t.Error("receipt fallback should have no due-date line")
	}
}

func TestInjectPageCSS(t *testing.T) {
	withHead := "<html><HEAD><title>x</title></HEAD><body></body></html>"
	got := InjectPageCSS(withHead, "A4", "portrait", 12)
	if !strings.Contains(got, "@page { size: A4 portrait; margin: 12mm") {
		t.Fatalf("page rule missing: %q", got)
	}
	styleAt := strings.Index(got, "<style>")
	headAt := strings.Index(got, "</HEAD>")
	if styleAt == -1 || headAt == -1 || styleAt > headAt {
		t.Fatalf("style block not inserted before closing head tag: %q", got)
	}

	headless := "<body>hello</body>"
	got = InjectPageCSS(headless, "A4", "landscape", 10)
	if !strings.HasPrefix(got, "<style>") {
		t.Fatalf("style block not prepended for headless document: %q", got)
	}
}

func TestInjectPageCSSClampsMargin(t *testing.T) {
	got := InjectPageCSS("<body></body>", "A4", "portrait", 500)
	if !strings.Contains(got, "margin: 50mm") {
		t.Fatalf("margin not clamped: %q", got)
	}
}
