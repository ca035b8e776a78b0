package docgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"docmint/src/pkg/dates"
	"docmint/src/pkg/doctpl"
	"docmint/src/pkg/money"
)

// Invoice due dates fall one week after the invoice date.
const dueDays = 7

// Renderer is the external PDF collaborator. It gets a finished HTML string
// plus page geometry and hands back the PDF bytes. The generator is its only
// caller and always passes a bounded context.
type Renderer interface {
	RenderPDF(ctx context.Context, html string, paper Paper, orientation Orientation) ([]byte, *xerr.Error)
}

// Store persists one generated document under its final filename.
type Store interface {
	Save(name string, data []byte) *xerr.Error
}

// BatchRequest carries the two ordered row sequences of one submission.
type BatchRequest struct {
	Invoices []Row `json:"invoice"`
	Receipts []Row `json:"receipt"`
}

// Outcome accumulates across the whole batch: filenames actually written
// plus non-fatal diagnostics, both in input order.
type Outcome struct {
	Generated []string `json:"generated"`
	Messages  []string `json:"messages"`
}

// Generator wires the per-row pipeline together. Strict turns the silent
// bad-amount/bad-date defaults into validation failures.
type Generator struct {
	Renderer       Renderer
	Store          Store
	TemplateDir    string
	Location       *time.Location
	CurrencySymbol string
	Paper          Paper
	Strict         bool
	RenderTimeout  time.Duration
	InjectCSS      bool
	PageMarginMM   int
}

/*
Generate runs the whole batch: normalize both row sets, then per row
validate, resolve dates, format the amount, render the template and hand the
HTML to the renderer. A failing row records a diagnostic and the batch moves
on; no row failure aborts the batch. Cancelling ctx stops before the next
unrendered row.
*/
func (g *Generator) Generate(ctx context.Context, req BatchRequest) Outcome {
	out := Outcome{}

	invoices := NormalizeRows(req.Invoices)
	receipts := NormalizeRows(req.Receipts)

	if len(invoices) == 0 && len(receipts) == 0 {
		out.Messages = append(out.Messages, "Nothing to generate - please add at least one row.")
		return out
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "%s: '%d' invoice rows, '%d' receipt rows",
		"Starting batch generation", len(invoices), len(receipts),
	)

	if g.generateKind(ctx, Invoice, invoices, &out) {
		return out
	}
	g.generateKind(ctx, Receipt, receipts, &out)

	tl.Log(
		tl.Notice1, palette.GreenBold, "Batch done. Generated: '%d', diagnostics: '%d'",
		len(out.Generated), len(out.Messages),
	)
	return out
}

// generateKind processes one kind's rows in input order. Returns true when
// the batch was cancelled so the caller can stop the remaining kind too.
func (g *Generator) generateKind(ctx context.Context, kind Kind, rows []Row, out *Outcome) (cancelled bool) {
	if len(rows) == 0 {
		return false
	}

	tpl := doctpl.Load(g.TemplateDir, kind.Name())

	for index, row := range rows {
		if ctx.Err() != nil {
			out.Messages = append(out.Messages, fmt.Sprintf(
				"Batch cancelled; %s row %d and later rows were not rendered.",
				kind.Name(), index+1,
			))
			return true
		}

		if msg := g.validateRow(kind, index, row); msg != "" {
			tl.Log(tl.Warning, palette.YellowBold, "%s", msg)
			out.Messages = append(out.Messages, msg)
			continue
		}

		renderCtx := g.buildContext(kind, row)
		html := doctpl.Render(tpl, renderCtx)
		if g.InjectCSS {
			html = doctpl.InjectPageCSS(html, string(g.paper()), string(kind.Orientation()), g.PageMarginMM)
		}

		filename := fmt.Sprintf("%s %s.pdf", kind.Prefix(), SanitizeNumber(row.Number, kind))

		pdf, e := g.renderRow(ctx, html, kind)
		if e != nil {
			msg := fmt.Sprintf("%s %s: %s", kind.Prefix(), row.Number, e)
			tl.Log(tl.Error, palette.RedBold, "%s", msg)
			out.Messages = append(out.Messages, msg)
			continue
		}

		if e := g.Store.Save(filename, pdf); e != nil {
			msg := fmt.Sprintf("%s %s: %s", kind.Prefix(), row.Number, e)
			tl.Log(tl.Error, palette.RedBold, "%s", msg)
			out.Messages = append(out.Messages, msg)
			continue
		}

		tl.Log(tl.Info1, palette.Green, "%s '%s'", "Generated", filename)
		out.Generated = append(out.Generated, filename)
	}
	return false
}

// renderRow invokes the external renderer under the configured timeout so a
// hung renderer fails the row instead of the batch.
func (g *Generator) renderRow(ctx context.Context, html string, kind Kind) ([]byte, *xerr.Error) {
	if g.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.RenderTimeout)
		defer cancel()
	}
	return g.Renderer.RenderPDF(ctx, html, g.paper(), kind.Orientation())
}

func (g *Generator) validateRow(kind Kind, index int, row Row) string {
	var missing []string
	if row.Number == "" {
		missing = append(missing, "number")
	}
	if amountEmpty(row.Amount) {
		missing = append(missing, "amount")
	}
	if g.Strict && row.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return fmt.Sprintf(
			"%s row %d missing required fields (%s). Skipped.",
			kind.Prefix(), index+1, strings.Join(missing, "/"),
		)
	}

	if g.Strict {
		if _, e := money.Parse(row.Amount); e != nil {
			return fmt.Sprintf(
				"%s row %d: amount %q is not numeric. Skipped.",
				kind.Prefix(), index+1, fmt.Sprintf("%v", row.Amount),
			)
		}
		if _, e := dates.ResolveStrict(row.Date, g.Location); e != nil {
			return fmt.Sprintf(
				"%s row %d: date %q is not in a recognized format. Skipped.",
				kind.Prefix(), index+1, row.Date,
			)
		}
	}
	return ""
}

// buildContext resolves the date and formats the amount for one validated
// row. In lenient mode a garbled date becomes today and a garbled amount
// becomes zero, matching the documented degradation policy.
func (g *Generator) buildContext(kind Kind, row Row) doctpl.RenderContext {
	date := dates.Resolve(row.Date, g.Location)
	amount := money.Coerce(row.Amount)

	if kind == Invoice {
		due := date.AddDays(dueDays)
		return InvoiceContext{
			Number:      row.Number,
			DateISO:     date.ISO,
			DateLong:    date.Long,
			DueDateISO:  due.ISO,
			DueDateLong: due.Long,
			Client:      row.Client,
			Amount:      money.Format(g.CurrencySymbol, amount),
			Description: row.Description,
		}
	}

	return ReceiptContext{
		Number:      row.Number,
		DateISO:     date.ISO,
		DateLong:    date.Long,
		Client:      row.Client,
		Amount:      money.Format(g.CurrencySymbol, amount),
		AmountWords: money.InWords(amount),
		Description: row.Description,
	}
}

func (g *Generator) paper() Paper {
	if g.Paper == "" {
		return PaperA4
	}
	return g.Paper
}
