// Package render is the PDF collaborator: it prints finished HTML through
// headless Chrome (DevTools protocol) and returns the PDF bytes.
package render

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"docmint/src/pkg/docgen"
)

// A4 dimensions in inches, portrait. Chrome swaps them itself when the
// landscape flag is set.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

// ChromeRenderer keeps one browser process alive across rows; each render
// opens a fresh tab. Close must be called by the owner.
type ChromeRenderer struct {
	browser context.Context
	cancel  context.CancelFunc
}

/*
New starts (or attaches to) a headless Chrome instance. Chrome or Chromium
must be available in PATH.
*/
func New() (renderer *ChromeRenderer, e *xerr.Error) {
	browser, cancel := chromedp.NewContext(context.Background())

	// Fail fast if no browser can be started at all.
	if err := chromedp.Run(browser); err != nil {
		cancel()
		e = xerr.NewError(err, "start headless Chrome", "is chrome/chromium in PATH?")
		return
	}

	tl.Log(tl.Info, palette.Cyan, "%s", "Headless Chrome renderer ready")
	return &ChromeRenderer{browser: browser, cancel: cancel}, nil
}

// Close shuts the browser down.
func (r *ChromeRenderer) Close() {
	r.cancel()
}

/*
RenderPDF loads html into a fresh tab and prints it to PDF with the given
page size and orientation. The deadline of ctx bounds the whole operation;
a renderer that hangs fails this row only.
*/
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string, paper docgen.Paper, orientation docgen.Orientation) (pdf []byte, e *xerr.Error) {
	if paper != docgen.PaperA4 {
		err := fmt.Errorf("unsupported paper size %q", paper)
		e = xerr.NewError(err, "render PDF", string(paper))
		return
	}

	tab, cancelTab := chromedp.NewContext(r.browser)
	defer cancelTab()

	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		tab, cancelDeadline = context.WithDeadline(tab, deadline)
		defer cancelDeadline()
	}

	landscape := orientation == docgen.Landscape

	err := chromedp.Run(tab,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithLandscape(landscape).
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		e = xerr.NewError(err, "render PDF via headless Chrome", fmt.Sprintf("%s %s", paper, orientation))
		return nil, e
	}

	return pdf, nil
}
