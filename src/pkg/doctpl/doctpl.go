// Package doctpl is a deliberately literal template engine: every {{key}}
// token is replaced by an HTML-escaped context value, and tokens without a
// context entry are left verbatim so a half-filled template is visibly
// broken instead of silently blank.
package doctpl

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

// Template is raw text with zero or more {{name}} tokens. Loaded once per
// batch per kind, never mutated.
type Template struct {
	Name string
	Text string
}

// RenderContext is the capability-restricted view a document kind exposes to
// the engine: only the placeholder keys valid for that kind.
type RenderContext interface {
	Placeholders() map[string]string
}

/*
Load reads <name>.html from dir, falling back to a minimal built-in document
when the file does not exist. name is the lowercase kind name ("invoice" or
"receipt"); the built-in defaults differ only in the number key and in
whether a due-date line is present.
*/
func Load(dir string, name string) Template {
	path := filepath.Join(dir, name+".html")
	text, err := os.ReadFile(path)
	if err != nil {
		tl.Log(
			tl.Info, palette.Cyan, "Template '%s' not found, using built-in %s template",
			path, name,
		)
		return Template{Name: name, Text: fallback(name)}
	}
	return Template{Name: name, Text: string(text)}
}

// Render substitutes every {{key}} occurrence with the escaped context
// value. Escaping is enforced here, not left to the caller.
func Render(tpl Template, ctx RenderContext) string {
	text := tpl.Text
	for key, value := range ctx.Placeholders() {
		text = strings.ReplaceAll(text, "{{"+key+"}}", html.EscapeString(value))
	}
	return text
}

func fallback(name string) string {
	title := strings.ToUpper(name[:1]) + name[1:]
	numberKey := "receipt_number"
	dueLine := ""
	if name == "invoice" {
		numberKey = "invoice_number"
		dueLine = `<div><span class="strong">Due:</span> {{due_date_long}}</div>`
	}

	return fmt.Sprintf(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>%[1]s {{%[2]s}}</title>
  <style>
    body { font-family: DejaVu Sans, Arial, sans-serif; font-size: 12px; margin: 28px; }
    .hdr { display:flex; justify-content:space-between; margin-bottom:16px; }
    .strong { font-weight:700; }
    .total { font-size: 14px; font-weight: bold; margin-top: 16px; }
    hr { margin: 16px 0; }
  </style>
</head>
<body>
  <div class="hdr">
    <div>
      <h2>%[1]s</h2>
      <div><span class="strong">Number:</span> {{%[2]s}}</div>
      <div><span class="strong">Date:</span> {{date_long}}</div>
      %[3]s
    </div>
    <div style="text-align:right">
      <div class="strong">Client:</div>
      {{client}}
    </div>
  </div>
  <hr>
  <p><span class="strong">Description:</span> {{description}}</p>
  <p class="total">Amount: {{amount}}</p>
</body>
</html>
`, title, numberKey, dueLine)
}
