package doctpl

import (
	"fmt"
	"regexp"

	"docmint/src/pkg/util"
)

var headClose = regexp.MustCompile(`(?i)</head>`)

/*
InjectPageCSS wraps rendered HTML with print-oriented styling: page size and
orientation, margins, and responsive table rules. The style block goes right
before the closing head tag, or at the very front when the document has no
head. Opt-in; the baseline flow does not call this.
*/
func InjectPageCSS(html string, paper string, orientation string, marginMM int) string {
	marginMM = util.Clamp(marginMM, 0, 50)
	pageCSS := fmt.Sprintf(`@page { size: %s %s; margin: %dmm 16mm %dmm 16mm; }
html,body{margin:0;padding:0;box-sizing:border-box;}
table{width:100%%;table-layout:fixed;border-collapse:collapse;} th,td{word-wrap:break-word;}`,
		paper, orientation, marginMM, marginMM)

	style := "<style>" + pageCSS + "</style>"
	if loc := headClose.FindStringIndex(html); loc != nil {
		return html[:loc[0]] + style + html[loc[0]:]
	}
	return style + html
}
