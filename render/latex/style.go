package latex

import (
	"slices"
	"strings"

	"docwright/style"
)

// declarations translates the subset of style properties LaTeX could
// express into macro body, anything else is ignored.
func declarations(st *style.Style) string {
	var switches []string
	body := "#1"

	for name, v := range st.Props {
		switch name {
		case "font-weight":
			if v.Keyword == "bold" || v.Keyword == "bolder" || v.Value >= 600 {
				switches = append(switches, `\bfseries`)
			}
		case "font-style":
			if v.Keyword == "italic" || v.Keyword == "oblique" {
				switches = append(switches, `\itshape`)
			}
		case "font-family":
			if v.Keyword == "monospace" {
				switches = append(switches, `\ttfamily`)
			}
		case "font-variant":
			if v.Keyword == "small-caps" {
				switches = append(switches, `\scshape`)
			}
		case "color":
			if v.IsKeyword() {
				switches = append(switches, `\color{`+v.Keyword+"}")
			}
		case "text-decoration":
			if v.Keyword == "underline" {
				body = `\underline{#1}`
			}
		}
	}
	if len(switches) == 0 {
		return body
	}
	// map iteration order is random, keep output stable
	slices.Sort(switches)
	return "{" + strings.Join(switches, "") + " " + body + "}"
}

