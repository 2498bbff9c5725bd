package text

import (
	"strings"

	"docwright/label"
)

// piece is either literal text or a reference which text is taken at
// flush time.
type piece struct {
	text string
	ref  *label.Label
}

// inlineText collects runs of paragraph, list item or table cell.
type inlineText struct {
	pieces []piece
}

func (t *inlineText) add(s string) {
	t.pieces = append(t.pieces, piece{text: s})
}

func (t *inlineText) addRef(l *label.Label) {
	t.pieces = append(t.pieces, piece{ref: l})
}

func (t *inlineText) empty() bool {
	return len(t.pieces) == 0
}

func (t *inlineText) reset() {
	t.pieces = nil
}

func (t *inlineText) String() string {
	var sb strings.Builder
	for _, p := range t.pieces {
		if p.ref != nil {
			sb.WriteString(p.ref.ReferenceText())
			continue
		}
		sb.WriteString(p.text)
	}
	return sb.String()
}
