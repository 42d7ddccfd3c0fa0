package translate

import (
	"strings"

	"github.com/fatih/color"
)

const (
	// A meaning starting with SourceEscape marks the word but keeps the source text.
	SourceEscape = "{"
	// A meaning starting with LiteralEscape replaces the word without brackets.
	LiteralEscape = "<"
)

// Renderer joins the parts of a text back together, replacing translated
// parts with their primary meaning.
type Renderer struct {
	highlight *color.Color
}

// NewRenderer returns a renderer that paints translated parts with
// highlight. A nil highlight renders plain text.
func NewRenderer(highlight *color.Color) *Renderer {
	return &Renderer{highlight: highlight}
}

// Translate renders text without highlighting.
func Translate(text string, m Matcher) string {
	return NewRenderer(nil).Translate(text, m)
}

func (r *Renderer) Translate(text string, m Matcher) string {
	rendered, _ := r.translate(text, m)
	return rendered
}

// translate also reports whether the plain rendering differs from text.
func (r *Renderer) translate(text string, m Matcher) (string, bool) {
	var b strings.Builder
	changed := false
	for part := range Split(text, m) {
		if !part.Translated() {
			b.WriteString(part.Text)
			continue
		}
		plain := renderPart(part)
		if plain != part.Text {
			changed = true
		}
		if r.highlight != nil {
			b.WriteString(r.highlight.Sprint(plain))
		} else {
			b.WriteString(plain)
		}
	}
	return b.String(), changed
}

// renderPart panics when the definition has no meanings.
func renderPart(part Part) string {
	meaning := part.Def.PrimaryMeaning()
	switch {
	case strings.HasPrefix(meaning, SourceEscape):
		return SourceEscape + part.Text
	case strings.HasPrefix(meaning, LiteralEscape):
		return meaning
	default:
		return "[" + meaning + "]"
	}
}
