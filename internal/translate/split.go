// Package translate substitutes dictionary words in Korean text with their
// meanings while keeping every other character of the text as it was.
package translate

import (
	"iter"
	"unicode/utf8"

	"github.com/at-ishikawa/kor/internal/dictionary"
	"github.com/at-ishikawa/kor/internal/wordlist"
)

// Matcher finds the longest dictionary key at the start of a text.
type Matcher interface {
	FindLongestMatch(text string) (dictionary.Match, bool)
}

// Part is a span of the source text. Def is nil for untranslated spans.
type Part struct {
	Text  string
	Start int
	Def   *wordlist.Def
}

func (p Part) Translated() bool {
	return p.Def != nil
}

// End returns the byte offset just past the span.
func (p Part) End() int {
	return p.Start + len(p.Text)
}

// Split scans text from left to right, taking the longest dictionary key at
// each offset. Characters between two matches are merged into one
// untranslated part, so concatenating every Text gives back text.
func Split(text string, m Matcher) iter.Seq[Part] {
	return func(yield func(Part) bool) {
		pending, offset := 0, 0
		for offset < len(text) {
			match, ok := m.FindLongestMatch(text[offset:])
			if !ok || match.Text == "" {
				_, width := utf8.DecodeRuneInString(text[offset:])
				offset += width
				continue
			}

			if pending < offset {
				if !yield(Part{Text: text[pending:offset], Start: pending}) {
					return
				}
			}
			if !yield(Part{Text: match.Text, Start: offset, Def: match.Def}) {
				return
			}
			offset += len(match.Text)
			pending = offset
		}
		if pending < len(text) {
			yield(Part{Text: text[pending:], Start: pending})
		}
	}
}
