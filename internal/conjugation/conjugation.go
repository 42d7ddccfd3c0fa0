// Package conjugation expands a Korean verb or adjective stem into the
// inflected surface forms most often met in running text.
package conjugation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/kor/internal/hangul"
)

// ErrNotHangeul is returned when the last character of a stem is not a
// Hangul syllable. The stem itself is still returned as the only form.
var ErrNotHangeul = errors.New("stem does not end with a hangeul syllable")

// Generate returns the stem followed by its conjugated forms. Only the last
// syllable of the stem is rewritten; ㅂ-final stems also gain a second syllable.
func Generate(stem string) ([]string, error) {
	forms := newFormSet(stem)

	runes := []rune(stem)
	if len(runes) == 0 {
		return forms.list, fmt.Errorf("%w: %q", ErrNotHangeul, stem)
	}
	prefix := string(runes[:len(runes)-1])
	last, ok := hangul.Decompose(runes[len(runes)-1])
	if !ok {
		return forms.list, fmt.Errorf("%w: %q", ErrNotHangeul, stem)
	}

	withLast := func(blocks ...hangul.Block) {
		var b strings.Builder
		b.WriteString(prefix)
		for _, block := range blocks {
			b.WriteRune(block.Rune())
		}
		forms.add(b.String())
	}

	switch last.Final {
	case hangul.FinalNone:
		withLast(last.WithFinal(hangul.FinalNieun)) // past / descriptive
		withLast(last.WithFinal(hangul.FinalRieul)) // future
		withLast(last.WithFinal(hangul.FinalBieup)) // formal ending
		if contracted, ok := contractedVowels[last.Vowel]; ok {
			withLast(last.WithVowel(contracted))
			withLast(last.WithVowel(contracted).WithFinal(hangul.FinalSsangSiot))
		} else {
			withLast(last.WithFinal(hangul.FinalRieul))
			withLast(last.WithFinal(hangul.FinalSsangSiot))
		}
	case hangul.FinalRieul:
		withLast(last.WithFinal(hangul.FinalNone))
		withLast(last.WithFinal(hangul.FinalNieun))
	case hangul.FinalBieup:
		open := last.WithFinal(hangul.FinalNone)
		for _, ending := range bieupEndings {
			withLast(open, ending)
		}
	}
	return forms.list, nil
}

// contractedVowels maps the stem vowel to the vowel it becomes when fused
// with the 아/어 ending: 하 -> 해, 마시 -> 마셔, 쓰 -> 써.
var contractedVowels = map[hangul.Vowel]hangul.Vowel{
	hangul.VowelA:  hangul.VowelAe,
	hangul.VowelI:  hangul.VowelYeo,
	hangul.VowelEu: hangul.VowelEo,
}

// bieupEndings are appended to ㅂ-irregular stems after the ㅂ is dropped:
// 춥 -> 추우, 추운, 추울, 추워, 추웠.
var bieupEndings = []hangul.Block{
	{Initial: hangul.InitialIeung, Vowel: hangul.VowelU, Final: hangul.FinalNone},
	{Initial: hangul.InitialIeung, Vowel: hangul.VowelU, Final: hangul.FinalNieun},
	{Initial: hangul.InitialIeung, Vowel: hangul.VowelU, Final: hangul.FinalRieul},
	{Initial: hangul.InitialIeung, Vowel: hangul.VowelWo, Final: hangul.FinalNone},
	{Initial: hangul.InitialIeung, Vowel: hangul.VowelWo, Final: hangul.FinalSsangSiot},
}

type formSet struct {
	seen map[string]struct{}
	list []string
}

func newFormSet(stem string) *formSet {
	return &formSet{
		seen: map[string]struct{}{stem: {}},
		list: []string{stem},
	}
}

func (s *formSet) add(form string) {
	if _, ok := s.seen[form]; ok {
		return
	}
	s.seen[form] = struct{}{}
	s.list = append(s.list, form)
}
