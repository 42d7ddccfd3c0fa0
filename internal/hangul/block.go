// Package hangul decomposes precomposed Hangul syllables into their initial,
// vowel and final components and composes them back.
package hangul

import "fmt"

const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3
	initialCount = 19
	vowelCount   = 21
	finalCount   = 28
)

type Initial int

const (
	InitialGiyeok Initial = iota
	InitialSsangGiyeok
	InitialNieun
	InitialDigeut
	InitialSsangDigeut
	InitialRieul
	InitialMieum
	InitialBieup
	InitialSsangBieup
	InitialSiot
	InitialSsangSiot
	InitialIeung
	InitialJieut
	InitialSsangJieut
	InitialChieut
	InitialKieuk
	InitialTieut
	InitialPieup
	InitialHieut
)

type Vowel int

const (
	VowelA Vowel = iota
	VowelAe
	VowelYa
	VowelYae
	VowelEo
	VowelE
	VowelYeo
	VowelYe
	VowelO
	VowelWa
	VowelWae
	VowelOe
	VowelYo
	VowelU
	VowelWo
	VowelWe
	VowelWi
	VowelYu
	VowelEu
	VowelUi
	VowelI
)

// Final is the trailing consonant of a syllable. FinalNone marks an open syllable.
type Final int

const (
	FinalNone Final = iota
	FinalGiyeok
	FinalSsangGiyeok
	FinalGiyeokSiot
	FinalNieun
	FinalNieunJieut
	FinalNieunHieut
	FinalDigeut
	FinalRieul
	FinalRieulGiyeok
	FinalRieulMieum
	FinalRieulBieup
	FinalRieulSiot
	FinalRieulTieut
	FinalRieulPieup
	FinalRieulHieut
	FinalMieum
	FinalBieup
	FinalBieupSiot
	FinalSiot
	FinalSsangSiot
	FinalIeung
	FinalJieut
	FinalChieut
	FinalKieuk
	FinalTieut
	FinalPieup
	FinalHieut
)

var (
	initialJamo = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	vowelJamo   = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	finalJamo   = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

// Jamo returns the compatibility jamo of the initial consonant.
func (i Initial) Jamo() rune {
	if i < 0 || int(i) >= initialCount {
		return 0
	}
	return initialJamo[i]
}

// Jamo returns the compatibility jamo of the vowel.
func (v Vowel) Jamo() rune {
	if v < 0 || int(v) >= vowelCount {
		return 0
	}
	return vowelJamo[v]
}

// Jamo returns the compatibility jamo of the final consonant, or 0 for FinalNone.
func (f Final) Jamo() rune {
	if f < 0 || int(f) >= finalCount {
		return 0
	}
	return finalJamo[f]
}

// Block is a decomposed syllable.
type Block struct {
	Initial Initial
	Vowel   Vowel
	Final   Final
}

// IsHangeul reports whether r is a precomposed Hangul syllable.
func IsHangeul(r rune) bool {
	return r >= syllableBase && r <= syllableLast
}

// Decompose splits a precomposed syllable. It returns false for any other rune.
func Decompose(r rune) (Block, bool) {
	if !IsHangeul(r) {
		return Block{}, false
	}
	code := int(r - syllableBase)
	return Block{
		Initial: Initial(code / (vowelCount * finalCount)),
		Vowel:   Vowel((code / finalCount) % vowelCount),
		Final:   Final(code % finalCount),
	}, true
}

// Compose builds the syllable for the given components.
// Components outside their range produce the replacement character.
func Compose(initial Initial, vowel Vowel, final Final) rune {
	return Block{Initial: initial, Vowel: vowel, Final: final}.Rune()
}

func (b Block) valid() bool {
	return b.Initial >= 0 && int(b.Initial) < initialCount &&
		b.Vowel >= 0 && int(b.Vowel) < vowelCount &&
		b.Final >= 0 && int(b.Final) < finalCount
}

// Rune returns the precomposed syllable.
func (b Block) Rune() rune {
	if !b.valid() {
		return '�'
	}
	return syllableBase + rune((int(b.Initial)*vowelCount+int(b.Vowel))*finalCount+int(b.Final))
}

func (b Block) WithVowel(vowel Vowel) Block {
	b.Vowel = vowel
	return b
}

func (b Block) WithFinal(final Final) Block {
	b.Final = final
	return b
}

func (b Block) String() string {
	if !b.valid() {
		return fmt.Sprintf("Block(%d, %d, %d)", b.Initial, b.Vowel, b.Final)
	}
	return string(b.Rune())
}
