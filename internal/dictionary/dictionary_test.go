package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/kor/internal/conjugation"
	"github.com/at-ishikawa/kor/internal/wordlist"
)

func TestDictionary_AddDefinitions(t *testing.T) {
	tests := []struct {
		name         string
		defs         []wordlist.Def
		wantKeys     map[string]string
		wantMissing  []string
		wantWarnings []error
	}{
		{
			name: "plain noun is indexed verbatim",
			defs: []wordlist.Def{
				{Hangeul: "학교", Meanings: []string{"school"}},
			},
			wantKeys:    map[string]string{"학교": "학교"},
			wantMissing: []string{"학", "학교에"},
		},
		{
			name: "하다 is stripped",
			defs: []wordlist.Def{
				{Hangeul: "공부하다", Meanings: []string{"study"}},
			},
			wantKeys:    map[string]string{"공부": "공부하다"},
			wantMissing: []string{"공부하다", "공부해"},
		},
		{
			name: "다 stems are conjugated",
			defs: []wordlist.Def{
				{Hangeul: "가다", Meanings: []string{"go"}},
			},
			wantKeys: map[string]string{
				"가": "가다", "간": "가다", "갈": "가다", "갑": "가다", "개": "가다", "갰": "가다",
			},
			wantMissing: []string{"가다"},
		},
		{
			name: "aliases share the definition",
			defs: []wordlist.Def{
				{Hangeul: "유치하다", Aliases: []string{"유치", "어리다"}, Meanings: []string{"childish"}},
			},
			wantKeys: map[string]string{
				"유치": "유치하다", "어리": "유치하다", "어린": "유치하다", "어려": "유치하다",
			},
		},
		{
			name: "later definitions replace earlier ones",
			defs: []wordlist.Def{
				{Hangeul: "사다", Meanings: []string{"buy"}},
				{Hangeul: "사", Meanings: []string{"four"}},
			},
			wantKeys: map[string]string{"사": "사", "산": "사다"},
		},
		{
			name: "definitions without meanings are skipped",
			defs: []wordlist.Def{
				{Hangeul: "학교"},
			},
			wantMissing:  []string{"학교"},
			wantWarnings: []error{ErrNoMeanings},
		},
		{
			name: "empty keys are skipped",
			defs: []wordlist.Def{
				{Hangeul: "하다", Aliases: []string{"다", ""}, Meanings: []string{"do"}},
			},
			wantMissing:  []string{"하", "다", ""},
			wantWarnings: []error{ErrEmptyKey, ErrEmptyKey, ErrEmptyKey},
		},
		{
			name: "non-hangul stem is kept unconjugated",
			defs: []wordlist.Def{
				{Hangeul: "OK다", Meanings: []string{"be ok"}},
			},
			wantKeys:     map[string]string{"OK": "OK다"},
			wantWarnings: []error{conjugation.ErrNotHangeul},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := New()
			warnings := dict.AddDefinitions(tt.defs)

			require.Len(t, warnings, len(tt.wantWarnings))
			for i, want := range tt.wantWarnings {
				assert.ErrorIs(t, warnings[i], want)
			}
			for key, hangeul := range tt.wantKeys {
				def, ok := dict.Lookup(key)
				require.True(t, ok, "key %q", key)
				assert.Equal(t, hangeul, def.Hangeul, "key %q", key)
			}
			for _, key := range tt.wantMissing {
				_, ok := dict.Lookup(key)
				assert.False(t, ok, "key %q", key)
			}
		})
	}
}

func TestDictionary_ConjugatedFormsResolveToDefinition(t *testing.T) {
	for _, hangeul := range []string{"가다", "마시다", "쓰다", "보다", "알다", "춥다", "고맙다", "먹다"} {
		t.Run(hangeul, func(t *testing.T) {
			dict := New()
			require.Empty(t, dict.AddDefinitions([]wordlist.Def{{Hangeul: hangeul, Meanings: []string{"meaning"}}}))

			forms, err := conjugation.Generate(hangeul[:len(hangeul)-len("다")])
			require.NoError(t, err)
			assert.Equal(t, len(forms), dict.Len())
			for _, form := range forms {
				match, ok := dict.FindLongestMatch(form)
				require.True(t, ok, "form %q", form)
				assert.Equal(t, form, match.Text)
				assert.Equal(t, hangeul, match.Def.Hangeul)
			}
		})
	}
}

func TestDictionary_Remove(t *testing.T) {
	dict := New()
	require.Empty(t, dict.AddDefinitions([]wordlist.Def{
		{Hangeul: "사다", Meanings: []string{"buy"}},
	}))

	match, ok := dict.FindLongestMatch("사다")
	require.True(t, ok)
	assert.Equal(t, "사", match.Text)

	def, ok := dict.Remove("사")
	require.True(t, ok)
	assert.Equal(t, "사다", def.Hangeul)

	_, ok = dict.FindLongestMatch("사다")
	assert.False(t, ok)

	match, ok = dict.FindLongestMatch("산다")
	require.True(t, ok, "other forms are kept")
	assert.Equal(t, "사다", match.Def.Hangeul)

	_, ok = dict.Remove("사")
	assert.False(t, ok)
	_, ok = dict.Remove("없는")
	assert.False(t, ok)
}

func TestDictionary_ApplyExclusions(t *testing.T) {
	dict := New()
	require.Empty(t, dict.AddDefinitions([]wordlist.Def{
		{Hangeul: "사다", Meanings: []string{"buy"}},
		{Hangeul: "나", Meanings: []string{"I"}},
	}))
	before := dict.Len()

	removed, missing := dict.ApplyExclusions([]string{"사", "나", "너"})
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"너"}, missing)
	assert.Equal(t, before-2, dict.Len())
	assert.Equal(t, 2, dict.DefinitionCount())
}

func TestDictionary_FindMatch(t *testing.T) {
	dict := New()
	require.Empty(t, dict.AddDefinitions([]wordlist.Def{
		{Hangeul: "학", Meanings: []string{"learning"}},
		{Hangeul: "학교생활", Meanings: []string{"school life"}},
	}))

	tests := []struct {
		name         string
		text         string
		wantLongest  string
		wantShortest string
		wantOK       bool
	}{
		{
			name:         "longer key with valueless middle",
			text:         "학교생활은",
			wantLongest:  "학교생활",
			wantShortest: "학",
			wantOK:       true,
		},
		{
			name:         "only the short key",
			text:         "학교에",
			wantLongest:  "학",
			wantShortest: "학",
			wantOK:       true,
		},
		{
			name: "no match",
			text: "나는",
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			longest, ok := dict.FindLongestMatch(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			shortest, ok := dict.FindShortestMatch(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantLongest, longest.Text)
			assert.Equal(t, tt.wantShortest, shortest.Text)
		})
	}
}
