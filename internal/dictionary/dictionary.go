// Package dictionary indexes definitions under every surface form a reader
// may meet in text: the headword, its aliases and their conjugations.
package dictionary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/kor/internal/conjugation"
	"github.com/at-ishikawa/kor/internal/trie"
	"github.com/at-ishikawa/kor/internal/wordlist"
)

const (
	haSuffix = "하다"
	daSuffix = "다"
)

var (
	ErrNoMeanings = wordlist.ErrNoMeanings
	ErrEmptyKey   = errors.New("key is empty after removing its ending")
)

// DefID is the index of a definition in a Dictionary.
type DefID int

// Match is a key found at the start of a text.
type Match struct {
	Text string
	Def  *wordlist.Def
}

// Dictionary maps keys to definitions. Every key of one definition shares a
// single DefID. It is safe for concurrent lookups once construction is done.
type Dictionary struct {
	defs  []wordlist.Def
	index *trie.Trie[DefID]
}

func New() *Dictionary {
	return &Dictionary{
		index: trie.New[DefID](),
	}
}

// AddDefinitions indexes defs in order; a later definition replaces an
// earlier one under any key they share.
// Keys ending in 하다 are indexed without it, keys ending in 다 are expanded
// into the conjugations of their stem, and other keys are indexed verbatim.
// Problems that only skip a definition or key are returned as warnings.
func (d *Dictionary) AddDefinitions(defs []wordlist.Def) []error {
	var warnings []error
	for _, def := range defs {
		if len(def.Meanings) == 0 {
			warnings = append(warnings, fmt.Errorf("%w: %s", ErrNoMeanings, def.Hangeul))
			continue
		}

		id := DefID(len(d.defs))
		d.defs = append(d.defs, def)
		for _, key := range def.Keys() {
			keys, err := expandKey(key)
			if err != nil {
				warnings = append(warnings, fmt.Errorf("expandKey(%s) > %w", key, err))
			}
			for _, k := range keys {
				d.index.Insert(k, id)
			}
		}
	}
	return warnings
}

// expandKey returns the trie keys for one headword or alias. Keys are
// returned alongside a non-nil error when only part of the expansion failed.
func expandKey(key string) ([]string, error) {
	switch {
	case strings.HasSuffix(key, haSuffix):
		stem := strings.TrimSuffix(key, haSuffix)
		if stem == "" {
			return nil, ErrEmptyKey
		}
		return []string{stem}, nil
	case strings.HasSuffix(key, daSuffix):
		stem := strings.TrimSuffix(key, daSuffix)
		if stem == "" {
			return nil, ErrEmptyKey
		}
		forms, err := conjugation.Generate(stem)
		if err != nil {
			return forms, fmt.Errorf("conjugation.Generate() > %w", err)
		}
		return forms, nil
	case key == "":
		return nil, ErrEmptyKey
	default:
		return []string{key}, nil
	}
}

// Remove deletes exactly key and returns the definition it pointed to.
// Other keys of the same definition are kept.
func (d *Dictionary) Remove(key string) (wordlist.Def, bool) {
	id, ok := d.index.Remove(key)
	if !ok {
		return wordlist.Def{}, false
	}
	return d.defs[id], true
}

// ApplyExclusions removes every key of keys and returns the keys that were
// not in the dictionary.
func (d *Dictionary) ApplyExclusions(keys []string) (removed int, missing []string) {
	for _, key := range keys {
		if _, ok := d.Remove(key); ok {
			removed++
			continue
		}
		missing = append(missing, key)
	}
	return removed, missing
}

// FindLongestMatch returns the longest key that text starts with.
func (d *Dictionary) FindLongestMatch(text string) (Match, bool) {
	return d.match(d.index.FindLongestMatch(text))
}

// FindShortestMatch returns the shortest key that text starts with.
func (d *Dictionary) FindShortestMatch(text string) (Match, bool) {
	return d.match(d.index.FindShortestMatch(text))
}

func (d *Dictionary) match(prefix string, id DefID, ok bool) (Match, bool) {
	if !ok {
		return Match{}, false
	}
	return Match{Text: prefix, Def: &d.defs[id]}, true
}

// Lookup returns the definition stored under exactly key.
func (d *Dictionary) Lookup(key string) (*wordlist.Def, bool) {
	id, ok := d.index.Get(key)
	if !ok {
		return nil, false
	}
	return &d.defs[id], true
}

// Len returns the number of indexed keys.
func (d *Dictionary) Len() int {
	return d.index.Len()
}

// DefinitionCount returns the number of definitions added, including those
// whose keys were all replaced or removed since.
func (d *Dictionary) DefinitionCount() int {
	return len(d.defs)
}
