// Package wordlist reads dictionary definitions from word-list files,
// YAML exports and the definitions database.
package wordlist

import (
	"errors"
	"fmt"
)

// ErrNoMeanings reports a definition that cannot be translated.
var ErrNoMeanings = errors.New("definition has no meanings")

// Def is one dictionary entry.
type Def struct {
	Hangeul  string   `yaml:"hangeul"`
	Aliases  []string `yaml:"aliases,omitempty"`
	Hanja    string   `yaml:"hanja,omitempty"`
	Meanings []string `yaml:"meanings"`
}

// Keys returns the headword followed by its aliases.
func (d Def) Keys() []string {
	keys := make([]string, 0, 1+len(d.Aliases))
	keys = append(keys, d.Hangeul)
	return append(keys, d.Aliases...)
}

// PrimaryMeaning returns the first meaning line. A definition without
// meanings must never reach a dictionary, so this panics on an empty list.
func (d Def) PrimaryMeaning() string {
	if len(d.Meanings) == 0 {
		panic(fmt.Sprintf("definition %q has no meanings", d.Hangeul))
	}
	return d.Meanings[0]
}

// Warning is a recoverable problem found while reading a word list.
type Warning struct {
	Source  string
	Line    int
	Message string
}

func (w Warning) Error() string {
	if w.Line == 0 {
		return fmt.Sprintf("%s: %s", w.Source, w.Message)
	}
	return fmt.Sprintf("%s:%d: %s", w.Source, w.Line, w.Message)
}
