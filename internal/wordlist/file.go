package wordlist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported word list format")

// Reader loads definitions from word-list files. Text is normalized to NFC
// so that decomposed jamo in a file still match precomposed input.
type Reader struct {
	parser *Parser
}

func NewReader(parser *Parser) *Reader {
	return &Reader{parser: parser}
}

// ReadFiles reads every file in order and concatenates their definitions,
// so a later file overrides an earlier one once added to a dictionary.
func (r *Reader) ReadFiles(paths []string) ([]Def, []Warning, error) {
	var (
		defs     []Def
		warnings []Warning
	)
	for _, path := range paths {
		fileDefs, fileWarnings, err := r.ReadFile(path)
		if err != nil {
			return nil, warnings, fmt.Errorf("r.ReadFile(%s) > %w", path, err)
		}
		defs = append(defs, fileDefs...)
		warnings = append(warnings, fileWarnings...)
	}
	return defs, warnings, nil
}

// ReadFile reads a plain-text word list (.txt, .wl or no extension) or a
// YAML list of definitions (.yml, .yaml).
func (r *Reader) ReadFile(path string) ([]Def, []Warning, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		defs, err := readYamlFile[[]Def](path)
		if err != nil {
			return nil, nil, err
		}
		return defs, nil, nil
	case ".txt", ".wl", "":
		contents, err := ReadNormalized(path)
		if err != nil {
			return nil, nil, err
		}
		defs, warnings := r.parser.Parse(path, contents)
		return defs, warnings, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadNormalized returns the NFC-normalized contents of a file.
func ReadNormalized(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return string(norm.NFC.Bytes(contents)), nil
}

func readYamlFile[T any](path string) (T, error) {
	var result T

	contents, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	if err := yaml.NewDecoder(bytes.NewReader(norm.NFC.Bytes(contents))).Decode(&result); err != nil {
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		return result, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return result, nil
}

// WriteYAML writes definitions in the format ReadFile accepts for .yml files.
func WriteYAML(w io.Writer, defs []Def) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(defs); err != nil {
		return fmt.Errorf("encoder.Encode() > %w", err)
	}
	return encoder.Close()
}

// ParseExclusions returns one key per line, skipping blank lines and lines
// starting with '#'.
func ParseExclusions(text string) []string {
	var keys []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") || isBlank(line) {
			continue
		}
		keys = append(keys, strings.TrimSpace(line))
	}
	return keys
}

// ReadExclusionFiles reads the exclusion keys of every file in order.
func ReadExclusionFiles(paths []string) ([]string, error) {
	var keys []string
	for _, path := range paths {
		contents, err := ReadNormalized(path)
		if err != nil {
			return nil, err
		}
		keys = append(keys, ParseExclusions(contents)...)
	}
	return keys, nil
}
