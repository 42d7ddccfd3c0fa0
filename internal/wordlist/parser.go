package wordlist

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const meaningIndent = "  "

// space also matches U+3000 and U+00A0, which RE2's \s does not.
const space = `[\s\p{Zs}]*`

// Parser reads the plain-text word-list format:
//
//	# comment
//	가다|가
//	  to go
//	학교 (學校)
//	  school
//
// An unindented line starts a definition; its headword may list aliases
// separated by '|' and end with a hanja annotation in (half- or fullwidth)
// parentheses. Lines indented by two spaces are meanings of the definition above.
type Parser struct {
	definition *regexp.Regexp
	headword   *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{
		definition: regexp.MustCompile(`^(.+?)` + space + `(?:[(（]` + space + `(.+?)[)）]` + space + `)?$`),
		headword:   regexp.MustCompile(`^[-~‐]?` + space + `(.*?)` + space + `$`),
	}
}

// Parse returns the definitions found in text in file order. Malformed lines
// are skipped and reported as warnings; source only labels those warnings.
func (p *Parser) Parse(source, text string) ([]Def, []Warning) {
	var (
		defs     []Def
		warnings []Warning
		current  *Def
	)
	flush := func() {
		if current != nil {
			defs = append(defs, *current)
			current = nil
		}
	}

	for i, line := range strings.Split(text, "\n") {
		lineNumber := i + 1
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.HasPrefix(line, "#"),
			strings.HasPrefix(line, meaningIndent+"#"),
			isBlank(line):
			continue
		case !strings.HasPrefix(line, meaningIndent):
			flush()
			def, ok := p.parseDefinition(line)
			if !ok {
				warnings = append(warnings, Warning{
					Source:  source,
					Line:    lineNumber,
					Message: fmt.Sprintf("invalid definition: %q", line),
				})
				continue
			}
			current = &def
		default:
			if current == nil {
				warnings = append(warnings, Warning{
					Source:  source,
					Line:    lineNumber,
					Message: "meaning found without definition",
				})
				continue
			}
			current.Meanings = append(current.Meanings, strings.TrimSpace(line))
		}
	}
	flush()
	return defs, warnings
}

func (p *Parser) parseDefinition(line string) (Def, bool) {
	match := p.definition.FindStringSubmatch(line)
	if match == nil {
		return Def{}, false
	}
	parts := strings.Split(match[1], "|")
	def := Def{
		Hangeul: p.cleanHeadword(parts[0]),
		Hanja:   match[2],
	}
	for _, alias := range parts[1:] {
		def.Aliases = append(def.Aliases, p.cleanHeadword(alias))
	}
	return def, true
}

// cleanHeadword strips a leading dash or tilde marking a bound form, and the
// surrounding spaces.
func (p *Parser) cleanHeadword(headword string) string {
	match := p.headword.FindStringSubmatch(headword)
	if match == nil {
		return headword
	}
	return match[1]
}

func isBlank(line string) bool {
	return strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
