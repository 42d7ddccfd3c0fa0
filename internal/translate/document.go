package translate

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Mode selects how a document is laid out after translation.
type Mode string

const (
	// ModeNormal writes the translated document.
	ModeNormal Mode = "normal"
	// ModeLine writes each line followed by its translation and blank
	// manual translation lines.
	ModeLine Mode = "line"
	// ModeRetranslate refreshes the automatic translations of a document
	// written in ModeLine, keeping the manual lines.
	ModeRetranslate Mode = "retranslate"
)

const (
	AutoPrefix   = "->"
	ManualPrefix = "-|"

	manualLines = 3
)

var AllModes = []Mode{ModeNormal, ModeLine, ModeRetranslate}

func (m *Mode) Set(val string) error {
	for _, mode := range AllModes {
		if string(mode) == val {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("invalid mode: %s", val)
}

func (m Mode) String() string {
	return string(m)
}

func (m *Mode) Type() string {
	return "mode"
}

// TranslateDocument writes text to w laid out according to mode. Only
// ModeNormal is highlighted; the other modes write documents that are edited
// and read back.
func (r *Renderer) TranslateDocument(w io.Writer, text string, m Matcher, mode Mode) error {
	out := bufio.NewWriter(w)
	switch mode {
	case ModeNormal:
		out.WriteString(r.Translate(text, m))
		if !strings.HasSuffix(text, "\n") {
			out.WriteString("\n")
		}
	case ModeLine:
		for line := range lines(text) {
			fmt.Fprintln(out, line)
			if isBlank(line) {
				continue
			}
			writeAutoLine(out, line, m)
			for range manualLines {
				fmt.Fprintln(out, ManualPrefix+" ")
			}
		}
	case ModeRetranslate:
		for line := range lines(text) {
			switch {
			case isBlank(line), strings.HasPrefix(line, ManualPrefix):
				fmt.Fprintln(out, line)
			case strings.HasPrefix(line, AutoPrefix):
				// regenerated after its source line
			default:
				fmt.Fprintln(out, line)
				writeAutoLine(out, line, m)
			}
		}
	default:
		return fmt.Errorf("invalid mode: %s", mode)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("out.Flush() > %w", err)
	}
	return nil
}

func writeAutoLine(out io.Writer, line string, m Matcher) {
	translated, changed := NewRenderer(nil).translate(line, m)
	if changed {
		fmt.Fprintln(out, AutoPrefix+" "+translated)
	}
}

// Clean writes only the manual translations of a document written in
// ModeLine. Manual lines left empty are kept as a bare prefix so untranslated
// sentences stay visible.
func Clean(w io.Writer, text string) error {
	out := bufio.NewWriter(w)
	for line := range lines(text) {
		switch {
		case isBlank(line):
			fmt.Fprintln(out)
		case strings.HasPrefix(line, ManualPrefix):
			manual := strings.TrimSpace(strings.TrimPrefix(line, ManualPrefix))
			if manual == "" {
				fmt.Fprintln(out, ManualPrefix+" ")
				continue
			}
			fmt.Fprintln(out, manual)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("out.Flush() > %w", err)
	}
	return nil
}

// lines yields the lines of text without their line endings.
func lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			if !yield(strings.TrimRight(line, "\r\n")) {
				return
			}
		}
	}
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
