package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/at-ishikawa/kor/internal/dictionary"
)

func newLookupCommand() *cobra.Command {
	var (
		lists    listFlags
		shortest bool
	)

	cmd := &cobra.Command{
		Use:   "lookup <text>",
		Short: "Shows the definition of the dictionary word the text starts with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(lists.apply(cmd.Flags()))
			if err != nil {
				return err
			}

			repo, closeRepo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			dict, err := loadDictionary(cmd.Context(), cfg, repo)
			if err != nil {
				return err
			}

			text := norm.NFC.String(args[0])
			find := dict.FindLongestMatch
			if shortest {
				find = dict.FindShortestMatch
			}
			match, ok := find(text)
			if !ok {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no dictionary word at the start of %q\n", text)
				return err
			}
			return writeMatch(cmd.OutOrStdout(), match)
		},
	}

	flags := cmd.Flags()
	lists.register(flags, true, true)
	flags.BoolVar(&shortest, "shortest", false, "Match the shortest dictionary word instead of the longest")

	return cmd
}

func writeMatch(w io.Writer, match dictionary.Match) error {
	bold := color.New(color.Bold)
	var b strings.Builder
	b.WriteString(bold.Sprint(match.Text))
	b.WriteString(" -> ")
	b.WriteString(match.Def.Hangeul)
	if match.Def.Hanja != "" {
		fmt.Fprintf(&b, " (%s)", match.Def.Hanja)
	}
	if len(match.Def.Aliases) > 0 {
		fmt.Fprintf(&b, " | %s", strings.Join(match.Def.Aliases, ", "))
	}
	b.WriteString("\n")
	for _, meaning := range match.Def.Meanings {
		fmt.Fprintf(&b, "  %s\n", meaning)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
