package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kor/internal/translate"
	"github.com/at-ishikawa/kor/internal/wordlist"
)

func newCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <document>",
		Short: "Extracts the manual translations from a document written by translate --line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := wordlist.ReadNormalized(args[0])
			if err != nil {
				return fmt.Errorf("wordlist.ReadNormalized() > %w", err)
			}
			return translate.Clean(cmd.OutOrStdout(), text)
		},
	}
}
