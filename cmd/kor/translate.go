package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/kor/internal/config"
	"github.com/at-ishikawa/kor/internal/translate"
	"github.com/at-ishikawa/kor/internal/wordlist"
)

var _ pflag.Value = (*translate.Mode)(nil)

func newTranslateCommand() *cobra.Command {
	var (
		lists       listFlags
		mode        = translate.ModeNormal
		lineMode    bool
		retranslate bool
		useColor    bool
	)

	cmd := &cobra.Command{
		Use:   "translate <document>",
		Short: "Makes a very rough translation of a Korean document",
		Long: `Makes a very rough translation of a document in Korean, using a set
of word lists to substitute words with their definitions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, err := loadConfig(lists.apply(flags), func(cfg *config.Config) {
				switch {
				case lineMode:
					cfg.Translation.Mode = translate.ModeLine.String()
				case retranslate:
					cfg.Translation.Mode = translate.ModeRetranslate.String()
				case flags.Changed("mode"):
					cfg.Translation.Mode = mode.String()
				}
				if flags.Changed("color") {
					cfg.Translation.Color = useColor
				}
			})
			if err != nil {
				return err
			}

			var documentMode translate.Mode
			if err := documentMode.Set(cfg.Translation.Mode); err != nil {
				return fmt.Errorf("documentMode.Set() > %w", err)
			}

			text, err := wordlist.ReadNormalized(args[0])
			if err != nil {
				return fmt.Errorf("wordlist.ReadNormalized() > %w", err)
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

			var highlight *color.Color
			if cfg.Translation.Color {
				highlight = color.New(color.FgCyan)
				highlight.EnableColor()
			}
			return translate.NewRenderer(highlight).TranslateDocument(cmd.OutOrStdout(), text, dict, documentMode)
		},
	}

	flags := cmd.Flags()
	lists.register(flags, true, true)
	flags.Var(&mode, "mode", fmt.Sprintf("Layout of the translated document. Possible values are %v", translate.AllModes))
	flags.BoolVarP(&lineMode, "line", "l", false, "Write each line followed by its translation and space for a manual translation")
	flags.BoolVarP(&retranslate, "retranslate", "r", false, "Retranslate a document written with --line, keeping the manual translations")
	flags.BoolVar(&useColor, "color", false, "Highlight translated words in the normal mode")
	cmd.MarkFlagsMutuallyExclusive("line", "retranslate", "mode")

	return cmd
}
