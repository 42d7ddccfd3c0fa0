package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kor/internal/config"
	"github.com/at-ishikawa/kor/internal/database"
	"github.com/at-ishikawa/kor/internal/datasync"
	"github.com/at-ishikawa/kor/internal/wordlist"
	"github.com/at-ishikawa/kor/schemas"
)

func newDictionaryCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "dictionary",
		Short: "Manage definitions",
	}
	command.AddCommand(
		newDictionaryExportCommand(),
		newDictionaryImportCommand(),
	)
	return command
}

func newDictionaryExportCommand() *cobra.Command {
	var (
		lists  listFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Writes the definitions of the word lists as YAML",
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

			defs, err := readDefinitions(cmd.Context(), cfg.WordLists, repo)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("os.Create(%s) > %w", output, err)
				}
				defer func() { _ = file.Close() }()
				w = file
			}
			if err := wordlist.WriteYAML(w, defs); err != nil {
				return fmt.Errorf("wordlist.WriteYAML() > %w", err)
			}
			slog.Info("exported definitions", "definitions", len(defs))
			return nil
		},
	}

	flags := cmd.Flags()
	lists.register(flags, false, true)
	flags.StringVarP(&output, "output", "o", "", "Output file. Defaults to stdout")

	return cmd
}

func newDictionaryImportCommand() *cobra.Command {
	var (
		lists          listFlags
		dryRun         bool
		updateExisting bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Stores the definitions of the word lists in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(lists.apply(cmd.Flags()), func(cfg *config.Config) {
				// the database is the destination here, not a source
				cfg.Database.Enabled = true
			})
			if err != nil {
				return err
			}

			defs, err := readDefinitions(ctx, cfg.WordLists, nil)
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() { _ = db.Close() }()

			if !dryRun {
				if err := database.Migrate(ctx, db, schemas.Migrations); err != nil {
					return fmt.Errorf("database.Migrate() > %w", err)
				}
			}

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(wordlist.NewDBRepository(db), out)
			result, err := importer.ImportDefinitions(ctx, defs, datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			})
			if err != nil {
				return fmt.Errorf("importer.ImportDefinitions() > %w", err)
			}

			fmt.Fprintln(out, "\nImport Summary:")
			if dryRun {
				fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			fmt.Fprintf(out, "  Definitions:  %d new, %d skipped, %d updated, %d invalid\n",
				result.DefinitionsNew, result.DefinitionsSkipped, result.DefinitionsUpdated, result.DefinitionsInvalid)
			return nil
		},
	}

	flags := cmd.Flags()
	lists.register(flags, false, false)
	flags.BoolVar(&dryRun, "dry-run", false, "Show what would be imported without writing to the database")
	flags.BoolVar(&updateExisting, "update-existing", false, "Replace stored definitions that differ from the word lists")

	return cmd
}
