package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/kor/internal/config"
	"github.com/at-ishikawa/kor/internal/database"
	"github.com/at-ishikawa/kor/internal/dictionary"
	"github.com/at-ishikawa/kor/internal/wordlist"
)

// loadConfig loads the config file and validates it again after overrides,
// which usually copy command-line flags into it.
func loadConfig(overrides ...func(cfg *config.Config)) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return cfg, nil
	}

	for _, override := range overrides {
		override(cfg)
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// listFlags are the word-list flags shared by the commands that build a dictionary.
type listFlags struct {
	wordLists      []string
	exclusionLists []string
	fromDB         bool
}

func (f *listFlags) register(flags *pflag.FlagSet, withExclusions, withDB bool) {
	flags.StringArrayVarP(&f.wordLists, "word-list", "w", nil, "Word lists to read definitions from. Overrides word_lists of the config")
	if withExclusions {
		flags.StringArrayVarP(&f.exclusionLists, "exclusion-rules", "x", nil, "Files with one word per line to exclude from the automatic translation")
	}
	if withDB {
		flags.BoolVar(&f.fromDB, "from-db", false, "Load the definitions stored in the database before the word lists")
	}
}

func (f *listFlags) apply(flags *pflag.FlagSet) func(cfg *config.Config) {
	return func(cfg *config.Config) {
		if flags.Changed("word-list") {
			cfg.WordLists = f.wordLists
		}
		if flags.Changed("exclusion-rules") {
			cfg.ExclusionLists = f.exclusionLists
		}
		if flags.Changed("from-db") {
			cfg.Database.Enabled = f.fromDB
		}
	}
}

// openRepository returns nil when the database is disabled.
func openRepository(cfg *config.Config) (wordlist.Repository, func(), error) {
	if !cfg.Database.Enabled {
		return nil, func() {}, nil
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	return wordlist.NewDBRepository(db), func() { _ = db.Close() }, nil
}

// readDefinitions returns the definitions of repo, if any, followed by
// those of the word lists. Warnings are logged.
func readDefinitions(ctx context.Context, wordLists []string, repo wordlist.Repository) ([]wordlist.Def, error) {
	if len(wordLists) == 0 && repo == nil {
		slog.Warn("no word lists are given, so nothing will be translated")
	}

	var defs []wordlist.Def
	if repo != nil {
		stored, err := repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("repo.FindAll() > %w", err)
		}
		slog.Debug("loaded definitions from the database", "definitions", len(stored))
		defs = append(defs, stored...)
	}

	fileDefs, warnings, err := wordlist.NewReader(wordlist.NewParser()).ReadFiles(wordLists)
	if err != nil {
		return nil, fmt.Errorf("reader.ReadFiles() > %w", err)
	}
	for _, warning := range warnings {
		slog.Warn("skipped a word-list line", "warning", warning.Error())
	}
	slog.Debug("read word lists", "paths", wordLists, "definitions", len(fileDefs))
	defs = append(defs, fileDefs...)
	return defs, nil
}

// loadDictionary builds the dictionary used for translation and lookups.
func loadDictionary(ctx context.Context, cfg *config.Config, repo wordlist.Repository) (*dictionary.Dictionary, error) {
	defs, err := readDefinitions(ctx, cfg.WordLists, repo)
	if err != nil {
		return nil, err
	}

	dict := dictionary.New()
	for _, warning := range dict.AddDefinitions(defs) {
		slog.Warn("skipped a dictionary key", "warning", warning.Error())
	}

	exclusions, err := wordlist.ReadExclusionFiles(cfg.ExclusionLists)
	if err != nil {
		return nil, fmt.Errorf("wordlist.ReadExclusionFiles() > %w", err)
	}
	removed, missing := dict.ApplyExclusions(exclusions)
	for _, key := range missing {
		slog.Warn("excluded key is not in the dictionary", "key", key)
	}

	slog.Info("loaded dictionary",
		"definitions", dict.DefinitionCount(),
		"keys", dict.Len(),
		"excluded", removed,
	)
	return dict, nil
}
