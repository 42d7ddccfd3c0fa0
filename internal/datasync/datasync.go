// Package datasync imports word-list definitions into the definitions database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/at-ishikawa/kor/internal/wordlist"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	DefinitionsNew     int
	DefinitionsSkipped int
	DefinitionsUpdated int
	DefinitionsInvalid int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes definitions read from word lists to a repository.
type Importer struct {
	repo   wordlist.Repository
	writer io.Writer
}

// NewImporter creates a new Importer that reports every definition to writer.
func NewImporter(repo wordlist.Repository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// ImportDefinitions stores defs that are not in the repository yet. A stored
// definition that differs is only replaced with opts.UpdateExisting. When a
// headword appears more than once, the last definition is imported.
// Definitions without meanings are reported and never stored.
func (imp *Importer) ImportDefinitions(ctx context.Context, defs []wordlist.Def, opts ImportOptions) (*ImportResult, error) {
	stored, err := imp.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	existing := make(map[string]wordlist.Def, len(stored))
	for _, def := range stored {
		existing[def.Hangeul] = def
	}

	var (
		result  ImportResult
		changed []wordlist.Def
	)
	for _, def := range latestDefinitions(defs) {
		current, ok := existing[def.Hangeul]
		switch {
		case len(def.Meanings) == 0:
			fmt.Fprintf(imp.writer, "  [INVALID]  %q: %v\n", def.Hangeul, wordlist.ErrNoMeanings)
			result.DefinitionsInvalid++
		case !ok:
			fmt.Fprintf(imp.writer, "  [NEW]  %q\n", def.Hangeul)
			result.DefinitionsNew++
			changed = append(changed, def)
		case sameDefinition(current, def) || !opts.UpdateExisting:
			fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", def.Hangeul)
			result.DefinitionsSkipped++
		default:
			fmt.Fprintf(imp.writer, "  [UPDATE]  %q\n", def.Hangeul)
			result.DefinitionsUpdated++
			changed = append(changed, def)
		}
	}

	if opts.DryRun || len(changed) == 0 {
		return &result, nil
	}
	if err := imp.repo.BatchUpsert(ctx, changed); err != nil {
		return nil, fmt.Errorf("repo.BatchUpsert() > %w", err)
	}
	return &result, nil
}

// latestDefinitions keeps the last definition of each headword at the
// position of its first occurrence.
func latestDefinitions(defs []wordlist.Def) []wordlist.Def {
	positions := make(map[string]int, len(defs))
	var latest []wordlist.Def
	for _, def := range defs {
		if i, ok := positions[def.Hangeul]; ok {
			latest[i] = def
			continue
		}
		positions[def.Hangeul] = len(latest)
		latest = append(latest, def)
	}
	return latest
}

func sameDefinition(a, b wordlist.Def) bool {
	return a.Hangeul == b.Hangeul &&
		a.Hanja == b.Hanja &&
		slices.Equal(a.Aliases, b.Aliases) &&
		slices.Equal(a.Meanings, b.Meanings)
}
