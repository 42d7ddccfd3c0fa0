package wordlist

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/wordlist/mock_repository.go -package=mock_wordlist Repository

// Repository stores definitions outside of word-list files.
type Repository interface {
	FindAll(ctx context.Context) ([]Def, error)
	BatchUpsert(ctx context.Context, defs []Def) error
}

type definitionRow struct {
	Hangeul  string         `db:"hangeul"`
	Aliases  []byte         `db:"aliases"`
	Hanja    sql.NullString `db:"hanja"`
	Meanings []byte         `db:"meanings"`
}

func newDefinitionRow(def Def) (definitionRow, error) {
	if len(def.Meanings) == 0 {
		return definitionRow{}, fmt.Errorf("%s: %w", def.Hangeul, ErrNoMeanings)
	}
	aliases := def.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	aliasesJSON, err := json.Marshal(aliases)
	if err != nil {
		return definitionRow{}, fmt.Errorf("json.Marshal(aliases) > %w", err)
	}
	meaningsJSON, err := json.Marshal(def.Meanings)
	if err != nil {
		return definitionRow{}, fmt.Errorf("json.Marshal(meanings) > %w", err)
	}
	return definitionRow{
		Hangeul:  def.Hangeul,
		Aliases:  aliasesJSON,
		Hanja:    sql.NullString{String: def.Hanja, Valid: def.Hanja != ""},
		Meanings: meaningsJSON,
	}, nil
}

func (row definitionRow) toDef() (Def, error) {
	def := Def{
		Hangeul: row.Hangeul,
		Hanja:   row.Hanja.String,
	}
	if len(row.Aliases) > 0 {
		if err := json.Unmarshal(row.Aliases, &def.Aliases); err != nil {
			return Def{}, fmt.Errorf("json.Unmarshal(aliases of %s) > %w", row.Hangeul, err)
		}
		if len(def.Aliases) == 0 {
			def.Aliases = nil
		}
	}
	if err := json.Unmarshal(row.Meanings, &def.Meanings); err != nil {
		return Def{}, fmt.Errorf("json.Unmarshal(meanings of %s) > %w", row.Hangeul, err)
	}
	return def, nil
}

// DBRepository implements Repository on the MySQL definitions table.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all definitions in insertion order.
func (r *DBRepository) FindAll(ctx context.Context) ([]Def, error) {
	var rows []definitionRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT hangeul, aliases, hanja, meanings FROM definitions ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(definitions) > %w", err)
	}

	defs := make([]Def, 0, len(rows))
	for _, row := range rows {
		def, err := row.toDef()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// BatchUpsert inserts definitions, replacing any stored definition with the
// same headword. Either all definitions are stored or none.
func (r *DBRepository) BatchUpsert(ctx context.Context, defs []Def) error {
	if len(defs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, def := range defs {
		row, err := newDefinitionRow(def)
		if err != nil {
			return err
		}
		_, err = tx.NamedExecContext(ctx,
			`INSERT INTO definitions (hangeul, aliases, hanja, meanings)
			VALUES (:hangeul, :aliases, :hanja, :meanings)
			ON DUPLICATE KEY UPDATE aliases = VALUES(aliases), hanja = VALUES(hanja), meanings = VALUES(meanings)`,
			row)
		if err != nil {
			return fmt.Errorf("tx.NamedExecContext(upsert definition %s) > %w", def.Hangeul, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
