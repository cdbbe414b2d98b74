// Package kb is the optional SQLite knowledge base: hint wordings and
// extra unit spellings stored in two flat tables, layered over the
// built-in defaults. The server runs fine without it.
package kb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/hints"
	"github.com/mykeomos/Newton-law-tutor/internal/units"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// KB wraps the SQLite connection.
type KB struct {
	db *sql.DB
}

// Open creates a KB connected to the SQLite database at dsn. It applies
// recommended pragmas and creates missing tables.
func Open(dsn string) (*KB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &KB{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (k *KB) DB() *sql.DB {
	return k.db
}

// Close closes the database connection.
func (k *KB) Close() error {
	return k.db.Close()
}

// applyPragmas configures SQLite for read-mostly single-writer use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// createTables creates the schema if it does not exist. Hint rows with
// an empty target apply to every target.
func createTables(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS hints (
			target     TEXT NOT NULL DEFAULT '',
			error_kind TEXT NOT NULL,
			text       TEXT NOT NULL,
			PRIMARY KEY (target, error_kind)
		)`,
		`CREATE TABLE IF NOT EXISTS unit_aliases (
			alias     TEXT NOT NULL PRIMARY KEY,
			dimension TEXT NOT NULL,
			factor    REAL NOT NULL
		)`,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Seed writes the built-in hint texts and unit spellings into the
// database so operators can edit them in place. Existing rows are left
// untouched.
func (k *KB) Seed(ctx context.Context) error {
	tx, err := k.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for kind, text := range hints.Defaults() {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO hints (target, error_kind, text) VALUES ('', ?, ?)`,
			string(kind), text); err != nil {
			return fmt.Errorf("seed hint %s: %w", kind, err)
		}
	}
	sel := hints.NewSelector()
	for _, d := range units.AllDimensions() {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO hints (target, error_kind, text) VALUES (?, ?, ?)`,
			string(d), string(diagnosis.KindUnclassified), sel.SelectGeneric(d)); err != nil {
			return fmt.Errorf("seed hint %s/%s: %w", d, diagnosis.KindUnclassified, err)
		}
		for _, u := range units.UnitsFor(d) {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO unit_aliases (alias, dimension, factor) VALUES (?, ?, ?)`,
				u.Symbol, string(u.Dimension), u.Factor); err != nil {
				return fmt.Errorf("seed unit %s: %w", u.Symbol, err)
			}
		}
	}

	return tx.Commit()
}

// LoadHints reads every hint row into an in-memory table. Rows with an
// empty target become kind-wide defaults; rows naming an unknown target
// or kind are skipped rather than failing the load.
func (k *KB) LoadHints(ctx context.Context) (*hints.Table, error) {
	rows, err := k.db.QueryContext(ctx,
		`SELECT target, error_kind, text FROM hints`)
	if err != nil {
		return nil, fmt.Errorf("load hints: %w", err)
	}
	defer rows.Close()

	t := hints.NewTable()
	for rows.Next() {
		var target, kind, text string
		if err := rows.Scan(&target, &kind, &text); err != nil {
			return nil, fmt.Errorf("scan hint row: %w", err)
		}
		ek := diagnosis.ErrorKind(kind)
		if !ek.Valid() || text == "" {
			continue
		}
		if target == "" {
			t.SetKind(ek, text)
			continue
		}
		dim := units.Dimension(target)
		if !dim.Valid() {
			continue
		}
		t.SetPair(dim, ek, text)
	}
	return t, rows.Err()
}

// HintRow is one stored hint as the operator sees it. An empty target means
// the row applies to every target.
type HintRow struct {
	Target string
	Kind   string
	Text   string
}

// ListHints returns every stored hint row, kind-wide rows first.
func (k *KB) ListHints(ctx context.Context) ([]HintRow, error) {
	rows, err := k.db.QueryContext(ctx,
		`SELECT target, error_kind, text FROM hints ORDER BY target, error_kind`)
	if err != nil {
		return nil, fmt.Errorf("list hints: %w", err)
	}
	defer rows.Close()

	var out []HintRow
	for rows.Next() {
		var r HintRow
		if err := rows.Scan(&r.Target, &r.Kind, &r.Text); err != nil {
			return nil, fmt.Errorf("scan hint row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LoadUnitAliases returns the stored unit spellings. Pass them to
// units.Register during startup to extend the conversion table.
func (k *KB) LoadUnitAliases(ctx context.Context) ([]units.Unit, error) {
	rows, err := k.db.QueryContext(ctx,
		`SELECT alias, dimension, factor FROM unit_aliases`)
	if err != nil {
		return nil, fmt.Errorf("load unit aliases: %w", err)
	}
	defer rows.Close()

	var out []units.Unit
	for rows.Next() {
		var u units.Unit
		var dim string
		if err := rows.Scan(&u.Symbol, &dim, &u.Factor); err != nil {
			return nil, fmt.Errorf("scan unit row: %w", err)
		}
		u.Dimension = units.Dimension(dim)
		out = append(out, u)
	}
	return out, rows.Err()
}

// SetHint inserts or replaces one hint row. An empty target makes the
// hint apply to every target.
func (k *KB) SetHint(ctx context.Context, target, kind, text string) error {
	if !diagnosis.ErrorKind(kind).Valid() {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	if target != "" && !units.Dimension(target).Valid() {
		return fmt.Errorf("unknown target %q", target)
	}
	if text == "" {
		return fmt.Errorf("hint text is empty")
	}
	_, err := k.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO hints (target, error_kind, text) VALUES (?, ?, ?)`,
		target, kind, text)
	return err
}

// DefaultPath resolves the knowledge base file path in priority order:
// 1. NEWTON_KB_PATH environment variable
// 2. $XDG_DATA_HOME/newton-tutor/kb.db
// 3. ~/.local/share/newton-tutor/kb.db
func DefaultPath() (string, error) {
	if p := os.Getenv("NEWTON_KB_PATH"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "newton-tutor", "kb.db")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
