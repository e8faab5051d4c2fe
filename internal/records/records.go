// Package records keeps the career table: one row per finished run.
// It never restores a session.
package records

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFS embed.FS

type dialect string

const (
	dialectSQLite   dialect = "sqlite"
	dialectPostgres dialect = "postgres"
)

// Outcomes.
const (
	OutcomeDefeat = "defeat"
	OutcomeQuit   = "quit"
)

// Run is a finished session.
type Run struct {
	ID          string
	FinishedAt  time.Time
	Outcome     string
	Day         int
	Couples     int
	Money       int
	Reputation  int
	Cultivation int
}

type Store struct {
	dialect dialect
	db      *sql.DB
}

// Open connects to dsn. postgres:// and postgresql:// URLs use pgx; anything
// else is a sqlite file path.
func Open(ctx context.Context, dsn string) (*Store, error) {
	d, driver := dialectSQLite, "sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		d, driver = dialectPostgres, "pgx"
	} else if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", d, err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", d, err)
	}
	s := &Store{dialect: d, db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Printf("records: dialect=%s", d)
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) bind(pos int) string {
	if s.dialect == dialectPostgres {
		return fmt.Sprintf("$%d", pos)
	}
	return "?"
}

func (s *Store) placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = s.bind(i + 1)
	}
	return strings.Join(ph, ", ")
}

func (s *Store) migrate(ctx context.Context) error {
	create := `CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := map[string]bool{}
	rows, err := s.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return fmt.Errorf("scan schema migration: %w", err)
		}
		applied[v] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate schema migrations: %w", err)
	}

	files, err := fs.Glob(migrationFS, fmt.Sprintf("migrations/%s/*.sql", s.dialect))
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		base := filepath.Base(file)
		if applied[base] {
			continue
		}
		body, err := migrationFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration tx %s: %w", file, err)
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
		q := "INSERT INTO schema_migrations (version, applied_at) VALUES (" + s.placeholders(2) + ")"
		if _, err := tx.ExecContext(ctx, q, base, time.Now().UTC()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

// Record stores a finished run. Missing ids and timestamps are filled in.
func (s *Store) Record(ctx context.Context, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	r.FinishedAt = r.FinishedAt.UTC()
	q := "INSERT INTO runs (id, finished_at, outcome, day, couples, money, reputation, cultivation) VALUES (" + s.placeholders(8) + ")"
	_, err := s.db.ExecContext(ctx, q, r.ID, r.FinishedAt, r.Outcome, r.Day, r.Couples, r.Money, r.Reputation, r.Cultivation)
	if err != nil {
		return r, fmt.Errorf("insert run: %w", err)
	}
	return r, nil
}

// Best lists the top n runs, most couples first, then the longest.
func (s *Store) Best(ctx context.Context, n int) ([]Run, error) {
	q := "SELECT id, finished_at, outcome, day, couples, money, reputation, cultivation FROM runs ORDER BY couples DESC, day DESC, finished_at ASC LIMIT " + s.bind(1)
	rows, err := s.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.FinishedAt, &r.Outcome, &r.Day, &r.Couples, &r.Money, &r.Reputation, &r.Cultivation); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
