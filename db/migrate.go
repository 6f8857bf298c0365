package db

import (
	"database/sql"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/sotkb/errors"
)

//go:embed sqlite/migrations/*.sql
var migrationFS embed.FS

const migrationDir = "sqlite/migrations"

// migration is one embedded schema step, named NNN_description.sql.
type migration struct {
	version string
	file    string
}

func loadMigrations() ([]migration, error) {
	names, err := fs.Glob(migrationFS, path.Join(migrationDir, "*.sql"))
	if err != nil {
		return nil, errors.Wrap(err, "list migrations")
	}
	sort.Strings(names)

	out := make([]migration, 0, len(names))
	for _, name := range names {
		file := path.Base(name)
		version, _, ok := strings.Cut(file, "_")
		if !ok {
			return nil, errors.Newf("migration %s is not named NNN_description.sql", file)
		}
		out = append(out, migration{version: version, file: file})
	}
	return out, nil
}

// appliedVersions is empty until 000 has created schema_migrations.
func appliedVersions(db *sql.DB) (map[string]bool, error) {
	var n int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_migrations'",
	).Scan(&n); err != nil {
		return nil, errors.Wrap(err, "check schema_migrations")
	}
	applied := map[string]bool{}
	if n == 0 {
		return applied, nil
	}

	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, errors.Wrap(err, "read schema_migrations")
	}
	defer rows.Close()
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, errors.Wrap(err, "scan schema_migrations")
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// Migrate applies every embedded migration not yet recorded in
// schema_migrations, each in its own transaction, and returns the versions
// it applied. A nil logger runs silently.
func Migrate(db *sql.DB, logger *zap.SugaredLogger) ([]string, error) {
	all, err := loadMigrations()
	if err != nil {
		return nil, err
	}
	done, err := appliedVersions(db)
	if err != nil {
		return nil, err
	}
	if len(done) == 0 && len(all) > 0 && all[0].version != "000" {
		return nil, errors.Newf("first migration must be 000, got %s", all[0].file)
	}

	var applied []string
	for _, m := range all {
		if done[m.version] {
			continue
		}
		if err := apply(db, m); err != nil {
			return applied, err
		}
		if logger != nil {
			logger.Debugw("Applied migration", "migration", m.file, "version", m.version)
		}
		applied = append(applied, m.version)
	}

	if logger != nil && len(applied) > 0 {
		logger.Infow("Schema migrated", "applied", len(applied), "total_migrations", len(all))
	}
	return applied, nil
}

func apply(db *sql.DB, m migration) error {
	body, err := migrationFS.ReadFile(path.Join(migrationDir, m.file))
	if err != nil {
		return errors.Wrapf(err, "read %s", m.file)
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrapf(err, "begin tx for %s", m.file)
	}
	if _, err := tx.Exec(string(body)); err != nil {
		return errors.CombineErrors(errors.Wrapf(err, "execute %s", m.file), tx.Rollback())
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
		return errors.CombineErrors(errors.Wrapf(err, "record %s", m.file), tx.Rollback())
	}
	return errors.Wrapf(tx.Commit(), "commit %s", m.file)
}
