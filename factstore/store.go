// Package factstore holds the graph's subject-predicate-object facts in SQLite.
//
// The store imports serialized graphs (any reader registered with the cayley
// quad format registry), answers single-hop object lookups, and executes
// pattern.Query values by compiling them into self-joins over the triples table.
// It is safe for concurrent reads; imports must be serialized by the caller.
package factstore

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/teranos/sotkb/db"
	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
	"github.com/teranos/sotkb/internal/httpclient"
	"github.com/teranos/sotkb/logger"
	"github.com/teranos/sotkb/pattern"
)

const tableTriples = "triples"

// Query constants
const (
	TripleInsertQuery = `
		INSERT OR IGNORE INTO triples (subject, predicate, object, object_kind, datatype, lang)
		VALUES (?, ?, ?, ?, ?, ?)`

	ObjectsQuery = `
		SELECT object, object_kind, datatype, lang FROM triples
		WHERE subject = ? AND predicate = ?
		ORDER BY object_kind, object, datatype, lang`

	ImportInsertQuery = `
		INSERT INTO imports (source, format, triples_read, triples_added)
		VALUES (?, ?, ?, ?)`

	TripleStatsQuery = `
		SELECT COUNT(*), COUNT(DISTINCT subject), COUNT(DISTINCT predicate) FROM triples`

	ImportListQuery = `
		SELECT source, format, triples_read, triples_added, imported_at
		FROM imports ORDER BY id DESC LIMIT ?`
)

// ImportStats describes one merge into the store.
type ImportStats struct {
	Source string `json:"source"`
	Format string `json:"format"`
	Read   int    `json:"read"`
	Added  int    `json:"added"`
}

// ImportRecord is a row of the import history.
type ImportRecord struct {
	ImportStats
	ImportedAt time.Time `json:"imported_at"`
}

// Stats summarizes store contents.
type Stats struct {
	Triples    int            `json:"triples"`
	Subjects   int            `json:"subjects"`
	Predicates int            `json:"predicates"`
	Imports    []ImportRecord `json:"imports"`
}

// Store is a SQLite-backed fact store.
type Store struct {
	db      *sql.DB
	logger  *zap.SugaredLogger
	metrics *Metrics
	http    *httpclient.SaferClient
	ownsDB  bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the store metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Store) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithHTTPClient sets the client used for http and https import sources.
func WithHTTPClient(c *httpclient.SaferClient) Option {
	return func(s *Store) {
		if c != nil {
			s.http = c
		}
	}
}

// New wraps an already-migrated database.
func New(database *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:      database,
		logger:  logger.Named("factstore"),
		metrics: NewMetrics(nil),
		http:    httpclient.NewSaferClient(httpclient.DefaultTimeout),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open opens (and migrates) the database at path. db.MemoryPath gives a private in-memory store.
func Open(path string, opts ...Option) (*Store, error) {
	s := New(nil, opts...)
	database, err := db.OpenWithMigrations(path, s.logger)
	if err != nil {
		return nil, err
	}
	s.db = database
	s.ownsDB = true
	return s, nil
}

// Close releases the database when the store opened it.
func (s *Store) Close() error {
	if s.ownsDB && s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Metrics exposes the store metrics.
func (s *Store) Metrics() *Metrics { return s.metrics }

// Import parses source and merges its facts into the store.
// Blank nodes are local to one import: the same label in two sources, or in
// two imports of one source, names different nodes. Errors are marked errors.ErrNotFound when the source does not resolve to a
// readable file. A source that fails to parse adds nothing.
func (s *Store) Import(ctx context.Context, source string) (ImportStats, error) {
	stats := ImportStats{Source: source}

	resolved, err := resolveSource(ctx, source, s.http)
	if err != nil {
		s.metrics.Imports.WithLabelValues("failed").Inc()
		return stats, err
	}
	defer resolved.cleanup()

	format, err := detectFormat(resolved.path)
	if err != nil {
		s.metrics.Imports.WithLabelValues("failed").Inc()
		return stats, err
	}
	stats.Format = format.Name

	f, err := os.Open(resolved.path)
	if err != nil {
		s.metrics.Imports.WithLabelValues("failed").Inc()
		return stats, errors.Mark(errors.Wrapf(err, "open import source %q", source), errors.ErrNotFound)
	}
	defer f.Close()

	triples, err := readTriples(f, format)
	if err != nil {
		s.metrics.Imports.WithLabelValues("failed").Inc()
		return stats, errors.Wrapf(err, "read %s as %s", source, format.Name)
	}
	scopeBlankNodes(triples, newBlankScope())

	merged, err := s.Merge(ctx, source, format.Name, triples)
	if err != nil {
		s.metrics.Imports.WithLabelValues("failed").Inc()
		return stats, err
	}

	s.metrics.Imports.WithLabelValues("ok").Inc()
	s.logger.Infow("Imported graph",
		logger.FieldSource, source,
		logger.FieldFormat, format.Name,
		"read", merged.Read,
		"added", merged.Added,
		"remote", resolved.remote,
	)
	return merged, nil
}

// Merge adds triples as a set union in one transaction and records the import.
// Blank node labels are stored as given.
func (s *Store) Merge(ctx context.Context, source, format string, triples []fact.Triple) (ImportStats, error) {
	stats := ImportStats{Source: source, Format: format, Read: len(triples)}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, markClosed(errors.Wrap(err, "begin import"))
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, TripleInsertQuery)
	if err != nil {
		return stats, errors.Wrap(err, "prepare triple insert")
	}
	defer stmt.Close()

	for i, t := range triples {
		if err := t.Validate(); err != nil {
			return stats, errors.Mark(errors.Wrapf(err, "triple %d", i+1), errors.ErrInvalidRequest)
		}
		object, kind, datatype, lang := encodeObject(t.Object)
		result, err := stmt.ExecContext(ctx, encodeNode(t.Subject), t.Predicate.Value, object, kind, datatype, lang)
		if err != nil {
			return stats, errors.Wrapf(err, "insert triple %d", i+1)
		}
		if n, err := result.RowsAffected(); err == nil {
			stats.Added += int(n)
		}
	}

	if _, err := tx.ExecContext(ctx, ImportInsertQuery, source, format, stats.Read, stats.Added); err != nil {
		return stats, errors.Wrap(err, "record import")
	}
	if err := tx.Commit(); err != nil {
		return stats, errors.Wrap(err, "commit import")
	}

	s.metrics.TriplesImported.WithLabelValues("read").Add(float64(stats.Read))
	s.metrics.TriplesImported.WithLabelValues("added").Add(float64(stats.Added))
	return stats, nil
}

// Objects returns every object of (subject, predicate), ordered by kind, value,
// datatype and language. An empty result is not an error.
func (s *Store) Objects(ctx context.Context, subject fact.Term, predicate string) ([]fact.Term, error) {
	s.metrics.Lookups.Inc()
	if !subject.IsNode() {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, ObjectsQuery, encodeNode(subject), predicate)
	if err != nil {
		return nil, markClosed(errors.Wrapf(err, "lookup %s %s", subject, predicate))
	}
	defer rows.Close()

	var objects []fact.Term
	for rows.Next() {
		var (
			value, datatype, lang string
			kind                  int64
		)
		if err := rows.Scan(&value, &kind, &datatype, &lang); err != nil {
			return nil, errors.Wrap(err, "scan object")
		}
		objects = append(objects, decodeTerm(value, kind, datatype, lang))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "lookup %s %s", subject, predicate)
	}
	return objects, nil
}

// Query executes a pattern query. Row order follows the query's OrderBy only.
func (s *Store) Query(ctx context.Context, q *pattern.Query) ([]pattern.Row, error) {
	compiled, err := compile(q)
	if err != nil {
		if q != nil {
			s.metrics.QueryErrors.WithLabelValues(q.Name()).Inc()
		}
		return nil, err
	}

	name := q.Name()
	s.metrics.Queries.WithLabelValues(name).Inc()
	timer := prometheus.NewTimer(s.metrics.QueryDuration.WithLabelValues(name))
	defer timer.ObserveDuration()

	s.logger.Debugw("Executing pattern query", logger.FieldQuery, name, "sql", compiled.sql)

	rows, err := s.db.QueryContext(ctx, compiled.sql, compiled.args...)
	if err != nil {
		s.metrics.QueryErrors.WithLabelValues(name).Inc()
		return nil, markClosed(errors.Wrapf(err, "execute query %q", name))
	}
	defer rows.Close()

	var results []pattern.Row
	for rows.Next() {
		row, err := scanRow(rows, compiled)
		if err != nil {
			s.metrics.QueryErrors.WithLabelValues(name).Inc()
			return nil, errors.Wrapf(err, "scan query %q", name)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		s.metrics.QueryErrors.WithLabelValues(name).Inc()
		return nil, errors.Wrapf(err, "execute query %q", name)
	}

	s.logger.Debugw("Pattern query complete", logger.FieldQuery, name, logger.FieldCount, len(results))
	return results, nil
}

// markClosed attaches db.ErrDatabaseClosed to errors from a closed connection.
func markClosed(err error) error {
	if db.IsDatabaseClosed(err) {
		return errors.WithHint(errors.Mark(err, db.ErrDatabaseClosed), "the fact store was closed; open a new one")
	}
	return err
}

func scanRow(rows *sql.Rows, compiled *compiledQuery) (pattern.Row, error) {
	type termCols struct {
		value, datatype, lang string
		kind                  int64
	}
	terms := make([]termCols, len(compiled.vars))
	counts := make([]int64, len(compiled.aliases))

	dest := make([]interface{}, 0, 4*len(terms)+len(counts))
	for i := range terms {
		dest = append(dest, &terms[i].value, &terms[i].kind, &terms[i].datatype, &terms[i].lang)
	}
	for i := range counts {
		dest = append(dest, &counts[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return pattern.Row{}, err
	}

	values := make(map[string]fact.Term, len(terms)+len(counts))
	for i, v := range compiled.vars {
		values[string(v)] = decodeTerm(terms[i].value, terms[i].kind, terms[i].datatype, terms[i].lang)
	}
	for i, alias := range compiled.aliases {
		values[alias] = fact.Integer(counts[i])
	}
	return pattern.NewRow(values), nil
}

// Stats reports store size and the most recent imports.
func (s *Store) Stats(ctx context.Context, recentImports int) (*Stats, error) {
	stats := &Stats{}
	if err := s.db.QueryRowContext(ctx, TripleStatsQuery).Scan(&stats.Triples, &stats.Subjects, &stats.Predicates); err != nil {
		return nil, markClosed(errors.Wrap(err, "query triple stats"))
	}

	rows, err := s.db.QueryContext(ctx, ImportListQuery, recentImports)
	if err != nil {
		return nil, errors.Wrap(err, "query import history")
	}
	defer rows.Close()

	for rows.Next() {
		var rec ImportRecord
		if err := rows.Scan(&rec.Source, &rec.Format, &rec.Read, &rec.Added, &rec.ImportedAt); err != nil {
			return nil, errors.Wrap(err, "scan import history")
		}
		stats.Imports = append(stats.Imports, rec)
	}
	return stats, errors.Wrap(rows.Err(), "query import history")
}
