package factstore

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
	sottest "github.com/teranos/sotkb/internal/testing"
	"github.com/teranos/sotkb/pattern"
	"github.com/teranos/sotkb/vocab"
)

func importFixture(t *testing.T, content string) *Store {
	t.Helper()
	s := newTestStore(t)
	_, err := s.Import(context.Background(), sottest.WriteFixture(t, "graph.nt", content))
	require.NoError(t, err)
	return s
}

func TestCompile(t *testing.T) {
	q := pattern.New("labels").
		Where(pattern.Var("s"), pattern.IRI(vocab.Label), pattern.Var("label")).
		Bind("s", fact.IRI("http://ex.org/s")).
		Select("label").
		MustBuild()

	compiled, err := compile(q)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT t0.object, t0.object_kind, t0.datatype, t0.lang FROM triples AS t0 "+
			"WHERE (t0.predicate = ?) AND (t0.subject = ?)",
		compiled.sql)
	assert.Equal(t, []interface{}{vocab.Label, "http://ex.org/s"}, compiled.args)
	assert.Equal(t, []pattern.Var{"label"}, compiled.vars)
}

func TestCompileJoinsObjectToSubject(t *testing.T) {
	q := pattern.New("names").
		Where(pattern.Var("person"), pattern.IRI(vocab.HasAppellation), pattern.Var("a")).
		Where(pattern.Var("a"), pattern.IRI(vocab.HasString), pattern.Var("name")).
		Select("name").
		MustBuild()

	compiled, err := compile(q)
	require.NoError(t, err)
	assert.Contains(t, compiled.sql, "(t0.object = t1.subject AND t0.object_kind <> 2)")
}

func TestCompileNil(t *testing.T) {
	_, err := compile(nil)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestQueryTranslations(t *testing.T) {
	ctx := context.Background()
	s := importFixture(t, sottest.BrokenChainGraph)

	q := pattern.New("translations").
		Where(pattern.Var("trans_expr"), pattern.IRI(vocab.IsDerivativeOf), pattern.Var("original_expr")).
		Where(pattern.Var("original_expr"), pattern.IRI(vocab.HasLanguage), pattern.Var("sl")).
		Where(pattern.Var("trans_expr"), pattern.IRI(vocab.HasLanguage), pattern.Var("tl")).
		Filter(pattern.NotEqual("sl", pattern.Var("tl"))).
		Where(pattern.Var("trans_expr"), pattern.IRI(vocab.Realises), pattern.Var("trans_work")).
		SelectAll().
		OrderBy("trans_work").
		MustBuild()

	rows, err := s.Query(ctx, q)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, sottest.WorkPanther, rows[0].Value("trans_work"))
	assert.Equal(t, sottest.ExprPanther, rows[0].Value("trans_expr"))
	assert.Equal(t, sottest.LangGerman, rows[0].Value("sl"))
	assert.Equal(t, sottest.LangEnglish, rows[0].Value("tl"))
	assert.Equal(t, sottest.WorkCorrespondences, rows[1].Value("trans_work"))

	for _, row := range rows {
		sl, _ := row.Term("sl")
		tl, _ := row.Term("tl")
		assert.NotEqual(t, sl, tl)
		assert.Equal(t, fact.KindIRI, sl.Kind)
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(s.Metrics().Queries.WithLabelValues("translations")))
}

func TestQueryFeatures(t *testing.T) {
	ctx := context.Background()
	s := importFixture(t, sottest.BrokenChainGraph)

	t.Run("distinct removes repeated bindings", func(t *testing.T) {
		base := pattern.New("translators").
			Where(pattern.Var("expr"), pattern.IRI(vocab.IsDerivativeOf), pattern.Var("original")).
			Where(pattern.Var("expr"), pattern.IRI(vocab.ExpressionCreatedBy), pattern.Var("creation")).
			Where(pattern.Var("person"), pattern.IRI(vocab.Performed), pattern.Var("creation")).
			Select("person")

		all, err := s.Query(ctx, base.MustBuild())
		require.NoError(t, err)
		assert.Len(t, all, 2, "Lowell created two translations")

		distinct, err := s.Query(ctx, base.Distinct().MustBuild())
		require.NoError(t, err)
		require.Len(t, distinct, 1)
		assert.Equal(t, sottest.PersonLowell, distinct[0].Value("person"))
	})

	t.Run("group and count", func(t *testing.T) {
		q := pattern.New("target_languages").
			Where(pattern.Var("translation"), pattern.IRI(vocab.IsDerivativeOf), pattern.Var("original")).
			Where(pattern.Var("original"), pattern.IRI(vocab.HasLanguage), pattern.Var("sl")).
			Where(pattern.Var("translation"), pattern.IRI(vocab.HasLanguage), pattern.Var("tl")).
			Filter(pattern.NotEqual("sl", pattern.Var("tl"))).
			Where(pattern.Var("tl"), pattern.IRI(vocab.Label), pattern.Var("label")).
			Select("tl", "label").
			Count("tl", "n").
			GroupBy("label", "tl").
			MustBuild()

		rows, err := s.Query(ctx, q)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, sottest.LangEnglish, rows[0].Value("tl"))
		assert.Equal(t, "English", rows[0].Value("label"))
		n, err := rows[0].Int("n")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("order by count descending", func(t *testing.T) {
		q := pattern.New("genres_by_use").
			Where(pattern.Var("work"), pattern.IRI(vocab.Type), pattern.IRI(vocab.Work)).
			Where(pattern.Var("work"), pattern.IRI(vocab.HasType), pattern.Var("genre")).
			Select("genre").
			Count("work", "n").
			GroupBy("genre").
			OrderByDesc("n").
			MustBuild()

		rows, err := s.Query(ctx, q)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Poetry", rows[0].Value("genre"))
		assert.Equal(t, "Drama", rows[1].Value("genre"))
	})

	t.Run("fixed literal object", func(t *testing.T) {
		q := pattern.New("by_label").
			Where(pattern.Var("lang"), pattern.IRI(vocab.Label), pattern.Lit(fact.String("French"))).
			Select("lang").
			MustBuild()

		rows, err := s.Query(ctx, q)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, sottest.LangFrench, rows[0].Value("lang"))
	})

	t.Run("equality filter against a constant", func(t *testing.T) {
		q := pattern.New("english_expressions").
			Where(pattern.Var("expr"), pattern.IRI(vocab.HasLanguage), pattern.Var("lang")).
			Filter(pattern.Equal("lang", pattern.IRI(sottest.LangEnglish))).
			Select("expr").
			OrderBy("expr").
			MustBuild()

		rows, err := s.Query(ctx, q)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, sottest.ExprPanther, rows[0].Value("expr"))
		assert.Equal(t, sottest.ExprCorrespondences, rows[1].Value("expr"))
	})

	t.Run("literal bound to subject position matches nothing", func(t *testing.T) {
		q := pattern.New("none").
			Where(pattern.Var("s"), pattern.IRI(vocab.Label), pattern.Var("o")).
			Bind("s", fact.String("German")).
			Select("o").
			MustBuild()

		rows, err := s.Query(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("prepared query with per-call bindings", func(t *testing.T) {
		prepared := pattern.New("authors").
			Where(pattern.Var("expr"), pattern.IRI(vocab.IsDerivativeOf), pattern.Var("original")).
			Where(pattern.Var("original"), pattern.IRI(vocab.ExpressionCreatedBy), pattern.Var("creation")).
			Where(pattern.Var("person"), pattern.IRI(vocab.Performed), pattern.Var("creation")).
			Select("person").
			MustBuild()

		q, err := prepared.WithBindings(map[pattern.Var]fact.Term{"expr": fact.IRI(sottest.ExprCorrespondences)})
		require.NoError(t, err)
		rows, err := s.Query(ctx, q)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, sottest.PersonBaudelaire, rows[0].Value("person"))
	})
}

func TestQueryErrors(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	s := New(database, WithMetrics(NewMetrics(prometheus.NewRegistry())))
	q := pattern.New("labels").
		Where(pattern.Var("s"), pattern.IRI(vocab.Label), pattern.Var("label")).
		SelectAll().
		MustBuild()

	t.Run("execution failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT t0.subject")).
			WithArgs(vocab.Label).
			WillReturnError(errors.New("disk I/O error"))

		rows, err := s.Query(context.Background(), q)
		require.Error(t, err)
		assert.Nil(t, rows)
		assert.Contains(t, err.Error(), `execute query "labels"`)
	})

	t.Run("scan failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT t0.subject")).
			WithArgs(vocab.Label).
			WillReturnRows(sqlmock.NewRows([]string{"only_one_column"}).AddRow("x"))

		_, err := s.Query(context.Background(), q)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `scan query "labels"`)
	})

	t.Run("lookup failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT object, object_kind, datatype, lang FROM triples")).
			WithArgs("http://ex.org/s", vocab.Label).
			WillReturnError(errors.New("disk I/O error"))

		_, err := s.Objects(context.Background(), fact.IRI("http://ex.org/s"), vocab.Label)
		require.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, float64(2), testutil.ToFloat64(s.Metrics().QueryErrors.WithLabelValues("labels")))
}
