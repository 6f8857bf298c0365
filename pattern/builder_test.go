package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
)

const (
	derivativeOf = "http://iflastandards.info/ns/lrm/lrmer/R76i_is_derivative_of"
	hasLanguage  = "http://www.cidoc-crm.org/cidoc-crm/P72_has_language"
	label        = "http://www.w3.org/2000/01/rdf-schema#label"
)

func TestBuildSelectAll(t *testing.T) {
	q, err := New("translations").
		Where(Var("trans_expr"), IRI(derivativeOf), Var("original_expr")).
		Where(Var("original_expr"), IRI(hasLanguage), Var("sl")).
		Where(Var("trans_expr"), IRI(hasLanguage), Var("tl")).
		Filter(NotEqual("sl", Var("tl"))).
		SelectAll().
		Build()
	require.NoError(t, err)

	assert.Equal(t, "translations", q.Name())
	assert.Equal(t, []Var{"trans_expr", "original_expr", "sl", "tl"}, q.Projection())
	assert.Equal(t, []string{"trans_expr", "original_expr", "sl", "tl"}, q.Columns())
	assert.Len(t, q.Patterns(), 3)
	assert.Equal(t, []Filter{{Op: OpNotEqual, Left: "sl", Right: Var("tl")}}, q.Filters())
	assert.False(t, q.Distinct())
}

func TestBuildGroupedCount(t *testing.T) {
	q, err := New("source_language_facet").
		Where(Var("translation"), IRI(derivativeOf), Var("original")).
		Where(Var("original"), IRI(hasLanguage), Var("sl")).
		Where(Var("sl"), IRI(label), Var("label")).
		Select("sl", "label").
		Count("sl", "n").
		GroupBy("label", "sl").
		OrderByDesc("n").
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"sl", "label", "n"}, q.Columns())
	assert.Equal(t, []Count{{Var: "sl", Alias: "n"}}, q.Counts())
	assert.Equal(t, []Order{{Var: "n", Desc: true}}, q.OrderBy())
}

func TestBuildValidation(t *testing.T) {
	testCases := []struct {
		name    string
		builder *Builder
		message string
	}{
		{
			name:    "no patterns",
			builder: New("empty").Select("x"),
			message: "at least one pattern is required",
		},
		{
			name:    "missing name",
			builder: New("").Where(Var("s"), IRI(label), Var("o")).SelectAll(),
			message: "query name is empty",
		},
		{
			name:    "variable predicate",
			builder: New("q").Where(Var("s"), Var("p"), Var("o")).SelectAll(),
			message: "predicate must be a fixed IRI",
		},
		{
			name:    "relative predicate",
			builder: New("q").Where(Var("s"), IRI("label"), Var("o")).SelectAll(),
			message: "is not an absolute IRI",
		},
		{
			name:    "unexpanded prefixed predicate",
			builder: New("q").Where(Var("s"), IRI("lrm:R3_realises"), Var("o")).SelectAll(),
			message: "is a prefixed name",
		},
		{
			name:    "unexpanded prefixed object",
			builder: New("q").Where(Var("s"), IRI(label), IRI("crm:P72_has_language")).SelectAll(),
			message: "is a prefixed name",
		},
		{
			name:    "literal subject",
			builder: New("q").Where(Lit(fact.String("x")), IRI(label), Var("o")).SelectAll(),
			message: "subject must be an IRI or blank node",
		},
		{
			name:    "bad variable name",
			builder: New("q").Where(Var("1abc"), IRI(label), Var("o")).SelectAll(),
			message: "is not a valid variable name",
		},
		{
			name:    "unknown projected variable",
			builder: New("q").Where(Var("s"), IRI(label), Var("o")).Select("missing"),
			message: "projected variable ?missing does not occur",
		},
		{
			name:    "unknown filter variable",
			builder: New("q").Where(Var("s"), IRI(label), Var("o")).Filter(NotEqual("s", Var("z"))).SelectAll(),
			message: "filter variable ?z does not occur",
		},
		{
			name:    "unknown bound variable",
			builder: New("q").Where(Var("s"), IRI(label), Var("o")).Bind("x", fact.IRI("http://ex.org/x")).SelectAll(),
			message: "bound variable ?x does not occur",
		},
		{
			name:    "ungrouped projection",
			builder: New("q").Where(Var("s"), IRI(label), Var("o")).Select("s", "o").Count("s", "n").GroupBy("o"),
			message: "?s is projected but not grouped",
		},
		{
			name:    "alias collides with variable",
			builder: New("q").Where(Var("s"), IRI(label), Var("o")).Select("o").Count("s", "o"),
			message: `count alias "o" collides`,
		},
		{
			name:    "order key not projected",
			builder: New("q").Where(Var("s"), IRI(label), Var("o")).Select("s").OrderBy("o"),
			message: "order key ?o is not projected",
		},
		{
			name:    "nothing projected",
			builder: New("q").Where(Var("s"), IRI(label), Var("o")),
			message: "nothing is projected",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.builder.Build()
			require.Error(t, err)
			assert.Nil(t, q)
			assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		New("bad").Select("x").MustBuild()
	})
}

func TestWithBindings(t *testing.T) {
	base := New("authors").
		Where(Var("expr"), IRI(derivativeOf), Var("original")).
		Select("original").
		MustBuild()

	bound, err := base.WithBindings(map[Var]fact.Term{"expr": fact.IRI("http://ex.org/e1")})
	require.NoError(t, err)
	assert.Equal(t, []Binding{{Var: "expr", Term: fact.IRI("http://ex.org/e1")}}, bound.Bindings())
	assert.Empty(t, base.Bindings(), "the prepared query is not modified")

	rebound, err := bound.WithBindings(map[Var]fact.Term{"expr": fact.IRI("http://ex.org/e2")})
	require.NoError(t, err)
	assert.Equal(t, []Binding{{Var: "expr", Term: fact.IRI("http://ex.org/e2")}}, rebound.Bindings())

	_, err = base.WithBindings(map[Var]fact.Term{"nope": fact.IRI("http://ex.org/x")})
	assert.Error(t, err)
}

func TestRow(t *testing.T) {
	row := NewRow(map[string]fact.Term{
		"lang": fact.IRI("http://ex.org/de"),
		"n":    fact.Integer(3),
	})

	term, ok := row.Term("lang")
	require.True(t, ok)
	assert.Equal(t, fact.IRI("http://ex.org/de"), term)
	assert.Equal(t, "http://ex.org/de", row.Value("lang"))
	assert.Equal(t, "", row.Value("missing"))
	assert.Equal(t, []string{"lang", "n"}, row.Names())

	n, err := row.Int("n")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = row.Int("lang")
	assert.Error(t, err)
	_, err = row.Int("missing")
	assert.True(t, errors.IsNotFoundError(err))
}
