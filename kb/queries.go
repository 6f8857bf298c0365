package kb

import (
	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
	p "github.com/teranos/sotkb/pattern"
	"github.com/teranos/sotkb/vocab"
)

// Translation selection: a derivative expression whose language differs from
// the language of the expression it derives from.
var translationsQuery = p.New("translations").
	Where(p.Var("trans_expr"), p.IRI(vocab.IsDerivativeOf), p.Var("original_expr")).
	Where(p.Var("original_expr"), p.IRI(vocab.HasLanguage), p.Var("sl")).
	Where(p.Var("trans_expr"), p.IRI(vocab.HasLanguage), p.Var("tl")).
	Filter(p.NotEqual("sl", p.Var("tl"))).
	Where(p.Var("trans_expr"), p.IRI(vocab.Realises), p.Var("trans_work")).
	SelectAll().
	OrderBy("trans_work", "trans_expr").
	MustBuild()

var translatorsQuery = p.New("translators").
	Where(p.Var("expr"), p.IRI(vocab.IsDerivativeOf), p.Var("original")).
	Where(p.Var("expr"), p.IRI(vocab.ExpressionCreatedBy), p.Var("creation")).
	Where(p.Var("person"), p.IRI(vocab.Performed), p.Var("creation")).
	Where(p.Var("person"), p.IRI(vocab.Label), p.Var("label")).
	Select("person").
	Distinct().
	OrderBy("person").
	MustBuild()

// Bound per translation on ?expr.
var authorsQuery = p.New("authors").
	Where(p.Var("expr"), p.IRI(vocab.IsDerivativeOf), p.Var("original")).
	Where(p.Var("original"), p.IRI(vocab.ExpressionCreatedBy), p.Var("creation")).
	Where(p.Var("person"), p.IRI(vocab.Performed), p.Var("creation")).
	Select("person").
	OrderBy("person").
	MustBuild()

// Bound per translation on ?expr.
var expressionTranslatorsQuery = p.New("expression_translators").
	Where(p.Var("expr"), p.IRI(vocab.ExpressionCreatedBy), p.Var("creation")).
	Where(p.Var("person"), p.IRI(vocab.Performed), p.Var("creation")).
	Select("person").
	Distinct().
	OrderBy("person").
	MustBuild()

// Counts rows of the translation selection, so a derivative expression that
// realises no work is not counted.
func languageFacetQuery(name string, lang p.Var) *p.Query {
	return p.New(name).
		Where(p.Var("translation"), p.IRI(vocab.IsDerivativeOf), p.Var("original")).
		Where(p.Var("original"), p.IRI(vocab.HasLanguage), p.Var("sl")).
		Where(p.Var("translation"), p.IRI(vocab.HasLanguage), p.Var("tl")).
		Filter(p.NotEqual("sl", p.Var("tl"))).
		Where(p.Var("translation"), p.IRI(vocab.Realises), p.Var("work")).
		Where(lang, p.IRI(vocab.Label), p.Var("label")).
		Select(lang, "label").
		Count(lang, "n").
		GroupBy("label", lang).
		OrderBy("label", lang).
		MustBuild()
}

var (
	sourceLanguageFacetQuery = languageFacetQuery("source_language_facet", "sl")
	targetLanguageFacetQuery = languageFacetQuery("target_language_facet", "tl")
)

var magazineFacetQuery = p.New("magazine_facet").
	Where(p.Var("magazine"), p.IRI(vocab.Type), p.IRI(vocab.SerialWork)).
	Where(p.Var("magazine"), p.IRI(vocab.Label), p.Var("label")).
	Select("magazine", "label").
	Distinct().
	OrderBy("label", "magazine").
	MustBuild()

var genreFacetQuery = p.New("genre_facet").
	Where(p.Var("work"), p.IRI(vocab.Type), p.IRI(vocab.Work)).
	Where(p.Var("work"), p.IRI(vocab.HasType), p.Var("genre")).
	Select("genre").
	Distinct().
	OrderBy("genre").
	MustBuild()

var pubDateFacetQuery = p.New("pubdate_facet").
	Where(p.Var("mc"), p.IRI(vocab.HasTimeSpan), p.Var("span")).
	Where(p.Var("span"), p.IRI(vocab.AtSomeTimeWithin), p.Var("duration")).
	Where(p.Var("span"), p.IRI(vocab.Label), p.Var("label")).
	Select("label").
	Distinct().
	OrderBy("label").
	MustBuild()

// bindExpression parameterizes a per-translation query.
func bindExpression(q *p.Query, expr fact.Term) (*p.Query, error) {
	return q.WithBindings(map[p.Var]fact.Term{"expr": expr})
}

// column returns a bound column or an error naming the query result shape.
func column(row p.Row, name string) (fact.Term, error) {
	t, ok := row.Term(name)
	if !ok || t.IsZero() {
		return fact.Term{}, errors.NewNotFoundError("result row has no %q column", name)
	}
	return t, nil
}
