package kb

import (
	"context"

	"go.uber.org/zap"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
	"github.com/teranos/sotkb/internal/lazy"
	"github.com/teranos/sotkb/internal/util"
	"github.com/teranos/sotkb/pattern"
	"github.com/teranos/sotkb/vocab"
)

// Translation is a view over a translated expression, bound to the work it
// realises, the expression it derives from and both languages.
type Translation struct {
	graph  Graph
	logger *zap.SugaredLogger

	work     fact.Term
	expr     fact.Term
	original fact.Term
	sl       fact.Term
	tl       fact.Term

	authors     lazy.Cell[[]*Person]
	translators lazy.Cell[[]*Person]
}

// TranslationRecord is the flat form of a Translation. Absent values are null.
type TranslationRecord struct {
	Magazine       *string `json:"magazine" yaml:"magazine"`
	Issue          *string `json:"issue" yaml:"issue"`
	PubDate        *string `json:"pubDate" yaml:"pubDate"`
	Author         *string `json:"author" yaml:"author"`
	Title          *string `json:"title" yaml:"title"`
	Translator     *string `json:"translator" yaml:"translator"`
	Genre          *string `json:"genre" yaml:"genre"`
	SourceLanguage *string `json:"source_language" yaml:"source_language"`
	TargetLanguage *string `json:"target_language" yaml:"target_language"`
}

func newTranslation(g Graph, log *zap.SugaredLogger, row pattern.Row) (*Translation, error) {
	t := &Translation{graph: g, logger: log}
	for _, col := range []struct {
		name string
		dst  *fact.Term
	}{
		{"trans_work", &t.work},
		{"trans_expr", &t.expr},
		{"original_expr", &t.original},
		{"sl", &t.sl},
		{"tl", &t.tl},
	} {
		term, err := column(row, col.name)
		if err != nil {
			return nil, err
		}
		*col.dst = term
	}
	return t, nil
}

// Work is the work the translation expression realises.
func (t *Translation) Work() fact.Term { return t.work }

// Expression is the translation (derivative) expression.
func (t *Translation) Expression() fact.Term { return t.expr }

// OriginalExpression is the expression the translation derives from.
func (t *Translation) OriginalExpression() fact.Term { return t.original }

// SourceLanguageID is the language of the original expression.
func (t *Translation) SourceLanguageID() fact.Term { return t.sl }

// TargetLanguageID is the language of the translation expression.
func (t *Translation) TargetLanguageID() fact.Term { return t.tl }

// Titles returns every label of the translated work.
func (t *Translation) Titles(ctx context.Context) ([]string, error) {
	return objectValues(ctx, t.graph, t.work, vocab.Label)
}

// SourceLanguage returns the label of the original's language.
func (t *Translation) SourceLanguage(ctx context.Context) (*string, error) {
	return firstValue(ctx, t.graph, t.sl, vocab.Label)
}

// TargetLanguage returns the label of the translation's language.
func (t *Translation) TargetLanguage(ctx context.Context) (*string, error) {
	return firstValue(ctx, t.graph, t.tl, vocab.Label)
}

// Languages returns the label of every language of the translated expression.
// Languages without a label are skipped.
func (t *Translation) Languages(ctx context.Context) ([]string, error) {
	langs, err := t.graph.Objects(ctx, t.expr, vocab.HasLanguage)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(langs))
	for _, lang := range langs {
		label, err := firstValue(ctx, t.graph, lang, vocab.Label)
		if err != nil {
			return nil, err
		}
		if label == nil {
			t.logger.Debugw("Language has no label", "language", lang.Value)
			continue
		}
		labels = append(labels, *label)
	}
	return labels, nil
}

// Authors returns the creators of the original expression. Computed once.
func (t *Translation) Authors(ctx context.Context) ([]*Person, error) {
	return t.authors.Get(func() ([]*Person, error) {
		return t.queryPeople(ctx, authorsQuery)
	})
}

// Translators returns the distinct creators of the translated expression. Computed once.
func (t *Translation) Translators(ctx context.Context) ([]*Person, error) {
	return t.translators.Get(func() ([]*Person, error) {
		return t.queryPeople(ctx, expressionTranslatorsQuery)
	})
}

func (t *Translation) queryPeople(ctx context.Context, prepared *pattern.Query) ([]*Person, error) {
	q, err := bindExpression(prepared, t.expr)
	if err != nil {
		return nil, err
	}
	rows, err := t.graph.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrapf(err, "%s of %s", prepared.Name(), t.expr)
	}
	return people(t.graph, rows)
}

// PubDate returns the time-span label of the publishing issue's manifestation.
func (t *Translation) PubDate(ctx context.Context) (*string, error) {
	return followValue(ctx, t.graph, t.logger, t.work,
		vocab.IsPartOf,
		vocab.IsRealisedBy,
		vocab.IsEmbodiedIn,
		vocab.ManifestationCreatedBy,
		vocab.HasTimeSpan,
		vocab.Label,
	)
}

// Magazine returns the label of the serial the issue belongs to.
func (t *Translation) Magazine(ctx context.Context) (*string, error) {
	return followValue(ctx, t.graph, t.logger, t.work, vocab.IsPartOf, vocab.IsPartOf, vocab.Label)
}

// Issue returns the label of the issue the work is part of.
func (t *Translation) Issue(ctx context.Context) (*string, error) {
	return followValue(ctx, t.graph, t.logger, t.work, vocab.IsPartOf, vocab.Label)
}

// Genre returns the work's type.
func (t *Translation) Genre(ctx context.Context) (*string, error) {
	return followValue(ctx, t.graph, t.logger, t.work, vocab.HasType)
}

// Record flattens the translation. Author and translator are the first name of
// the first person; title is the first label.
func (t *Translation) Record(ctx context.Context) (TranslationRecord, error) {
	var rec TranslationRecord
	var err error

	scalars := []struct {
		dst **string
		get func(context.Context) (*string, error)
	}{
		{&rec.Magazine, t.Magazine},
		{&rec.Issue, t.Issue},
		{&rec.PubDate, t.PubDate},
		{&rec.Genre, t.Genre},
		{&rec.SourceLanguage, t.SourceLanguage},
		{&rec.TargetLanguage, t.TargetLanguage},
	}
	for _, s := range scalars {
		if *s.dst, err = s.get(ctx); err != nil {
			return TranslationRecord{}, err
		}
	}

	authors, err := t.Authors(ctx)
	if err != nil {
		return TranslationRecord{}, err
	}
	if rec.Author, err = firstName(ctx, authors); err != nil {
		return TranslationRecord{}, err
	}

	translators, err := t.Translators(ctx)
	if err != nil {
		return TranslationRecord{}, err
	}
	if rec.Translator, err = firstName(ctx, translators); err != nil {
		return TranslationRecord{}, err
	}

	titles, err := t.Titles(ctx)
	if err != nil {
		return TranslationRecord{}, err
	}
	rec.Title = util.First(titles)
	return rec, nil
}
