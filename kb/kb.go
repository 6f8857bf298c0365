// Package kb exposes read-only views over a translation knowledge graph.
//
// A KnowledgeBase owns a fact store, imports serialized graphs into it and
// materializes Translation and Translator views from pattern queries. Views
// derive their properties on demand through single-hop lookups and
// parameterized queries; expensive derivations are computed once per view.
// Collections are cached on first access and the knowledge base rejects further
// imports from then on.
package kb

import (
	"context"

	"go.uber.org/zap"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/factstore"
	"github.com/teranos/sotkb/internal/lazy"
	"github.com/teranos/sotkb/logger"
)

// Store is a Graph that can also merge serialized sources.
type Store interface {
	Graph
	Import(ctx context.Context, source string) (factstore.ImportStats, error)
}

// KnowledgeBase is the facade over the fact store and its entity views.
type KnowledgeBase struct {
	store  Store
	logger *zap.SugaredLogger

	translations lazy.Cell[[]*Translation]
	translators  lazy.Cell[[]*Translator]
}

// Option configures a KnowledgeBase.
type Option func(*KnowledgeBase)

// WithLogger sets the logger used by the facade and its views.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(kb *KnowledgeBase) {
		if l != nil {
			kb.logger = l
		}
	}
}

// New returns a knowledge base over store.
func New(store Store, opts ...Option) *KnowledgeBase {
	kb := &KnowledgeBase{
		store:  store,
		logger: logger.Named("kb"),
	}
	for _, opt := range opts {
		opt(kb)
	}
	return kb
}

// ImportData merges the facts of source into the store. source is a local
// path, a file:// URL or any URL the fetcher understands. Once a collection
// has been materialized the graph is frozen and ImportData fails with
// errors.ErrConflict.
func (kb *KnowledgeBase) ImportData(ctx context.Context, source string) (factstore.ImportStats, error) {
	if kb.materialized() {
		err := errors.NewConflictError("cannot import %s: collections are already materialized", source)
		return factstore.ImportStats{}, errors.WithHint(err, "import every source before listing translations or translators")
	}

	stats, err := kb.store.Import(ctx, source)
	if err != nil {
		kb.logger.Errorw("Import failed", logger.FieldSource, source, logger.FieldError, err)
		return stats, err
	}
	kb.logger.Infow("Imported source",
		logger.FieldSource, source,
		logger.FieldFormat, stats.Format,
		logger.FieldCount, stats.Added,
		logger.FieldTotalCount, stats.Read,
	)
	return stats, nil
}

func (kb *KnowledgeBase) materialized() bool {
	_, translations := kb.translations.Peek()
	_, translators := kb.translators.Peek()
	return translations || translators
}

// Translations returns every translation, ordered by work then expression.
// The collection is queried once; later calls return the same slice.
func (kb *KnowledgeBase) Translations(ctx context.Context) ([]*Translation, error) {
	return kb.translations.Get(func() ([]*Translation, error) {
		rows, err := kb.store.Query(ctx, translationsQuery)
		if err != nil {
			return nil, errors.Wrap(err, "list translations")
		}
		translations := make([]*Translation, 0, len(rows))
		for _, row := range rows {
			t, err := newTranslation(kb.store, kb.logger, row)
			if err != nil {
				return nil, errors.Wrap(err, "list translations")
			}
			translations = append(translations, t)
		}
		kb.logger.Debugw("Materialized translations", logger.FieldCount, len(translations))
		return translations, nil
	})
}

// Translators returns every distinct person who created a derivative
// expression and has a label, ordered by identifier. Cached like Translations.
func (kb *KnowledgeBase) Translators(ctx context.Context) ([]*Translator, error) {
	return kb.translators.Get(func() ([]*Translator, error) {
		rows, err := kb.store.Query(ctx, translatorsQuery)
		if err != nil {
			return nil, errors.Wrap(err, "list translators")
		}
		translators := make([]*Translator, 0, len(rows))
		for _, row := range rows {
			id, err := column(row, "person")
			if err != nil {
				return nil, errors.Wrap(err, "list translators")
			}
			translators = append(translators, NewTranslator(kb.store, id))
		}
		kb.logger.Debugw("Materialized translators", logger.FieldCount, len(translators))
		return translators, nil
	})
}

// TranslationRecords flattens every translation. A translation that fails to
// flatten is skipped; the combined failures are returned with the records
// that succeeded.
func (kb *KnowledgeBase) TranslationRecords(ctx context.Context) ([]TranslationRecord, error) {
	translations, err := kb.Translations(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]TranslationRecord, 0, len(translations))
	var errs error
	for _, t := range translations {
		rec, err := t.Record(ctx)
		if err != nil {
			kb.logger.Warnw("Skipping translation", logger.FieldSubject, t.Expression().Value, logger.FieldError, err)
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "flatten translation %s", t.Expression().Value))
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}

// TranslatorRecords flattens every translator with the same isolation as
// TranslationRecords.
func (kb *KnowledgeBase) TranslatorRecords(ctx context.Context) ([]TranslatorRecord, error) {
	translators, err := kb.Translators(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]TranslatorRecord, 0, len(translators))
	var errs error
	for _, t := range translators {
		rec, err := t.Record(ctx)
		if err != nil {
			kb.logger.Warnw("Skipping translator", logger.FieldSubject, t.ID().Value, logger.FieldError, err)
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "flatten translator %s", t.ID().Value))
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}
