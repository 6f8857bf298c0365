package kb

import (
	"context"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/pattern"
)

// LanguageFacet counts translations per source or target language.
type LanguageFacet struct {
	Lang  string `json:"lang" yaml:"lang"`
	Label string `json:"label" yaml:"label"`
	Count int64  `json:"count" yaml:"count"`
}

// MagazineFacet is a serial work and its label.
type MagazineFacet struct {
	Magazine string `json:"magazine" yaml:"magazine"`
	Label    string `json:"label" yaml:"label"`
}

// GenreFacet is a work type. Genres are literals, so the label is the genre itself.
type GenreFacet struct {
	Genre string `json:"genre" yaml:"genre"`
	Label string `json:"label" yaml:"label"`
}

// PubDateFacet is a publication time span, keyed by its label.
type PubDateFacet struct {
	PubDate string `json:"pubDate" yaml:"pubDate"`
	Label   string `json:"label" yaml:"label"`
}

// FacetSet holds every facet, for filter UIs that want them in one call.
type FacetSet struct {
	SourceLanguages []LanguageFacet `json:"source_languages" yaml:"source_languages"`
	TargetLanguages []LanguageFacet `json:"target_languages" yaml:"target_languages"`
	Magazines       []MagazineFacet `json:"magazines" yaml:"magazines"`
	Genres          []GenreFacet    `json:"genres" yaml:"genres"`
	PubDates        []PubDateFacet  `json:"pub_dates" yaml:"pub_dates"`
}

// Facets are recomputed on every call.

// SourceLanguageFacet counts translations per original-expression language, ordered by label.
func (kb *KnowledgeBase) SourceLanguageFacet(ctx context.Context) ([]LanguageFacet, error) {
	return kb.languageFacet(ctx, sourceLanguageFacetQuery, "sl")
}

// TargetLanguageFacet counts translations per translation-expression language, ordered by label.
func (kb *KnowledgeBase) TargetLanguageFacet(ctx context.Context) ([]LanguageFacet, error) {
	return kb.languageFacet(ctx, targetLanguageFacetQuery, "tl")
}

func (kb *KnowledgeBase) languageFacet(ctx context.Context, q *pattern.Query, lang string) ([]LanguageFacet, error) {
	return facet(ctx, kb.store, q, func(row pattern.Row) (LanguageFacet, error) {
		n, err := row.Int("n")
		if err != nil {
			return LanguageFacet{}, err
		}
		return LanguageFacet{Lang: row.Value(lang), Label: row.Value("label"), Count: n}, nil
	})
}

// MagazineFacet lists the labelled serial works, ordered by label.
func (kb *KnowledgeBase) MagazineFacet(ctx context.Context) ([]MagazineFacet, error) {
	return facet(ctx, kb.store, magazineFacetQuery, func(row pattern.Row) (MagazineFacet, error) {
		return MagazineFacet{Magazine: row.Value("magazine"), Label: row.Value("label")}, nil
	})
}

// GenreFacet lists the types of works; a genre is its own label.
func (kb *KnowledgeBase) GenreFacet(ctx context.Context) ([]GenreFacet, error) {
	return facet(ctx, kb.store, genreFacetQuery, func(row pattern.Row) (GenreFacet, error) {
		g := row.Value("genre")
		return GenreFacet{Genre: g, Label: g}, nil
	})
}

// PubDateFacet lists labelled time spans that carry a date, ordered by label.
func (kb *KnowledgeBase) PubDateFacet(ctx context.Context) ([]PubDateFacet, error) {
	return facet(ctx, kb.store, pubDateFacetQuery, func(row pattern.Row) (PubDateFacet, error) {
		label := row.Value("label")
		return PubDateFacet{PubDate: label, Label: label}, nil
	})
}

// Facets computes every facet.
func (kb *KnowledgeBase) Facets(ctx context.Context) (*FacetSet, error) {
	var (
		set FacetSet
		err error
	)
	if set.SourceLanguages, err = kb.SourceLanguageFacet(ctx); err != nil {
		return nil, err
	}
	if set.TargetLanguages, err = kb.TargetLanguageFacet(ctx); err != nil {
		return nil, err
	}
	if set.Magazines, err = kb.MagazineFacet(ctx); err != nil {
		return nil, err
	}
	if set.Genres, err = kb.GenreFacet(ctx); err != nil {
		return nil, err
	}
	if set.PubDates, err = kb.PubDateFacet(ctx); err != nil {
		return nil, err
	}
	return &set, nil
}

func facet[T any](ctx context.Context, g Graph, q *pattern.Query, convert func(pattern.Row) (T, error)) ([]T, error) {
	rows, err := g.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrapf(err, "compute %s", q.Name())
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		v, err := convert(row)
		if err != nil {
			return nil, errors.Wrapf(err, "compute %s", q.Name())
		}
		out = append(out, v)
	}
	return out, nil
}
