package kb

import (
	"context"

	"github.com/teranos/sotkb/fact"
	"github.com/teranos/sotkb/vocab"
)

// Biography reads optional biographical facts about a person.
// Every accessor is a fresh single-hop lookup and yields nil when the fact is absent.
type Biography struct {
	graph Graph
	id    fact.Term
}

// NewBiography returns the biography of the person identified by id.
func NewBiography(g Graph, id fact.Term) *Biography {
	return &Biography{graph: g, id: id}
}

// Label is the person's rdfs:label.
func (b *Biography) Label(ctx context.Context) (*string, error) {
	return firstValue(ctx, b.graph, b.id, vocab.Label)
}

// BirthDate is the lexical form of schema:birthDate.
func (b *Biography) BirthDate(ctx context.Context) (*string, error) {
	return firstValue(ctx, b.graph, b.id, vocab.BirthDate)
}

// DeathDate is the lexical form of schema:deathDate.
func (b *Biography) DeathDate(ctx context.Context) (*string, error) {
	return firstValue(ctx, b.graph, b.id, vocab.DeathDate)
}

// Gender is schema:gender.
func (b *Biography) Gender(ctx context.Context) (*string, error) {
	return firstValue(ctx, b.graph, b.id, vocab.Gender)
}

// Nationality is schema:nationality.
func (b *Biography) Nationality(ctx context.Context) (*string, error) {
	return firstValue(ctx, b.graph, b.id, vocab.Nationality)
}

// Translator is a Person with a Biography.
type Translator struct {
	*Person
	*Biography
}

// TranslatorRecord is the flat form of a Translator. Absent facts are null.
type TranslatorRecord struct {
	ID          string  `json:"id" yaml:"id"`
	Label       *string `json:"label" yaml:"label"`
	BirthDate   *string `json:"birthDate" yaml:"birthDate"`
	DeathDate   *string `json:"deathDate" yaml:"deathDate"`
	Gender      *string `json:"gender" yaml:"gender"`
	Nationality *string `json:"nationality" yaml:"nationality"`
}

// NewTranslator returns a view of the translator identified by id.
func NewTranslator(g Graph, id fact.Term) *Translator {
	return &Translator{Person: NewPerson(g, id), Biography: NewBiography(g, id)}
}

// Record flattens the translator.
func (t *Translator) Record(ctx context.Context) (TranslatorRecord, error) {
	rec := TranslatorRecord{ID: t.ID().Value}
	fields := []struct {
		dst **string
		get func(context.Context) (*string, error)
	}{
		{&rec.Label, t.Label},
		{&rec.BirthDate, t.BirthDate},
		{&rec.DeathDate, t.DeathDate},
		{&rec.Gender, t.Gender},
		{&rec.Nationality, t.Nationality},
	}
	for _, f := range fields {
		v, err := f.get(ctx)
		if err != nil {
			return TranslatorRecord{}, err
		}
		*f.dst = v
	}
	return rec, nil
}
