package kb

import (
	"context"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
	"github.com/teranos/sotkb/internal/lazy"
	"github.com/teranos/sotkb/internal/util"
	"github.com/teranos/sotkb/vocab"
)

// Person is a view over a person node and its appellations.
type Person struct {
	graph Graph
	id    fact.Term
	names lazy.Cell[[]string]
}

// PersonRecord is the flat form of a Person.
type PersonRecord struct {
	Person *string `json:"person" yaml:"person"`
}

// NewPerson returns a view of the person identified by id.
func NewPerson(g Graph, id fact.Term) *Person {
	return &Person{graph: g, id: id}
}

// ID returns the person identifier.
func (p *Person) ID() fact.Term {
	return p.id
}

// Names returns the strings of every appellation, ordered by appellation then
// by name. The result is computed once.
func (p *Person) Names(ctx context.Context) ([]string, error) {
	return p.names.Get(func() ([]string, error) {
		appellations, err := p.graph.Objects(ctx, p.id, vocab.HasAppellation)
		if err != nil {
			return nil, errors.Wrapf(err, "appellations of %s", p.id)
		}
		names := []string{}
		for _, a := range appellations {
			strs, err := objectValues(ctx, p.graph, a, vocab.HasString)
			if err != nil {
				return nil, errors.Wrapf(err, "names of %s", a)
			}
			names = append(names, strs...)
		}
		return names, nil
	})
}

// Record flattens the person to its first name.
func (p *Person) Record(ctx context.Context) (PersonRecord, error) {
	names, err := p.Names(ctx)
	if err != nil {
		return PersonRecord{}, err
	}
	return PersonRecord{Person: util.First(names)}, nil
}

// firstName is the first name of the first person, or nil.
func firstName(ctx context.Context, persons []*Person) (*string, error) {
	if len(persons) == 0 {
		return nil, nil
	}
	names, err := persons[0].Names(ctx)
	if err != nil {
		return nil, err
	}
	return util.First(names), nil
}
