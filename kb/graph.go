package kb

import (
	"context"

	"go.uber.org/zap"

	"github.com/teranos/sotkb/fact"
	"github.com/teranos/sotkb/logger"
	"github.com/teranos/sotkb/pattern"
	"github.com/teranos/sotkb/vocab"
)

// Graph is the read side of the fact store that views traverse.
type Graph interface {
	// Objects returns every object of (subject, predicate) in a stable order.
	Objects(ctx context.Context, subject fact.Term, predicate string) ([]fact.Term, error)
	// Query executes a pattern query.
	Query(ctx context.Context, q *pattern.Query) ([]pattern.Row, error)
}

func objectValues(ctx context.Context, g Graph, subject fact.Term, predicate string) ([]string, error) {
	objects, err := g.Objects(ctx, subject, predicate)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(objects))
	for _, o := range objects {
		values = append(values, o.Value)
	}
	return values, nil
}

func firstObject(ctx context.Context, g Graph, subject fact.Term, predicate string) (*fact.Term, error) {
	objects, err := g.Objects(ctx, subject, predicate)
	if err != nil || len(objects) == 0 {
		return nil, err
	}
	return &objects[0], nil
}

func firstValue(ctx context.Context, g Graph, subject fact.Term, predicate string) (*string, error) {
	obj, err := firstObject(ctx, g, subject, predicate)
	if err != nil || obj == nil {
		return nil, err
	}
	return &obj.Value, nil
}

// follow walks predicates from start, taking the first object at every hop.
// A hop without objects ends the walk with nil.
func follow(ctx context.Context, g Graph, log *zap.SugaredLogger, start fact.Term, predicates ...string) (*fact.Term, error) {
	current := start
	for i, predicate := range predicates {
		next, err := firstObject(ctx, g, current, predicate)
		if err != nil {
			return nil, err
		}
		if next == nil {
			log.Debugw("Traversal exhausted",
				logger.FieldSubject, current.Value,
				logger.FieldPredicate, vocab.Short(predicate),
				logger.FieldHop, i+1,
			)
			return nil, nil
		}
		current = *next
	}
	return &current, nil
}

func followValue(ctx context.Context, g Graph, log *zap.SugaredLogger, start fact.Term, predicates ...string) (*string, error) {
	end, err := follow(ctx, g, log, start, predicates...)
	if err != nil || end == nil {
		return nil, err
	}
	return &end.Value, nil
}

// people wraps the ?person column of rows as Person views.
func people(g Graph, rows []pattern.Row) ([]*Person, error) {
	persons := make([]*Person, 0, len(rows))
	for _, row := range rows {
		id, err := column(row, "person")
		if err != nil {
			return nil, err
		}
		persons = append(persons, NewPerson(g, id))
	}
	return persons, nil
}
