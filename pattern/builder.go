package pattern

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
	"github.com/teranos/sotkb/vocab"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Builder accumulates a query; errors are reported once, by Build.
type Builder struct {
	q         Query
	selectAll bool
	errs      []string
}

// New starts a query with a name used in logs and metrics.
func New(name string) *Builder {
	return &Builder{q: Query{name: name}}
}

func fromQuery(q *Query) *Builder {
	return &Builder{q: Query{
		name:       q.name,
		patterns:   q.Patterns(),
		filters:    q.Filters(),
		bindings:   q.Bindings(),
		projection: q.Projection(),
		distinct:   q.distinct,
		groupBy:    q.GroupBy(),
		counts:     q.Counts(),
		orderBy:    q.OrderBy(),
	}}
}

// Where adds the pattern (s, p, o).
func (b *Builder) Where(s, p, o Operand) *Builder {
	b.q.patterns = append(b.q.patterns, Triple{Subject: s, Predicate: p, Object: o})
	return b
}

// Filter adds a filter.
func (b *Builder) Filter(f Filter) *Builder {
	b.q.filters = append(b.q.filters, f)
	return b
}

// Bind fixes v to term before matching; the variable is still projected.
func (b *Builder) Bind(v Var, term fact.Term) *Builder {
	for i, existing := range b.q.bindings {
		if existing.Var == v {
			b.q.bindings[i].Term = term
			return b
		}
	}
	b.q.bindings = append(b.q.bindings, Binding{Var: v, Term: term})
	return b
}

// Select sets the projected variables.
func (b *Builder) Select(vars ...Var) *Builder {
	b.q.projection = append([]Var(nil), vars...)
	b.selectAll = false
	return b
}

// SelectAll projects every pattern variable in order of first appearance.
func (b *Builder) SelectAll() *Builder {
	b.selectAll = true
	return b
}

// Distinct eliminates duplicate rows.
func (b *Builder) Distinct() *Builder {
	b.q.distinct = true
	return b
}

// GroupBy groups rows by the given variables.
func (b *Builder) GroupBy(vars ...Var) *Builder {
	b.q.groupBy = append(b.q.groupBy, vars...)
	return b
}

// Count projects the per-group count of v as alias.
func (b *Builder) Count(v Var, alias string) *Builder {
	b.q.counts = append(b.q.counts, Count{Var: v, Alias: alias})
	return b
}

// OrderBy sorts ascending by v.
func (b *Builder) OrderBy(vars ...Var) *Builder {
	for _, v := range vars {
		b.q.orderBy = append(b.q.orderBy, Order{Var: v})
	}
	return b
}

// OrderByDesc sorts descending by v.
func (b *Builder) OrderByDesc(v Var) *Builder {
	b.q.orderBy = append(b.q.orderBy, Order{Var: v, Desc: true})
	return b
}

// Build validates the query and returns it.
func (b *Builder) Build() (*Query, error) {
	q := b.q
	if b.selectAll {
		q.projection = patternVariables(q.patterns)
	}

	b.errs = nil
	b.validate(&q)
	if len(b.errs) > 0 {
		return nil, errors.Mark(
			errors.Newf("query %q: %s", q.name, strings.Join(b.errs, "; ")),
			errors.ErrInvalidRequest,
		)
	}
	return &q, nil
}

// MustBuild is Build for package-level query definitions; it panics on error.
func (b *Builder) MustBuild() *Query {
	q, err := b.Build()
	if err != nil {
		panic(err)
	}
	return q
}

func (b *Builder) failf(format string, args ...interface{}) {
	b.errs = append(b.errs, errors.Newf(format, args...).Error())
}

func (b *Builder) validate(q *Query) {
	if q.name == "" {
		b.failf("query name is empty")
	}
	if len(q.patterns) == 0 {
		b.failf("at least one pattern is required")
	}

	known := make(map[Var]bool)
	for i, p := range q.patterns {
		b.checkPosition(i, "subject", p.Subject, known)
		b.checkPosition(i, "predicate", p.Predicate, known)
		b.checkPosition(i, "object", p.Object, known)
	}

	requireKnown := func(role string, v Var) {
		if !known[v] {
			b.failf("%s variable ?%s does not occur in any pattern", role, v)
		}
	}

	for _, f := range q.filters {
		requireKnown("filter", f.Left)
		switch r := f.Right.(type) {
		case Var:
			requireKnown("filter", r)
		case Fixed:
			if r.Term.IsZero() {
				b.failf("filter on ?%s compares against an empty term", f.Left)
			}
		default:
			b.failf("filter on ?%s has no right operand", f.Left)
		}
	}
	for _, binding := range q.bindings {
		requireKnown("bound", binding.Var)
		if binding.Term.IsZero() {
			b.failf("binding for ?%s is empty", binding.Var)
		}
	}

	if len(q.projection) == 0 && len(q.counts) == 0 {
		b.failf("nothing is projected")
	}
	projected := make(map[Var]bool)
	for _, v := range q.projection {
		requireKnown("projected", v)
		if projected[v] {
			b.failf("?%s is projected twice", v)
		}
		projected[v] = true
	}

	grouped := make(map[Var]bool)
	for _, v := range q.groupBy {
		requireKnown("grouping", v)
		grouped[v] = true
	}

	aliases := make(map[string]bool)
	for _, c := range q.counts {
		requireKnown("counted", c.Var)
		if !identifierPattern.MatchString(c.Alias) {
			b.failf("count alias %q is not a valid name", c.Alias)
		}
		if known[Var(c.Alias)] || aliases[c.Alias] {
			b.failf("count alias %q collides with another column", c.Alias)
		}
		aliases[c.Alias] = true
	}

	if len(q.counts) > 0 && len(q.groupBy) > 0 {
		for _, v := range q.projection {
			if !grouped[v] {
				b.failf("?%s is projected but not grouped", v)
			}
		}
	}

	for _, o := range q.orderBy {
		if !projected[o.Var] && !aliases[string(o.Var)] {
			b.failf("order key ?%s is not projected", o.Var)
		}
	}
}

func (b *Builder) checkPosition(i int, position string, op Operand, known map[Var]bool) {
	switch v := op.(type) {
	case Var:
		if position == "predicate" {
			b.failf("pattern %d: predicate must be a fixed IRI, got ?%s", i, v)
			return
		}
		if !identifierPattern.MatchString(string(v)) {
			b.failf("pattern %d: %q is not a valid variable name", i, string(v))
			return
		}
		known[v] = true
	case Fixed:
		switch position {
		case "subject":
			if !v.Term.IsNode() {
				b.failf("pattern %d: subject must be an IRI or blank node, got %s", i, v.Term)
				return
			}
		case "predicate":
			if v.Term.Kind != fact.KindIRI {
				b.failf("pattern %d: predicate must be an IRI, got %s", i, v.Term)
				return
			}
		}
		if v.Term.Kind == fact.KindIRI && !isAbsoluteIRI(v.Term.Value) {
			b.failf("pattern %d: %s %q is not an absolute IRI", i, position, v.Term.Value)
		} else if v.Term.Kind == fact.KindIRI && vocab.IsPrefixed(v.Term.Value) {
			b.failf("pattern %d: %s %q is a prefixed name, expand it with vocab.Full", i, position, v.Term.Value)
		}
	default:
		b.failf("pattern %d: %s is missing", i, position)
	}
}

func isAbsoluteIRI(value string) bool {
	if value == "" || strings.ContainsAny(value, " \t\n<>\"") {
		return false
	}
	u, err := url.Parse(value)
	return err == nil && u.IsAbs() && (u.Opaque != "" || u.Host != "" || u.Path != "")
}

func sortedVars(m map[Var]fact.Term) []Var {
	vars := make([]Var, 0, len(m))
	for v := range m {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return vars
}
