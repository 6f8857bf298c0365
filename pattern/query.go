// Package pattern expresses graph-pattern queries as data.
//
// A Query is a conjunction of triple patterns over variables and fixed terms,
// with optional filters, initial bindings, duplicate elimination, grouping,
// counting and ordering. Queries are validated when built so that variable
// names and predicate identifiers are checked before anything reaches a store.
// Stores compile a Query into their own execution plan; see factstore.
package pattern

import (
	"github.com/teranos/sotkb/fact"
)

// Operand is one position of a triple pattern or the right side of a filter:
// either a Var or a Fixed term.
type Operand interface {
	isOperand()
}

// Var is a named query variable, written without the leading "?".
type Var string

func (Var) isOperand() {}

// Fixed is a constant term in a pattern.
type Fixed struct {
	Term fact.Term
}

func (Fixed) isOperand() {}

// IRI returns a fixed identifier operand.
func IRI(value string) Fixed {
	return Fixed{Term: fact.IRI(value)}
}

// Lit returns a fixed operand for any term.
func Lit(term fact.Term) Fixed {
	return Fixed{Term: term}
}

// Triple is one subject-predicate-object pattern.
type Triple struct {
	Subject   Operand
	Predicate Operand
	Object    Operand
}

// Op is a filter comparison.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
)

func (o Op) String() string {
	if o == OpNotEqual {
		return "!="
	}
	return "="
}

// Filter compares a variable to another variable or a fixed term.
type Filter struct {
	Op    Op
	Left  Var
	Right Operand
}

// Equal keeps rows where left and right are the same term.
func Equal(left Var, right Operand) Filter {
	return Filter{Op: OpEqual, Left: left, Right: right}
}

// NotEqual keeps rows where left and right differ.
func NotEqual(left Var, right Operand) Filter {
	return Filter{Op: OpNotEqual, Left: left, Right: right}
}

// Binding fixes a variable to a term before matching.
type Binding struct {
	Var  Var
	Term fact.Term
}

// Count projects the number of rows in a group with a non-null Var as Alias.
type Count struct {
	Var   Var
	Alias string
}

// Order sorts rows by a projected variable.
type Order struct {
	Var  Var
	Desc bool
}

// Query is an immutable, validated pattern query. Build one with New.
type Query struct {
	name       string
	patterns   []Triple
	filters    []Filter
	bindings   []Binding
	projection []Var
	distinct   bool
	groupBy    []Var
	counts     []Count
	orderBy    []Order
}

// Name identifies the query in logs and metrics.
func (q *Query) Name() string { return q.name }

// Patterns returns the triple patterns in declaration order.
func (q *Query) Patterns() []Triple { return append([]Triple(nil), q.patterns...) }

// Filters returns the filters in declaration order.
func (q *Query) Filters() []Filter { return append([]Filter(nil), q.filters...) }

// Bindings returns the initial bindings.
func (q *Query) Bindings() []Binding { return append([]Binding(nil), q.bindings...) }

// Projection returns the projected variables.
func (q *Query) Projection() []Var { return append([]Var(nil), q.projection...) }

// Distinct reports whether duplicate rows are eliminated.
func (q *Query) Distinct() bool { return q.distinct }

// GroupBy returns the grouping variables.
func (q *Query) GroupBy() []Var { return append([]Var(nil), q.groupBy...) }

// Counts returns the count aggregates.
func (q *Query) Counts() []Count { return append([]Count(nil), q.counts...) }

// OrderBy returns the ordering keys.
func (q *Query) OrderBy() []Order { return append([]Order(nil), q.orderBy...) }

// Columns lists the output column names: projected variables, then count aliases.
func (q *Query) Columns() []string {
	cols := make([]string, 0, len(q.projection)+len(q.counts))
	for _, v := range q.projection {
		cols = append(cols, string(v))
	}
	for _, c := range q.counts {
		cols = append(cols, c.Alias)
	}
	return cols
}

// WithBindings derives a copy of q with additional initial bindings.
// A binding for an already-bound variable replaces it.
func (q *Query) WithBindings(bindings map[Var]fact.Term) (*Query, error) {
	b := fromQuery(q)
	for _, v := range sortedVars(bindings) {
		b.Bind(v, bindings[v])
	}
	return b.Build()
}

func patternVariables(patterns []Triple) []Var {
	seen := make(map[Var]bool)
	var vars []Var
	for _, p := range patterns {
		for _, op := range []Operand{p.Subject, p.Predicate, p.Object} {
			if v, ok := op.(Var); ok && !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}
	return vars
}
