package pattern

import (
	"sort"
	"strconv"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
)

// Row is one solution of a query: column name to bound term.
// Count aliases are bound to xsd:integer literals.
type Row struct {
	values map[string]fact.Term
}

// NewRow builds a row from column values.
func NewRow(values map[string]fact.Term) Row {
	copied := make(map[string]fact.Term, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Row{values: copied}
}

// Term returns the term bound to name.
func (r Row) Term(name string) (fact.Term, bool) {
	t, ok := r.values[name]
	return t, ok
}

// Value returns the lexical value bound to name, or "" when unbound.
func (r Row) Value(name string) string {
	return r.values[name].Value
}

// Int returns the integer bound to name (count aliases).
func (r Row) Int(name string) (int64, error) {
	t, ok := r.values[name]
	if !ok {
		return 0, errors.NewNotFoundError("column %q is not bound", name)
	}
	n, err := strconv.ParseInt(t.Value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "column %q is not an integer", name)
	}
	return n, nil
}

// Names lists the bound columns in lexical order.
func (r Row) Names() []string {
	names := make([]string, 0, len(r.values))
	for k := range r.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
