package factstore

import (
	"strconv"
	"strings"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
	"github.com/teranos/sotkb/pattern"
)

// queryBuilder accumulates SQL WHERE clauses and parameters for pattern queries
type queryBuilder struct {
	whereClauses []string
	args         []interface{}
}

// addClause appends a WHERE clause with its arguments
func (qb *queryBuilder) addClause(clause string, args ...interface{}) {
	qb.whereClauses = append(qb.whereClauses, clause)
	qb.args = append(qb.args, args...)
}

// build returns the WHERE clauses joined with AND
func (qb *queryBuilder) build() string {
	if len(qb.whereClauses) == 0 {
		return "1 = 1"
	}
	return strings.Join(qb.whereClauses, " AND ")
}

type position int

const (
	posSubject position = iota
	posPredicate
	posObject
)

// columnRef locates one occurrence of a variable: pattern alias plus position.
type columnRef struct {
	alias string
	pos   position
}

func (c columnRef) node() string {
	if c.pos == posSubject {
		return c.alias + ".subject"
	}
	return c.alias + ".predicate"
}

// value is the lexical column; for node positions it holds the encoded node.
func (c columnRef) value() string {
	if c.pos == posObject {
		return c.alias + ".object"
	}
	return c.node()
}

// selectExprs yields value, kind, datatype, lang for decoding into a fact.Term.
func (c columnRef) selectExprs() []string {
	if c.pos == posObject {
		return []string{c.alias + ".object", c.alias + ".object_kind", c.alias + ".datatype", c.alias + ".lang"}
	}
	col := c.node()
	return []string{
		col,
		"CASE WHEN substr(" + col + ", 1, 2) = '_:' THEN 1 ELSE 0 END",
		"''",
		"''",
	}
}

func (c columnRef) groupExprs() []string {
	if c.pos == posObject {
		return []string{c.alias + ".object", c.alias + ".object_kind", c.alias + ".datatype", c.alias + ".lang"}
	}
	return []string{c.node()}
}

// compiledQuery is the SQL form of a pattern.Query.
type compiledQuery struct {
	sql     string
	args    []interface{}
	vars    []pattern.Var
	aliases []string
}

// compile translates q into one SELECT over self-joined triples.
// Each pattern becomes an alias t<i>; the first occurrence of a variable
// anchors it and later occurrences are joined to the anchor.
func compile(q *pattern.Query) (*compiledQuery, error) {
	if q == nil {
		return nil, errors.NewInvalidRequestError("query is nil")
	}

	qb := &queryBuilder{}
	anchors := make(map[pattern.Var]columnRef)
	patterns := q.Patterns()
	from := make([]string, len(patterns))

	for i, p := range patterns {
		alias := "t" + strconv.Itoa(i)
		from[i] = tableTriples + " AS " + alias

		positions := []struct {
			op  pattern.Operand
			pos position
		}{{p.Subject, posSubject}, {p.Predicate, posPredicate}, {p.Object, posObject}}

		for _, slot := range positions {
			ref := columnRef{alias: alias, pos: slot.pos}
			switch op := slot.op.(type) {
			case pattern.Var:
				if anchor, ok := anchors[op]; ok {
					qb.addClause(equalRefs(anchor, ref))
					continue
				}
				anchors[op] = ref
			case pattern.Fixed:
				clause, args := equalConst(ref, op.Term)
				qb.addClause(clause, args...)
			default:
				return nil, errors.NewInvalidRequestError("query %q: pattern %d has an empty position", q.Name(), i)
			}
		}
	}

	lookup := func(v pattern.Var) (columnRef, error) {
		ref, ok := anchors[v]
		if !ok {
			return columnRef{}, errors.NewInvalidRequestError("query %q: variable ?%s is unbound", q.Name(), v)
		}
		return ref, nil
	}

	for _, b := range q.Bindings() {
		ref, err := lookup(b.Var)
		if err != nil {
			return nil, err
		}
		clause, args := equalConst(ref, b.Term)
		qb.addClause(clause, args...)
	}

	for _, f := range q.Filters() {
		left, err := lookup(f.Left)
		if err != nil {
			return nil, err
		}
		var clause string
		var args []interface{}
		switch right := f.Right.(type) {
		case pattern.Var:
			ref, err := lookup(right)
			if err != nil {
				return nil, err
			}
			clause = equalRefs(left, ref)
		case pattern.Fixed:
			clause, args = equalConst(left, right.Term)
		default:
			return nil, errors.NewInvalidRequestError("query %q: filter on ?%s has no right operand", q.Name(), f.Left)
		}
		if f.Op == pattern.OpNotEqual {
			clause = "NOT " + clause
		}
		qb.addClause(clause, args...)
	}

	var selectList []string
	vars := q.Projection()
	for _, v := range vars {
		ref, err := lookup(v)
		if err != nil {
			return nil, err
		}
		selectList = append(selectList, ref.selectExprs()...)
	}

	var aliases []string
	countExprs := make(map[string]string)
	for _, c := range q.Counts() {
		ref, err := lookup(c.Var)
		if err != nil {
			return nil, err
		}
		expr := "COUNT(" + ref.value() + ")"
		countExprs[c.Alias] = expr
		selectList = append(selectList, expr+` AS "`+c.Alias+`"`)
		aliases = append(aliases, c.Alias)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	if q.Distinct() {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(strings.Join(selectList, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(strings.Join(from, ", "))
	sb.WriteString(" WHERE ")
	sb.WriteString(qb.build())

	if groupBy := q.GroupBy(); len(groupBy) > 0 {
		var exprs []string
		for _, v := range groupBy {
			ref, err := lookup(v)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, ref.groupExprs()...)
		}
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(exprs, ", "))
	}

	if orderBy := q.OrderBy(); len(orderBy) > 0 {
		var exprs []string
		for _, o := range orderBy {
			expr, ok := countExprs[string(o.Var)]
			if !ok {
				ref, err := lookup(o.Var)
				if err != nil {
					return nil, err
				}
				expr = ref.value()
			}
			if o.Desc {
				expr += " DESC"
			}
			exprs = append(exprs, expr)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(exprs, ", "))
	}

	return &compiledQuery{
		sql:     sb.String(),
		args:    qb.args,
		vars:    vars,
		aliases: aliases,
	}, nil
}

// equalRefs is the SQL for "both occurrences hold the same term".
func equalRefs(a, b columnRef) string {
	switch {
	case a.pos != posObject && b.pos != posObject:
		return "(" + a.node() + " = " + b.node() + ")"
	case a.pos == posObject && b.pos == posObject:
		return "(" + a.alias + ".object = " + b.alias + ".object AND " +
			a.alias + ".object_kind = " + b.alias + ".object_kind AND " +
			a.alias + ".datatype = " + b.alias + ".datatype AND " +
			a.alias + ".lang = " + b.alias + ".lang)"
	case a.pos == posObject:
		return "(" + a.alias + ".object = " + b.node() + " AND " + a.alias + ".object_kind <> 2)"
	default:
		return "(" + b.alias + ".object = " + a.node() + " AND " + b.alias + ".object_kind <> 2)"
	}
}

// equalConst is the SQL for "this occurrence holds term".
func equalConst(ref columnRef, term fact.Term) (string, []interface{}) {
	if ref.pos != posObject {
		if !term.IsNode() {
			// literals never occur in subject or predicate position
			return "(1 = 0)", nil
		}
		return "(" + ref.node() + " = ?)", []interface{}{encodeNode(term)}
	}
	value, kind, datatype, lang := encodeObject(term)
	return "(" + ref.alias + ".object = ? AND " + ref.alias + ".object_kind = ? AND " +
			ref.alias + ".datatype = ? AND " + ref.alias + ".lang = ?)",
		[]interface{}{value, kind, datatype, lang}
}
