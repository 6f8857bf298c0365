// Package fact defines the terms and triples held by the fact store.
package fact

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teranos/sotkb/errors"
)

// XSD datatype IRIs assigned to literals that carry no explicit type.
const (
	XSDString     = "http://www.w3.org/2001/XMLSchema#string"
	XSDInteger    = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDouble     = "http://www.w3.org/2001/XMLSchema#double"
	XSDBoolean    = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDDate       = "http://www.w3.org/2001/XMLSchema#date"
	XSDDateTime   = "http://www.w3.org/2001/XMLSchema#dateTime"
	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

// Kind distinguishes identifiers from literals.
// The numeric values are persisted; do not reorder.
type Kind uint8

const (
	KindIRI Kind = iota
	KindBlank
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Term is one position of a triple: an IRI, a blank node or a typed literal.
// Datatype and Lang are only meaningful for literals.
type Term struct {
	Kind     Kind
	Value    string
	Datatype string
	Lang     string
}

// IRI returns an identifier term.
func IRI(value string) Term {
	return Term{Kind: KindIRI, Value: value}
}

// Blank returns a blank node term; label is given without the "_:" prefix.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: strings.TrimPrefix(label, "_:")}
}

// Literal returns a typed literal. An empty datatype means xsd:string.
func Literal(value, datatype string) Term {
	if datatype == "" {
		datatype = XSDString
	}
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// String returns a plain string literal.
func String(value string) Term {
	return Literal(value, XSDString)
}

// LangLiteral returns a language-tagged literal.
func LangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: RDFLangString, Lang: strings.ToLower(lang)}
}

// Integer returns an xsd:integer literal.
func Integer(n int64) Term {
	return Literal(strconv.FormatInt(n, 10), XSDInteger)
}

// IsZero reports whether t is the zero Term.
func (t Term) IsZero() bool {
	return t == Term{}
}

// IsNode reports whether t may appear in subject position.
func (t Term) IsNode() bool {
	return t.Kind == KindIRI || t.Kind == KindBlank
}

// IsLiteral reports whether t is a literal.
func (t Term) IsLiteral() bool {
	return t.Kind == KindLiteral
}

// String renders t in N-Triples syntax.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	default:
		quoted := strconv.Quote(t.Value)
		if t.Lang != "" {
			return quoted + "@" + t.Lang
		}
		if t.Datatype == "" || t.Datatype == XSDString {
			return quoted
		}
		return quoted + "^^<" + t.Datatype + ">"
	}
}

// Triple is one subject-predicate-object fact.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Validate checks the positional constraints of a fact.
func (t Triple) Validate() error {
	if !t.Subject.IsNode() || t.Subject.Value == "" {
		return errors.Newf("subject must be an IRI or blank node, got %s", t.Subject)
	}
	if t.Predicate.Kind != KindIRI || t.Predicate.Value == "" {
		return errors.Newf("predicate must be an IRI, got %s", t.Predicate)
	}
	if t.Object.IsZero() {
		return errors.New("object is empty")
	}
	return nil
}

// String renders the triple as an N-Triples statement.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String() + " ."
}
