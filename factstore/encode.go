package factstore

import (
	"strings"

	"github.com/teranos/sotkb/fact"
)

const blankPrefix = "_:"

// encodeNode maps an IRI or blank node onto the TEXT columns.
func encodeNode(t fact.Term) string {
	if t.Kind == fact.KindBlank {
		return blankPrefix + t.Value
	}
	return t.Value
}

// encodeObject maps any term onto (object, object_kind, datatype, lang).
// Node objects share the subject encoding so object-to-subject joins are plain equality.
func encodeObject(t fact.Term) (string, int64, string, string) {
	switch t.Kind {
	case fact.KindLiteral:
		return t.Value, int64(fact.KindLiteral), t.Datatype, t.Lang
	default:
		return encodeNode(t), int64(t.Kind), "", ""
	}
}

func decodeTerm(value string, kind int64, datatype, lang string) fact.Term {
	switch fact.Kind(kind) {
	case fact.KindLiteral:
		return fact.Term{Kind: fact.KindLiteral, Value: value, Datatype: datatype, Lang: lang}
	case fact.KindBlank:
		return fact.Blank(strings.TrimPrefix(value, blankPrefix))
	default:
		return fact.IRI(value)
	}
}
