package factstore

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"
	"github.com/google/uuid"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/fact"
)

// DefaultFormat is used when a source's extension matches no registered format.
const DefaultFormat = "nquads"

// detectFormat picks a parser from the quad format registry by file extension.
func detectFormat(path string) (*quad.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format := quad.FormatByExt(ext)
	if format == nil {
		format = quad.FormatByName(DefaultFormat)
	}
	if format == nil || format.Reader == nil {
		return nil, errors.NewInvalidRequestError("no reader for %q files", ext)
	}
	return format, nil
}

// newReader opens a quad reader. N-Triples/N-Quads are read raw so typed
// literals keep their lexical form (an xsd:date stays "1921-03-01").
func newReader(r io.Reader, format *quad.Format) quad.ReadCloser {
	if format.Name == DefaultFormat {
		return nquads.NewReader(r, true)
	}
	return format.Reader(r)
}

// readTriples parses every statement from r. Graph labels are dropped:
// all sources merge into one default graph.
func readTriples(r io.Reader, format *quad.Format) ([]fact.Triple, error) {
	reader := newReader(r, format)
	defer reader.Close()

	var triples []fact.Triple
	for {
		q, err := reader.ReadQuad()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "parse statement %d", len(triples)+1)
		}

		t, err := convertQuad(q)
		if err != nil {
			return nil, errors.Wrapf(err, "statement %d", len(triples)+1)
		}
		triples = append(triples, t)
	}
	return triples, nil
}

func convertQuad(q quad.Quad) (fact.Triple, error) {
	subject, err := convertValue(q.Subject)
	if err != nil {
		return fact.Triple{}, errors.Wrap(err, "subject")
	}
	predicate, err := convertValue(q.Predicate)
	if err != nil {
		return fact.Triple{}, errors.Wrap(err, "predicate")
	}
	object, err := convertValue(q.Object)
	if err != nil {
		return fact.Triple{}, errors.Wrap(err, "object")
	}

	t := fact.Triple{Subject: subject, Predicate: predicate, Object: object}
	if err := t.Validate(); err != nil {
		return fact.Triple{}, err
	}
	return t, nil
}

func convertValue(v quad.Value) (fact.Term, error) {
	switch v := v.(type) {
	case quad.IRI:
		return fact.IRI(string(v.Full())), nil
	case quad.BNode:
		return fact.Blank(string(v)), nil
	case quad.String:
		return fact.String(string(v)), nil
	case quad.TypedString:
		return fact.Literal(string(v.Value), string(v.Type.Full())), nil
	case quad.LangString:
		return fact.LangLiteral(string(v.Value), v.Lang), nil
	case quad.Int:
		return fact.Integer(int64(v)), nil
	case quad.Float:
		return fact.Literal(strconv.FormatFloat(float64(v), 'g', -1, 64), fact.XSDDouble), nil
	case quad.Bool:
		return fact.Literal(strconv.FormatBool(bool(v)), fact.XSDBoolean), nil
	case quad.Time:
		return fact.Literal(time.Time(v).Format(time.RFC3339Nano), fact.XSDDateTime), nil
	case nil:
		return fact.Term{}, errors.New("missing term")
	default:
		return fact.Term{}, errors.Newf("unsupported term %s", v.String())
	}
}

// newBlankScope returns a fresh prefix for the blank nodes of one parse.
func newBlankScope() string {
	return "g" + strings.ReplaceAll(uuid.NewString(), "-", "") + "_"
}

// scopeBlankNodes renames every blank node in triples under scope, so labels
// that repeat across sources ("_:n1" in two files) stay distinct nodes.
func scopeBlankNodes(triples []fact.Triple, scope string) {
	rename := func(t fact.Term) fact.Term {
		if t.Kind == fact.KindBlank {
			return fact.Blank(scope + t.Value)
		}
		return t
	}
	for i := range triples {
		triples[i].Subject = rename(triples[i].Subject)
		triples[i].Object = rename(triples[i].Object)
	}
}
