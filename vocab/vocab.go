// Package vocab names the namespaces and IRIs of the translation graph.
//
// IRIs are absolute constants. The namespaces are also registered with the
// cayley voc registry so prefixed forms ("lrm:R3_realises") expand and log output
// can be compacted.
package vocab

import (
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

// Namespaces used by the spaces-of-translation data.
const (
	LRMNamespace    = "http://iflastandards.info/ns/lrm/lrmer/"
	CRMNamespace    = "http://www.cidoc-crm.org/cidoc-crm/"
	SchemaNamespace = "https://schema.org/"
	SOTNamespace    = "http://spacesoftranslation.org/ns/"

	LRMPrefix    = "lrm:"
	CRMPrefix    = "crm:"
	SchemaPrefix = "sdo:"
	SOTPrefix    = "sot:"
)

func init() {
	voc.Register(voc.Namespace{Full: LRMNamespace, Prefix: LRMPrefix})
	voc.Register(voc.Namespace{Full: CRMNamespace, Prefix: CRMPrefix})
	voc.Register(voc.Namespace{Full: SchemaNamespace, Prefix: SchemaPrefix})
	voc.Register(voc.Namespace{Full: SOTNamespace, Prefix: SOTPrefix})
}

// Full expands a prefixed IRI ("lrm:F1_Work") to its absolute form.
// Absolute IRIs are returned unchanged.
func Full(short string) string {
	return string(quad.IRI(short).Full())
}

// IsPrefixed reports whether iri starts with a registered namespace prefix
// ("lrm:R3_realises"), meaning it was never expanded.
func IsPrefixed(iri string) bool {
	for _, ns := range voc.List() {
		if strings.HasPrefix(iri, ns.Prefix) {
			return true
		}
	}
	return false
}

// Short compacts an absolute IRI to its prefixed form when a namespace is registered.
func Short(full string) string {
	return string(quad.IRI(full).Short())
}

// RDF and RDFS
const (
	Type  = rdf.NS + "type"
	Label = rdfs.NS + "label"
)

// LRM classes and relations
const (
	Work       = LRMNamespace + "F1_Work"
	SerialWork = LRMNamespace + "F18_Serial_Work"

	Realises               = LRMNamespace + "R3_realises"
	IsRealisedBy           = LRMNamespace + "R3i_is_realised_by"
	IsEmbodiedIn           = LRMNamespace + "R4i_is_embodied_in"
	HasAppellation         = LRMNamespace + "R13_has_appellation"
	ExpressionCreatedBy    = LRMNamespace + "R17i_was_created_by"
	ManifestationCreatedBy = LRMNamespace + "R24i_was_created_by"
	HasString              = LRMNamespace + "R33_has_string"
	IsPartOf               = LRMNamespace + "R67i_is_part_of"
	IsDerivativeOf         = LRMNamespace + "R76i_is_derivative_of"
	HasType                = LRMNamespace + "P2_has_type"
	AtSomeTimeWithin       = LRMNamespace + "P82_at_some_time_within"
)

// CIDOC-CRM relations
const (
	HasTimeSpan = CRMNamespace + "P4_has_time_span"
	Performed   = CRMNamespace + "P14i_performed"
	HasLanguage = CRMNamespace + "P72_has_language"
)

// schema.org biography properties
const (
	BirthDate   = SchemaNamespace + "birthDate"
	DeathDate   = SchemaNamespace + "deathDate"
	Gender      = SchemaNamespace + "gender"
	Nationality = SchemaNamespace + "nationality"
)
