package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	testCases := []struct {
		name     string
		short    string
		expected string
	}{
		{"lrm", "lrm:R3_realises", "http://iflastandards.info/ns/lrm/lrmer/R3_realises"},
		{"crm", "crm:P72_has_language", "http://www.cidoc-crm.org/cidoc-crm/P72_has_language"},
		{"schema", "sdo:birthDate", "https://schema.org/birthDate"},
		{"rdfs", "rdfs:label", "http://www.w3.org/2000/01/rdf-schema#label"},
		{"already absolute", "http://example.org/x", "http://example.org/x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Full(tc.short))
		})
	}
}

func TestShort(t *testing.T) {
	assert.Equal(t, "lrm:F1_Work", Short(Work))
	assert.Equal(t, "crm:P14i_performed", Short(Performed))
}

func TestVocabularyIRIs(t *testing.T) {
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", Type)
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#label", Label)
	assert.Equal(t, "http://iflastandards.info/ns/lrm/lrmer/R3_realises", Realises)
	assert.Equal(t, "http://www.cidoc-crm.org/cidoc-crm/P72_has_language", HasLanguage)
	assert.Equal(t, "https://schema.org/birthDate", BirthDate)
	assert.Equal(t, LRMNamespace+"R76i_is_derivative_of", IsDerivativeOf)
	assert.Equal(t, LRMNamespace+"R24i_was_created_by", ManifestationCreatedBy)
	assert.Equal(t, SchemaNamespace+"nationality", Nationality)
}

func TestVocabularyIRIsAreExpanded(t *testing.T) {
	iris := []string{
		Type, Label, Work, SerialWork, Realises, IsRealisedBy, IsEmbodiedIn, HasAppellation,
		ExpressionCreatedBy, ManifestationCreatedBy, HasString, IsPartOf, IsDerivativeOf,
		HasType, AtSomeTimeWithin, HasTimeSpan, Performed, HasLanguage,
		BirthDate, DeathDate, Gender, Nationality,
	}
	for _, iri := range iris {
		assert.False(t, IsPrefixed(iri), iri)
		assert.Equal(t, iri, Full(Short(iri)), iri)
	}
}

func TestIsPrefixed(t *testing.T) {
	assert.True(t, IsPrefixed("lrm:R3_realises"))
	assert.True(t, IsPrefixed("sdo:gender"))
	assert.True(t, IsPrefixed("rdfs:label"))
	assert.False(t, IsPrefixed("http://example.org/x"))
	assert.False(t, IsPrefixed("urn:isbn:0451450523"))
}
