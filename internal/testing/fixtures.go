package testing

// Fixture graphs in N-Triples.
//
// RoundTripGraph holds one translation: "Der Panther" (German, by Rilke)
// translated into English as "The Panther" by Robert Lowell, published in
// "Issue 3" of "The Dial" with time span label "1921-03", genre "Poetry".
//
// BrokenChainGraph adds, on top of RoundTripGraph:
//   - "Correspondences" (French, by Baudelaire) translated into English by
//     Lowell and published in "Issue 4", whose time span has no label
//   - a German-to-German derivative expression of type "Drama", which is not
//     a translation
const (
	RoundTripGraph = `<http://spacesoftranslation.org/ns/languages/de> <http://www.w3.org/2000/01/rdf-schema#label> "German" .
<http://spacesoftranslation.org/ns/languages/en> <http://www.w3.org/2000/01/rdf-schema#label> "English" .
<http://spacesoftranslation.org/ns/expressions/e1> <http://www.cidoc-crm.org/cidoc-crm/P72_has_language> <http://spacesoftranslation.org/ns/languages/de> .
<http://spacesoftranslation.org/ns/expressions/e1> <http://iflastandards.info/ns/lrm/lrmer/R3_realises> <http://spacesoftranslation.org/ns/works/w1> .
<http://spacesoftranslation.org/ns/expressions/e1> <http://iflastandards.info/ns/lrm/lrmer/R17i_was_created_by> <http://spacesoftranslation.org/ns/creations/c1> .
<http://spacesoftranslation.org/ns/expressions/e2> <http://iflastandards.info/ns/lrm/lrmer/R76i_is_derivative_of> <http://spacesoftranslation.org/ns/expressions/e1> .
<http://spacesoftranslation.org/ns/expressions/e2> <http://www.cidoc-crm.org/cidoc-crm/P72_has_language> <http://spacesoftranslation.org/ns/languages/en> .
<http://spacesoftranslation.org/ns/expressions/e2> <http://iflastandards.info/ns/lrm/lrmer/R3_realises> <http://spacesoftranslation.org/ns/works/w2> .
<http://spacesoftranslation.org/ns/expressions/e2> <http://iflastandards.info/ns/lrm/lrmer/R17i_was_created_by> <http://spacesoftranslation.org/ns/creations/c2> .
<http://spacesoftranslation.org/ns/works/w1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://iflastandards.info/ns/lrm/lrmer/F1_Work> .
<http://spacesoftranslation.org/ns/works/w1> <http://www.w3.org/2000/01/rdf-schema#label> "Der Panther" .
<http://spacesoftranslation.org/ns/works/w1> <http://iflastandards.info/ns/lrm/lrmer/P2_has_type> "Poetry" .
<http://spacesoftranslation.org/ns/works/w2> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://iflastandards.info/ns/lrm/lrmer/F1_Work> .
<http://spacesoftranslation.org/ns/works/w2> <http://www.w3.org/2000/01/rdf-schema#label> "The Panther" .
<http://spacesoftranslation.org/ns/works/w2> <http://iflastandards.info/ns/lrm/lrmer/P2_has_type> "Poetry" .
<http://spacesoftranslation.org/ns/works/w2> <http://iflastandards.info/ns/lrm/lrmer/R67i_is_part_of> <http://spacesoftranslation.org/ns/issues/i1> .
<http://spacesoftranslation.org/ns/people/rilke> <http://www.cidoc-crm.org/cidoc-crm/P14i_performed> <http://spacesoftranslation.org/ns/creations/c1> .
<http://spacesoftranslation.org/ns/people/rilke> <http://www.w3.org/2000/01/rdf-schema#label> "Rilke" .
<http://spacesoftranslation.org/ns/people/rilke> <http://iflastandards.info/ns/lrm/lrmer/R13_has_appellation> <http://spacesoftranslation.org/ns/nomena/n1> .
<http://spacesoftranslation.org/ns/nomena/n1> <http://iflastandards.info/ns/lrm/lrmer/R33_has_string> "Rainer Maria Rilke" .
<http://spacesoftranslation.org/ns/people/lowell> <http://www.cidoc-crm.org/cidoc-crm/P14i_performed> <http://spacesoftranslation.org/ns/creations/c2> .
<http://spacesoftranslation.org/ns/people/lowell> <http://www.w3.org/2000/01/rdf-schema#label> "Robert Lowell" .
<http://spacesoftranslation.org/ns/people/lowell> <http://iflastandards.info/ns/lrm/lrmer/R13_has_appellation> <http://spacesoftranslation.org/ns/nomena/n2> .
<http://spacesoftranslation.org/ns/nomena/n2> <http://iflastandards.info/ns/lrm/lrmer/R33_has_string> "Robert Lowell" .
<http://spacesoftranslation.org/ns/people/lowell> <https://schema.org/birthDate> "1917-03-01"^^<http://www.w3.org/2001/XMLSchema#date> .
<http://spacesoftranslation.org/ns/people/lowell> <https://schema.org/nationality> "American" .
<http://spacesoftranslation.org/ns/issues/i1> <http://www.w3.org/2000/01/rdf-schema#label> "Issue 3" .
<http://spacesoftranslation.org/ns/issues/i1> <http://iflastandards.info/ns/lrm/lrmer/R67i_is_part_of> <http://spacesoftranslation.org/ns/journals/m1> .
<http://spacesoftranslation.org/ns/issues/i1> <http://iflastandards.info/ns/lrm/lrmer/R3i_is_realised_by> <http://spacesoftranslation.org/ns/expressions/ie1> .
<http://spacesoftranslation.org/ns/expressions/ie1> <http://iflastandards.info/ns/lrm/lrmer/R4i_is_embodied_in> <http://spacesoftranslation.org/ns/manifestations/mf1> .
<http://spacesoftranslation.org/ns/manifestations/mf1> <http://iflastandards.info/ns/lrm/lrmer/R24i_was_created_by> <http://spacesoftranslation.org/ns/creations/mc1> .
<http://spacesoftranslation.org/ns/creations/mc1> <http://www.cidoc-crm.org/cidoc-crm/P4_has_time_span> <http://spacesoftranslation.org/ns/timespans/ts1> .
<http://spacesoftranslation.org/ns/timespans/ts1> <http://www.w3.org/2000/01/rdf-schema#label> "1921-03" .
<http://spacesoftranslation.org/ns/timespans/ts1> <http://iflastandards.info/ns/lrm/lrmer/P82_at_some_time_within> "1921-03-01"^^<http://www.w3.org/2001/XMLSchema#date> .
<http://spacesoftranslation.org/ns/journals/m1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://iflastandards.info/ns/lrm/lrmer/F18_Serial_Work> .
<http://spacesoftranslation.org/ns/journals/m1> <http://www.w3.org/2000/01/rdf-schema#label> "The Dial" .
`

	BrokenChainGraph = RoundTripGraph + `<http://spacesoftranslation.org/ns/languages/fr> <http://www.w3.org/2000/01/rdf-schema#label> "French" .
<http://spacesoftranslation.org/ns/expressions/e3> <http://www.cidoc-crm.org/cidoc-crm/P72_has_language> <http://spacesoftranslation.org/ns/languages/fr> .
<http://spacesoftranslation.org/ns/expressions/e3> <http://iflastandards.info/ns/lrm/lrmer/R17i_was_created_by> <http://spacesoftranslation.org/ns/creations/c3> .
<http://spacesoftranslation.org/ns/expressions/e4> <http://iflastandards.info/ns/lrm/lrmer/R76i_is_derivative_of> <http://spacesoftranslation.org/ns/expressions/e3> .
<http://spacesoftranslation.org/ns/expressions/e4> <http://www.cidoc-crm.org/cidoc-crm/P72_has_language> <http://spacesoftranslation.org/ns/languages/en> .
<http://spacesoftranslation.org/ns/expressions/e4> <http://iflastandards.info/ns/lrm/lrmer/R3_realises> <http://spacesoftranslation.org/ns/works/w4> .
<http://spacesoftranslation.org/ns/expressions/e4> <http://iflastandards.info/ns/lrm/lrmer/R17i_was_created_by> <http://spacesoftranslation.org/ns/creations/c4> .
<http://spacesoftranslation.org/ns/works/w4> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://iflastandards.info/ns/lrm/lrmer/F1_Work> .
<http://spacesoftranslation.org/ns/works/w4> <http://www.w3.org/2000/01/rdf-schema#label> "Correspondences" .
<http://spacesoftranslation.org/ns/works/w4> <http://iflastandards.info/ns/lrm/lrmer/P2_has_type> "Poetry" .
<http://spacesoftranslation.org/ns/works/w4> <http://iflastandards.info/ns/lrm/lrmer/R67i_is_part_of> <http://spacesoftranslation.org/ns/issues/i2> .
<http://spacesoftranslation.org/ns/people/baudelaire> <http://www.cidoc-crm.org/cidoc-crm/P14i_performed> <http://spacesoftranslation.org/ns/creations/c3> .
<http://spacesoftranslation.org/ns/people/baudelaire> <http://www.w3.org/2000/01/rdf-schema#label> "Baudelaire" .
<http://spacesoftranslation.org/ns/people/baudelaire> <http://iflastandards.info/ns/lrm/lrmer/R13_has_appellation> <http://spacesoftranslation.org/ns/nomena/n3> .
<http://spacesoftranslation.org/ns/nomena/n3> <http://iflastandards.info/ns/lrm/lrmer/R33_has_string> "Charles Baudelaire" .
<http://spacesoftranslation.org/ns/people/lowell> <http://www.cidoc-crm.org/cidoc-crm/P14i_performed> <http://spacesoftranslation.org/ns/creations/c4> .
<http://spacesoftranslation.org/ns/issues/i2> <http://www.w3.org/2000/01/rdf-schema#label> "Issue 4" .
<http://spacesoftranslation.org/ns/issues/i2> <http://iflastandards.info/ns/lrm/lrmer/R67i_is_part_of> <http://spacesoftranslation.org/ns/journals/m1> .
<http://spacesoftranslation.org/ns/issues/i2> <http://iflastandards.info/ns/lrm/lrmer/R3i_is_realised_by> <http://spacesoftranslation.org/ns/expressions/ie2> .
<http://spacesoftranslation.org/ns/expressions/ie2> <http://iflastandards.info/ns/lrm/lrmer/R4i_is_embodied_in> <http://spacesoftranslation.org/ns/manifestations/mf2> .
<http://spacesoftranslation.org/ns/manifestations/mf2> <http://iflastandards.info/ns/lrm/lrmer/R24i_was_created_by> <http://spacesoftranslation.org/ns/creations/mc2> .
<http://spacesoftranslation.org/ns/creations/mc2> <http://www.cidoc-crm.org/cidoc-crm/P4_has_time_span> <http://spacesoftranslation.org/ns/timespans/ts2> .
<http://spacesoftranslation.org/ns/timespans/ts2> <http://iflastandards.info/ns/lrm/lrmer/P82_at_some_time_within> "1922"^^<http://www.w3.org/2001/XMLSchema#gYear> .
<http://spacesoftranslation.org/ns/expressions/e5> <http://iflastandards.info/ns/lrm/lrmer/R76i_is_derivative_of> <http://spacesoftranslation.org/ns/expressions/e1> .
<http://spacesoftranslation.org/ns/expressions/e5> <http://www.cidoc-crm.org/cidoc-crm/P72_has_language> <http://spacesoftranslation.org/ns/languages/de> .
<http://spacesoftranslation.org/ns/expressions/e5> <http://iflastandards.info/ns/lrm/lrmer/R3_realises> <http://spacesoftranslation.org/ns/works/w5> .
<http://spacesoftranslation.org/ns/works/w5> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://iflastandards.info/ns/lrm/lrmer/F1_Work> .
<http://spacesoftranslation.org/ns/works/w5> <http://www.w3.org/2000/01/rdf-schema#label> "Der Panther (Neufassung)" .
<http://spacesoftranslation.org/ns/works/w5> <http://iflastandards.info/ns/lrm/lrmer/P2_has_type> "Drama" .
`
)

// Identifiers used by the fixture graphs.
const (
	Namespace = "http://spacesoftranslation.org/ns/"

	WorkPanther         = Namespace + "works/w2"
	WorkCorrespondences = Namespace + "works/w4"
	ExprPantherOriginal = Namespace + "expressions/e1"
	ExprPanther         = Namespace + "expressions/e2"
	ExprCorrespondences = Namespace + "expressions/e4"
	LangGerman          = Namespace + "languages/de"
	LangEnglish         = Namespace + "languages/en"
	LangFrench          = Namespace + "languages/fr"
	PersonRilke         = Namespace + "people/rilke"
	PersonLowell        = Namespace + "people/lowell"
	PersonBaudelaire    = Namespace + "people/baudelaire"
	MagazineDial        = Namespace + "journals/m1"
)
