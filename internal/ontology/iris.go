package ontology

// Standard vocabulary IRIs used when interpreting a loaded document.
const (
	RDFNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNS = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNS  = "http://www.w3.org/2002/07/owl#"
	XSDNS  = "http://www.w3.org/2001/XMLSchema#"

	RDFType   = RDFNS + "type"
	RDFSLabel = RDFSNS + "label"

	OWLOntology        = OWLNS + "Ontology"
	OWLClass           = OWLNS + "Class"
	OWLNamedIndividual = OWLNS + "NamedIndividual"
)

// Local names of the domain terms the tutor reads from the document.
// Individuals are resolved by local name so the document's base IRI is
// free to differ from the bundled one.
const (
	displayTextProp = "displayText"
	symbolProp      = "symbol"
)
