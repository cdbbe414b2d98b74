package ontology

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// ParseRDFXML parses an RDF/XML document. Supported subset: an rdf:RDF
// root holding flat rdf:Description or typed-node elements identified
// by rdf:about, with property children carrying either an rdf:resource
// reference or a text literal. Nested node elements, rdf:ID and
// rdf:nodeID are not supported.
func ParseRDFXML(data []byte) (*Graph, error) {
	var doc xmlRDF
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("rdfxml: %w", err)
	}
	if doc.XMLName.Local != "RDF" {
		return nil, fmt.Errorf("rdfxml: root element is <%s>, want <rdf:RDF>", doc.XMLName.Local)
	}

	var triples []Triple
	for _, node := range doc.Nodes {
		if node.About == "" {
			return nil, fmt.Errorf("rdfxml: node <%s> has no rdf:about", node.XMLName.Local)
		}
		subject := resolveRef(doc.Base, node.About)

		// A typed node element names its rdf:type directly.
		if !(node.XMLName.Space == RDFNS && node.XMLName.Local == "Description") {
			triples = append(triples, Triple{
				Subject:   subject,
				Predicate: RDFType,
				Object:    Term{Value: node.XMLName.Space + node.XMLName.Local},
			})
		}

		for _, prop := range node.Props {
			predicate := prop.XMLName.Space + prop.XMLName.Local
			if prop.Resource != "" {
				triples = append(triples, Triple{
					Subject:   subject,
					Predicate: predicate,
					Object:    Term{Value: resolveRef(doc.Base, prop.Resource)},
				})
				continue
			}
			text := strings.TrimSpace(prop.Value)
			if text == "" {
				continue
			}
			triples = append(triples, Triple{
				Subject:   subject,
				Predicate: predicate,
				Object:    Term{Value: text, Literal: true},
			})
		}
	}
	return newGraph(triples), nil
}

type xmlRDF struct {
	XMLName xml.Name
	Base    string    `xml:"base,attr"`
	Nodes   []xmlNode `xml:",any"`
}

type xmlNode struct {
	XMLName xml.Name
	About   string    `xml:"about,attr"`
	Props   []xmlProp `xml:",any"`
}

type xmlProp struct {
	XMLName  xml.Name
	Resource string `xml:"resource,attr"`
	Value    string `xml:",chardata"`
}

// resolveRef resolves an rdf:about / rdf:resource reference against
// xml:base. References containing a scheme pass through unchanged; a
// bare reference without a base is kept as-is, which still resolves by
// local name.
func resolveRef(base, ref string) string {
	if strings.Contains(ref, ":") || base == "" {
		return ref
	}
	return base + ref
}
