package ontology

import (
	"strings"
	"testing"
)

const miniTTL = `@prefix : <http://example.org/phys#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

# gravity on Earth
:Gravity a owl:NamedIndividual , :Constant ;
    rdfs:label "standard gravity"@en ;
    :value "9.8"^^xsd:double ;
    :approximate true .

:Earth :radius 6371000 ;
    :gravity :Gravity .
`

func TestParseTurtle_MiniDocument(t *testing.T) {
	g, err := ParseTurtle(miniTTL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gravity := "http://example.org/phys#Gravity"
	if !g.IsA(gravity, "http://www.w3.org/2002/07/owl#NamedIndividual") {
		t.Error("expected Gravity to be a NamedIndividual")
	}
	if !g.IsA(gravity, "http://example.org/phys#Constant") {
		t.Error("expected object list to produce the second type")
	}

	if label, ok := g.Label(gravity); !ok || label != "standard gravity" {
		t.Errorf("label = %q, %v; want 'standard gravity' with lang tag stripped", label, ok)
	}
	if v, ok := g.Literal(gravity, "http://example.org/phys#value"); !ok || v != "9.8" {
		t.Errorf("value = %q, %v; want 9.8 with datatype stripped", v, ok)
	}
	if v, ok := g.Literal(gravity, "http://example.org/phys#approximate"); !ok || v != "true" {
		t.Errorf("approximate = %q, %v; want boolean literal", v, ok)
	}

	earth := "http://example.org/phys#Earth"
	if v, ok := g.Literal(earth, "http://example.org/phys#radius"); !ok || v != "6371000" {
		t.Errorf("radius = %q, %v; want numeric literal", v, ok)
	}
	objs := g.Objects(earth, "http://example.org/phys#gravity")
	if len(objs) != 1 || objs[0].Literal || objs[0].Value != gravity {
		t.Errorf("gravity objects = %+v; want IRI reference to Gravity", objs)
	}
}

func TestParseTurtle_DecimalLiteral(t *testing.T) {
	g, err := ParseTurtle(`@prefix : <http://example.org/#> .
:m :v 3.5 .
:n :v 3 .
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := g.Literal("http://example.org/#m", "http://example.org/#v"); v != "3.5" {
		t.Errorf("decimal = %q, want 3.5", v)
	}
	if v, _ := g.Literal("http://example.org/#n", "http://example.org/#v"); v != "3" {
		t.Errorf("integer = %q, want 3", v)
	}
}

func TestParseTurtle_BaseResolution(t *testing.T) {
	g, err := ParseTurtle(`@base <http://example.org/onto#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
<Thing> rdfs:label "a thing" .
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label, ok := g.Label("http://example.org/onto#Thing"); !ok || label != "a thing" {
		t.Errorf("label = %q, %v; want relative IRI resolved against base", label, ok)
	}
}

func TestParseTurtle_EscapeSequences(t *testing.T) {
	g, err := ParseTurtle(`@prefix : <http://example.org/#> .
:x :text "line\none \"quoted\" ×" .
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "line\none \"quoted\" ×"
	if v, _ := g.Literal("http://example.org/#x", "http://example.org/#text"); v != want {
		t.Errorf("escaped literal = %q, want %q", v, want)
	}
}

func TestParseTurtle_DanglingSemicolon(t *testing.T) {
	g, err := ParseTurtle(`@prefix : <http://example.org/#> .
:x :a "1" ;
   :b "2" ;
.
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("expected 2 triples, got %d", g.Len())
	}
}

func TestParseTurtle_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"undeclared prefix", `:x :y :z .`, "undeclared prefix"},
		{"missing dot", "@prefix : <http://e/#> .\n:x :y :z", "expected '.'"},
		{"unterminated string", "@prefix : <http://e/#> .\n:x :y \"oops .", "unterminated string"},
		{"unterminated iri", `<http://e/#x`, "unterminated IRI"},
		{"unknown directive", `@import <http://e/#> .`, "unknown directive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTurtle(tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseTurtle_ErrorsCarryLineNumbers(t *testing.T) {
	_, err := ParseTurtle("@prefix : <http://e/#> .\n\n:x :y z:oops .\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not carry line 3", err)
	}
}
