package ontology

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed Newton_law.ttl
var embeddedTTL string

// DefaultCandidates are the document filenames probed, in order, when
// no explicit ontology path is configured.
var DefaultCandidates = []string{
	"Newton_2ndLaw.owl",
	"Newton_2ndLaw.rdf",
	"Newton_law.ttl",
}

// LoadFile parses one ontology document. The format is chosen by
// extension (.ttl is Turtle, .owl and .rdf are RDF/XML); unknown
// extensions are sniffed by content.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ontology: %w", err)
	}

	var g *Graph
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl":
		g, err = ParseTurtle(string(data))
	case ".owl", ".rdf", ".xml":
		g, err = ParseRDFXML(data)
	default:
		if looksLikeXML(data) {
			g, err = ParseRDFXML(data)
		} else {
			g, err = ParseTurtle(string(data))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return g, nil
}

// Discover probes dir for the default candidate filenames and loads the
// first one present. It returns the loaded path alongside the graph.
func Discover(dir string) (*Graph, string, error) {
	for _, name := range DefaultCandidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		g, err := LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return g, path, nil
	}
	return nil, "", fmt.Errorf("no ontology document found in %s (tried %s)",
		dir, strings.Join(DefaultCandidates, ", "))
}

var (
	embeddedOnce  sync.Once
	embeddedGraph *Graph
)

// Embedded returns the graph parsed from the bundled document, so the
// tutor always has ontology-sourced hints even without files on disk.
func Embedded() *Graph {
	embeddedOnce.Do(func() {
		g, err := ParseTurtle(embeddedTTL)
		if err != nil {
			panic(fmt.Sprintf("ontology: bundled document does not parse: %v", err))
		}
		embeddedGraph = g
	})
	return embeddedGraph
}

func looksLikeXML(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '<'
}
