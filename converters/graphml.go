// SPDX-License-Identifier: MIT
// Package: lvlath/converters
//
// graphml.go — Read/Write for the GraphML subset spec.md §6.3 relies on:
// node/edge <data> keyed by a <key>'s attr.name, edgedefault directed vs
// undirected, and nothing else (no hyperedges, no nested graphs, no ports).

package converters

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlath/core"
)

const graphMLNamespace = "http://graphml.graphdrawing.org/xmlns"

type xmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlGraph struct {
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlDoc struct {
	XMLName xml.Name `xml:"graphml"`
	Xmlns   string   `xml:"xmlns,attr"`
	Keys    []xmlKey `xml:"key"`
	Graph   xmlGraph `xml:"graph"`
}

// Read parses a GraphML document into a *core.Graph. Node and edge <data>
// elements are resolved against their <key> declaration and stored as a
// node/edge attribute under that key's attr.name, typed per attr.type
// ("string" if attr.type is absent).
func Read(r io.Reader) (*core.Graph, error) {
	var doc xmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("converters: Read: decode: %w", err)
	}
	if doc.Graph.EdgeDefault == "" && doc.Graph.Nodes == nil && doc.Graph.Edges == nil {
		return nil, ErrNoGraphElement
	}

	type keyMeta struct {
		attrName string
		attrType string
	}
	keys := make(map[string]keyMeta, len(doc.Keys))
	for _, k := range doc.Keys {
		keys[k.ID] = keyMeta{attrName: k.AttrName, attrType: k.AttrType}
	}

	directed := doc.Graph.EdgeDefault == "directed"
	g := core.NewGraph(core.WithDirected(directed))

	for _, n := range doc.Graph.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("converters: Read: node %q: %w", n.ID, err)
		}
		for _, d := range n.Data {
			km, ok := keys[d.Key]
			if !ok {
				return nil, fmt.Errorf("converters: Read: node %q: key %q: %w", n.ID, d.Key, ErrUnresolvedKey)
			}
			val, err := parseGraphMLValue(d.Value, km.attrType)
			if err != nil {
				return nil, fmt.Errorf("converters: Read: node %q: %w", n.ID, err)
			}
			if err := g.SetNodeAttr(n.ID, km.attrName, val); err != nil {
				return nil, fmt.Errorf("converters: Read: node %q: %w", n.ID, err)
			}
		}
	}

	for _, e := range doc.Graph.Edges {
		eid, err := g.AddEdge(e.Source, e.Target, 0)
		if err != nil {
			return nil, fmt.Errorf("converters: Read: edge %s->%s: %w", e.Source, e.Target, err)
		}
		for _, d := range e.Data {
			km, ok := keys[d.Key]
			if !ok {
				return nil, fmt.Errorf("converters: Read: edge %s->%s: key %q: %w", e.Source, e.Target, d.Key, ErrUnresolvedKey)
			}
			val, err := parseGraphMLValue(d.Value, km.attrType)
			if err != nil {
				return nil, fmt.Errorf("converters: Read: edge %s->%s: %w", e.Source, e.Target, err)
			}
			if err := g.SetEdgeAttr(eid, km.attrName, val); err != nil {
				return nil, fmt.Errorf("converters: Read: edge %s->%s: %w", e.Source, e.Target, err)
			}
		}
	}

	return g, nil
}

func parseGraphMLValue(raw, attrType string) (interface{}, error) {
	switch attrType {
	case "", "string":
		return raw, nil
	case "int", "long", "integer":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("converters: bad int value %q: %w", raw, err)
		}
		return n, nil
	case "float", "double":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("converters: bad float value %q: %w", raw, err)
		}
		return f, nil
	case "boolean", "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("converters: bad boolean value %q: %w", raw, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("converters: attr.type %q: %w", attrType, ErrUnknownAttrType)
	}
}

// Write serializes g as a GraphML document, emitting one <key> per distinct
// (scope, attribute name) pair discovered across its node/edge Metadata, and
// one <node>/<edge> per vertex/edge with a <data> per present attribute.
// Key and attribute iteration order is sorted for deterministic output.
func Write(w io.Writer, g *core.Graph) error {
	nodeKeyIDs, edgeKeyIDs, keyDecls := collectGraphMLKeys(g)

	doc := xmlDoc{
		Xmlns: graphMLNamespace,
		Keys:  keyDecls,
		Graph: xmlGraph{
			EdgeDefault: "undirected",
		},
	}
	if g.Directed() {
		doc.Graph.EdgeDefault = "directed"
	}

	for _, id := range g.Vertices() {
		node := xmlNode{ID: id}
		attrs, _ := vertexMetadata(g, id)
		for _, name := range sortedKeys(attrs) {
			node.Data = append(node.Data, xmlData{Key: nodeKeyIDs[name], Value: fmt.Sprintf("%v", attrs[name])})
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, node)
	}

	for _, e := range g.Edges() {
		edge := xmlEdge{Source: e.From, Target: e.To}
		for _, name := range sortedKeys(e.Metadata) {
			edge.Data = append(edge.Data, xmlData{Key: edgeKeyIDs[name], Value: fmt.Sprintf("%v", e.Metadata[name])})
		}
		doc.Graph.Edges = append(doc.Graph.Edges, edge)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("converters: Write: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("converters: Write: encode: %w", err)
	}
	return nil
}

func vertexMetadata(g *core.Graph, id string) (map[string]interface{}, bool) {
	v, ok := g.VerticesMap()[id]
	if !ok || v.Metadata == nil {
		return nil, false
	}
	return v.Metadata, true
}

func sortedKeys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// collectGraphMLKeys scans every node/edge attribute name in g and assigns
// each a stable "k<N>" id, in sorted (scope, name) order so output is
// deterministic across runs.
func collectGraphMLKeys(g *core.Graph) (nodeKeyIDs, edgeKeyIDs map[string]string, decls []xmlKey) {
	nodeNames := make(map[string]string)
	for _, id := range g.Vertices() {
		attrs, ok := vertexMetadata(g, id)
		if !ok {
			continue
		}
		for name, val := range attrs {
			if _, seen := nodeNames[name]; !seen {
				nodeNames[name] = graphMLAttrType(val)
			}
		}
	}

	edgeNames := make(map[string]string)
	for _, e := range g.Edges() {
		for name, val := range e.Metadata {
			if _, seen := edgeNames[name]; !seen {
				edgeNames[name] = graphMLAttrType(val)
			}
		}
	}

	nodeKeyIDs = make(map[string]string, len(nodeNames))
	edgeKeyIDs = make(map[string]string, len(edgeNames))

	n := 0
	for _, name := range sortedStringKeys(nodeNames) {
		id := fmt.Sprintf("k%d", n)
		n++
		nodeKeyIDs[name] = id
		decls = append(decls, xmlKey{ID: id, For: "node", AttrName: name, AttrType: nodeNames[name]})
	}
	for _, name := range sortedStringKeys(edgeNames) {
		id := fmt.Sprintf("k%d", n)
		n++
		edgeKeyIDs[name] = id
		decls = append(decls, xmlKey{ID: id, For: "edge", AttrName: name, AttrType: edgeNames[name]})
	}

	return nodeKeyIDs, edgeKeyIDs, decls
}

func sortedStringKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func graphMLAttrType(v interface{}) string {
	switch v.(type) {
	case int, int64:
		return "long"
	case float32, float64:
		return "double"
	case bool:
		return "boolean"
	default:
		return "string"
	}
}
