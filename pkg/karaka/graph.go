// Package karaka builds directed semantic graphs from Sanskrit
// sentences: each verb becomes an action node, each nominal a
// participant node, and edges carry the kāraka relation the word's
// vibhakti encodes (agent, object, instrument and so on).
package karaka

import "sort"

// Node represents an action or participant in the graph.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind"` // "Action" | "Entity"

	// Grammatical features carried over from morphology.
	Features map[string]string `json:"features,omitempty"`
}

// Edge is a directed kāraka relation.
type Edge struct {
	Relation string `json:"relation"`
}

// Graph is a directed semantic graph with forward and reverse
// adjacency.
type Graph struct {
	Nodes    map[string]*Node            `json:"nodes"`
	Outbound map[string]map[string]*Edge `json:"outbound"`
	Inbound  map[string]map[string]*Edge `json:"inbound"`

	order []string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes:    make(map[string]*Node),
		Outbound: make(map[string]map[string]*Edge),
		Inbound:  make(map[string]map[string]*Edge),
	}
}

// EnsureNode adds a node if absent and returns it.
func (g *Graph) EnsureNode(id, label, kind string) *Node {
	if existing, ok := g.Nodes[id]; ok {
		return existing
	}
	node := &Node{ID: id, Label: label, Kind: kind}
	g.Nodes[id] = node
	g.order = append(g.order, id)
	return node
}

// AddEdge creates a directed edge from source to target.
func (g *Graph) AddEdge(sourceID, targetID, relation string) {
	if g.Outbound[sourceID] == nil {
		g.Outbound[sourceID] = make(map[string]*Edge)
	}
	edge := &Edge{Relation: relation}
	g.Outbound[sourceID][targetID] = edge

	if g.Inbound[targetID] == nil {
		g.Inbound[targetID] = make(map[string]*Edge)
	}
	g.Inbound[targetID][sourceID] = edge
}

// GetNode retrieves a node by id, nil if absent.
func (g *Graph) GetNode(id string) *Node { return g.Nodes[id] }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, targets := range g.Outbound {
		count += len(targets)
	}
	return count
}

// Relation holds one resolved edge with both endpoints.
type Relation struct {
	Source   *Node
	Target   *Node
	Relation string
}

// Relations returns every edge with its endpoints, in insertion order
// of the source node and target id order within a source.
func (g *Graph) Relations() []Relation {
	var out []Relation
	for _, sourceID := range g.order {
		targets := g.Outbound[sourceID]
		if len(targets) == 0 {
			continue
		}
		ids := make([]string, 0, len(targets))
		for id := range targets {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, targetID := range ids {
			src, tgt := g.Nodes[sourceID], g.Nodes[targetID]
			if src == nil || tgt == nil {
				continue
			}
			out = append(out, Relation{Source: src, Target: tgt, Relation: targets[targetID].Relation})
		}
	}
	return out
}

// Actions returns the action nodes in insertion order.
func (g *Graph) Actions() []*Node {
	var out []*Node
	for _, id := range g.order {
		if n := g.Nodes[id]; n != nil && n.Kind == "Action" {
			out = append(out, n)
		}
	}
	return out
}

// Orphans returns nodes with no edges in either direction.
func (g *Graph) Orphans() []*Node {
	var out []*Node
	for _, id := range g.order {
		if len(g.Outbound[id]) == 0 && len(g.Inbound[id]) == 0 {
			out = append(out, g.Nodes[id])
		}
	}
	return out
}
