package karaka

import (
	"strings"

	"github.com/kittclouds/panini/pkg/morph"
)

var roleSimplify = []struct{ key, val string }{
	{"Kartā", "agent"},
	{"Karma", "object"},
	{"Karaṇa", "instrument"},
	{"Sampradāna", "recipient"},
	{"Apādāna", "source"},
	{"Adhikaraṇa", "location"},
	{"Sambandha", "related_to"},
	{"Sambodhana", "address"},
}

// Parser turns space-separated sentences into kāraka graphs.
type Parser struct {
	analyzer *morph.Analyzer
}

// NewParser builds a parser; pass nil to use a fresh morphological
// analyzer.
func NewParser(analyzer *morph.Analyzer) *Parser {
	if analyzer == nil {
		analyzer = morph.New()
	}
	return &Parser{analyzer: analyzer}
}

// Parse analyzes each word, takes its first (most specific) reading,
// and links every participant to the sentence's action node by its
// kāraka role. A sentence without a verb yields participant nodes with
// no edges.
func (p *Parser) Parse(sentence string) *Graph {
	graph := NewGraph()

	var action *Node
	type participant struct {
		node *Node
		role string
	}
	var participants []participant

	for _, word := range strings.Fields(sentence) {
		analyses := p.analyzer.Analyze(word)
		if len(analyses) == 0 {
			continue
		}
		a := analyses[0]

		switch a.Category {
		case morph.Tinanta:
			node := graph.EnsureNode("action_"+word, a.Stem+" ("+word+")", "Action")
			node.Features = map[string]string{
				"lakara":  a.Lakara,
				"purusha": a.Purusha,
				"vacana":  a.Vacana,
			}
			action = node
		case morph.Subanta:
			full := morph.Karaka(a)
			node := graph.EnsureNode("entity_"+word, a.Stem+" ("+word+")", "Entity")
			node.Features = map[string]string{
				"role":     full,
				"vibhakti": a.Vibhakti,
				"vacana":   a.Vacana,
			}
			participants = append(participants, participant{node, simplify(full)})
		default:
			graph.EnsureNode("token_"+word, word, "Entity")
		}
	}

	if action != nil {
		for _, p := range participants {
			graph.AddEdge(action.ID, p.node.ID, p.role)
		}
	}
	return graph
}

func simplify(fullRole string) string {
	for _, r := range roleSimplify {
		if strings.Contains(fullRole, r.key) {
			return r.val
		}
	}
	return "unknown"
}
