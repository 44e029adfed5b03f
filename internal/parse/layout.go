package parse

import (
	"fmt"

	"github.com/haatos/visual-ci/internal/graph"
)

// Recovered nodes are laid out in a single vertical column so the editing
// surface can drop a parsed graph straight onto the canvas.
const (
	layoutX       = 250.0
	layoutYBase   = 80.0
	layoutYStride = 120.0
)

func newChainNode(kind graph.StageKind, label string, attrs graph.Attrs, index int) graph.Node {
	return graph.Node{
		ID:    fmt.Sprintf("step-%d", index+1),
		Kind:  kind,
		Label: label,
		X:     layoutX,
		Y:     layoutYBase + float64(index)*layoutYStride,
		Attrs: attrs,
	}
}

// chain connects consecutive nodes with one directed edge each, producing
// the strictly linear shape the linearizer expects.
func chain(nodes []graph.Node) graph.Graph {
	if len(nodes) == 0 {
		return graph.Graph{}
	}
	edges := make([]graph.Edge, 0, len(nodes)-1)
	for i := 0; i < len(nodes)-1; i++ {
		edges = append(edges, graph.Edge{Source: nodes[i].ID, Target: nodes[i+1].ID})
	}
	return graph.Graph{Nodes: nodes, Edges: edges}
}
