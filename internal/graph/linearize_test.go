package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func linearChain(n int) Graph {
	g := Graph{}
	for i := 0; i < n; i++ {
		kind := KindRunTests
		if i == 0 {
			kind = KindStart
		}
		g.Nodes = append(g.Nodes, Node{ID: fmt.Sprintf("n%d", i), Kind: kind})
		if i > 0 {
			g.Edges = append(g.Edges, Edge{
				Source: fmt.Sprintf("n%d", i-1),
				Target: fmt.Sprintf("n%d", i),
			})
		}
	}
	return g
}

func TestLinearize(t *testing.T) {
	t.Run("success - linear chain is returned in chain order", func(t *testing.T) {
		// arrange
		g := linearChain(5)

		// act
		ordered := Linearize(g)

		// assert
		assert.Len(t, ordered, 5)
		for i, n := range ordered {
			assert.Equal(t, fmt.Sprintf("n%d", i), n.ID)
		}
	})

	t.Run("success - graph without a start node yields empty sequence", func(t *testing.T) {
		g := Graph{
			Nodes: []Node{{ID: "a", Kind: KindCloneSource}, {ID: "b", Kind: KindDeploy}},
			Edges: []Edge{{Source: "a", Target: "b"}},
		}

		assert.Empty(t, Linearize(g))
	})

	t.Run("success - empty graph yields empty sequence", func(t *testing.T) {
		assert.Empty(t, Linearize(Graph{}))
	})

	t.Run("success - walk truncates at a branch point", func(t *testing.T) {
		// arrange: n2 fans out to two targets
		g := linearChain(5)
		g.Edges = append(g.Edges, Edge{Source: "n2", Target: "n4"})

		// act
		ordered := Linearize(g)

		// assert: n0..n2 kept, everything past the fan-out dropped
		assert.Len(t, ordered, 3)
		assert.Equal(t, "n2", ordered[2].ID)
	})

	t.Run("success - walk stops at a cycle", func(t *testing.T) {
		// arrange: n3 loops back to n1
		g := linearChain(4)
		g.Edges = []Edge{
			{Source: "n0", Target: "n1"},
			{Source: "n1", Target: "n2"},
			{Source: "n2", Target: "n3"},
			{Source: "n3", Target: "n1"},
		}

		// act
		ordered := Linearize(g)

		// assert
		assert.Len(t, ordered, 4)
	})

	t.Run("success - start node without outgoing edges yields only itself", func(t *testing.T) {
		g := Graph{Nodes: []Node{{ID: "s", Kind: KindStart}}}

		ordered := Linearize(g)

		assert.Len(t, ordered, 1)
		assert.Equal(t, KindStart, ordered[0].Kind)
	})

	t.Run("success - input graph is not mutated", func(t *testing.T) {
		g := linearChain(3)
		nodesBefore := len(g.Nodes)
		edgesBefore := len(g.Edges)

		_ = Linearize(g)

		assert.Len(t, g.Nodes, nodesBefore)
		assert.Len(t, g.Edges, edgesBefore)
	})
}
