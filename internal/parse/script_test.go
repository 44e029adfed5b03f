package parse

import (
	"testing"

	"github.com/haatos/visual-ci/internal/codegen"
	"github.com/haatos/visual-ci/internal/graph"
	"github.com/stretchr/testify/assert"
)

func TestScript(t *testing.T) {
	t.Run("success - comment keywords classify stage kinds in order", func(t *testing.T) {
		cases := map[string]graph.StageKind{
			"Checkout repository":      graph.KindCloneSource,
			"Setup Java environment":   graph.KindPrebuildJava,
			"Setup Python environment": graph.KindPrebuildPython,
			"Setup Node dependencies":  graph.KindPrebuildNode,
			"Build project":            graph.KindBuildNPM,
			"Build Java project":       graph.KindPrebuildJava,
			"Run unit tests":           graph.KindRunTests,
			"Deploy to staging":        graph.KindDeploy,
			"Execute custom script":    graph.KindPrebuildCustom,
			"CI/CD Pipeline":           graph.KindPrebuildCustom,
			"Send notification":        graph.KindPrebuildCustom,
		}
		for comment, expected := range cases {
			g := Script("# " + comment + "\n")

			assert.Len(t, g.Nodes, 1, "comment %q", comment)
			assert.Equal(t, expected, g.Nodes[0].Kind, "comment %q", comment)
		}
	})

	t.Run("success - comment text becomes label and command", func(t *testing.T) {
		g := Script("#   Deploy to production  \n")

		assert.Equal(t, "Deploy to production", g.Nodes[0].Label)
		assert.Equal(t, "Deploy to production", g.Nodes[0].Attrs.Command)
	})

	t.Run("success - shebang, blank and command lines are ignored", func(t *testing.T) {
		text := "#!/bin/bash\n\nnpm ci\n# Run tests\nnpm test\n\n#\n"

		g := Script(text)

		assert.Len(t, g.Nodes, 1)
		assert.Equal(t, graph.KindRunTests, g.Nodes[0].Kind)
	})

	t.Run("success - parsed nodes are chained linearly by index", func(t *testing.T) {
		text := "# Checkout repository\n# Build project\n# Deploy to staging\n"

		g := Script(text)

		assert.Len(t, g.Nodes, 3)
		assert.Len(t, g.Edges, 2)
		assert.Equal(t, graph.Edge{Source: "step-1", Target: "step-2"}, g.Edges[0])
		assert.Equal(t, graph.Edge{Source: "step-2", Target: "step-3"}, g.Edges[1])
	})

	t.Run("success - text without comments folds to an empty graph", func(t *testing.T) {
		assert.Empty(t, Script("npm ci\nnpm test\n").Nodes)
		assert.Empty(t, Script("").Nodes)
	})

	t.Run("success - generated script round-trips through the classifier", func(t *testing.T) {
		// arrange
		g := graph.Graph{
			Nodes: []graph.Node{
				{ID: "s", Kind: graph.KindStart},
				{ID: "c", Kind: graph.KindCloneSource},
				{ID: "n", Kind: graph.KindPrebuildNode},
				{ID: "t", Kind: graph.KindRunTests},
				{ID: "d", Kind: graph.KindDeploy},
			},
			Edges: []graph.Edge{
				{Source: "s", Target: "c"},
				{Source: "c", Target: "n"},
				{Source: "n", Target: "t"},
				{Source: "t", Target: "d"},
			},
		}

		// act
		recovered := Script(codegen.GenerateShell(g))

		// assert: one node per rendered stage, kinds recovered by keyword
		assert.Len(t, recovered.Nodes, 5)
		expected := []graph.StageKind{
			graph.KindPrebuildCustom, // "CI/CD Pipeline" header
			graph.KindCloneSource,
			graph.KindPrebuildNode,
			graph.KindRunTests,
			graph.KindDeploy,
		}
		for i, kind := range expected {
			assert.Equal(t, kind, recovered.Nodes[i].Kind, "node %d", i)
		}
	})
}
