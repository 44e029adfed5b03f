package codegen

import (
	"strings"

	"github.com/haatos/visual-ci/internal/graph"
)

// ShellPlaceholder is returned when the graph has no reachable start node.
// The editing surface shows it verbatim instead of an empty script.
const ShellPlaceholder = "# Add a Start node and connect stages to generate script."

// GenerateShell renders the graph's linearized stages into a single shell
// script. Snippets are concatenated without separators; each already ends
// in a newline.
func GenerateShell(g graph.Graph) string {
	ordered := graph.Linearize(g)
	if len(ordered) == 0 {
		return ShellPlaceholder
	}

	var sb strings.Builder
	for _, n := range ordered {
		sb.WriteString(RenderStage(n))
	}
	return sb.String()
}
