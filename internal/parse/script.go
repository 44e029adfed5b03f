package parse

import (
	"bufio"
	"strings"

	"github.com/haatos/visual-ci/internal/graph"
)

// Script recovers a graph from a rendered shell script by classifying its
// comment lines with ordered keyword matching. Shebang lines are
// interpreter directives, not stage comments, and are skipped. Text that
// contains no comment lines yields an empty graph; the function never
// fails.
func Script(text string) graph.Graph {
	var nodes []graph.Node

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") || strings.HasPrefix(line, "#!") {
			continue
		}
		comment := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if comment == "" {
			continue
		}
		nodes = append(nodes, newChainNode(
			classifyComment(comment),
			comment,
			graph.Attrs{Command: comment},
			len(nodes),
		))
	}

	return chain(nodes)
}

// classifyComment maps a comment's text to a stage kind by ordered
// substring match; the first matching rule wins and anything unrecognized
// falls back to a custom pre-build stage.
func classifyComment(comment string) graph.StageKind {
	switch {
	case strings.Contains(comment, "checkout"), strings.Contains(comment, "Checkout"):
		return graph.KindCloneSource
	case strings.Contains(comment, "Setup Java"), strings.Contains(comment, "Java"):
		return graph.KindPrebuildJava
	case strings.Contains(comment, "Setup Python"):
		return graph.KindPrebuildPython
	case strings.Contains(comment, "Setup Node"):
		return graph.KindPrebuildNode
	case strings.Contains(comment, "Build"), strings.Contains(comment, "build"):
		return graph.KindBuildNPM
	case strings.Contains(comment, "Test"), strings.Contains(comment, "test"):
		return graph.KindRunTests
	case strings.Contains(comment, "Deploy"), strings.Contains(comment, "deploy"):
		return graph.KindDeploy
	case strings.Contains(comment, "Execute"), strings.Contains(comment, "Pipeline"):
		return graph.KindPrebuildCustom
	default:
		return graph.KindPrebuildCustom
	}
}
