package parse

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/haatos/visual-ci/internal/graph"
	"github.com/haatos/visual-ci/internal/util"
)

// Workflow recovers a graph from workflow YAML. All failures fold to an
// empty graph, never an error: the editing surface treats an empty result
// as "no change".
func Workflow(text string) graph.Graph {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return graph.Graph{}
	}

	steps, ok := workflowSteps(doc)
	if !ok {
		return graph.Graph{}
	}

	var nodes []graph.Node
	for _, raw := range steps {
		step, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		nodes = append(nodes, classifyStep(flattenStep(step), len(nodes)))
	}

	return chain(nodes)
}

// workflowSteps descends jobs.pipeline.steps.
func workflowSteps(doc map[string]any) ([]any, bool) {
	jobs, ok := doc["jobs"].(map[string]any)
	if !ok {
		return nil, false
	}
	pipeline, ok := jobs["pipeline"].(map[string]any)
	if !ok {
		return nil, false
	}
	steps, ok := pipeline["steps"].([]any)
	if !ok {
		return nil, false
	}
	return steps, true
}

// flattenStep collapses a step's scalar keys and one level of its `with`
// mapping into a single flat record. The merge is lossy: a `with` key
// shadows a same-named top-level key.
func flattenStep(step map[string]any) map[string]string {
	flat := make(map[string]string, len(step))
	for key, value := range step {
		if s, ok := scalarString(value); ok {
			flat[key] = s
		}
	}
	if with, ok := step["with"].(map[string]any); ok {
		for key, value := range with {
			if s, ok := scalarString(value); ok {
				flat[key] = s
			}
		}
	}
	return flat
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprintf("%v", v), true
	default:
		return "", false
	}
}

// classifyStep turns one flattened step record into a stage node. The kind
// is decided by an ordered override chain: the `uses` match first, then a
// bash `shell` field, then `run` content sniffing. The last matching rule
// wins.
func classifyStep(step map[string]string, index int) graph.Node {
	kind := graph.KindPrebuildCustom
	attrs := graph.Attrs{}

	uses := step["uses"]
	switch {
	case strings.Contains(uses, "setup-node"):
		kind = graph.KindPrebuildNode
		attrs.PackageManager = "npm"
		attrs.Lang = "javascript"
	case strings.Contains(uses, "setup-python"):
		kind = graph.KindPrebuildPython
		attrs.Lang = "python"
	case strings.Contains(uses, "setup-java"):
		kind = graph.KindPrebuildJava
		attrs.Lang = "java"
		attrs.Version = step["java-version"]
		attrs.Distribution = step["distribution"]
	case strings.Contains(uses, "checkout"):
		// the real repository and branch are not recoverable from a
		// checkout step, so placeholders stand in
		kind = graph.KindCloneSource
		attrs.RepoURL = "https://github.com/user/repo.git"
		attrs.Branch = "main"
	case strings.Contains(uses, "setup-apt"),
		strings.Contains(uses, "setup-yum"),
		strings.Contains(uses, "setup-apk"):
		kind = graph.KindInstallOS
		attrs.PackageManager = "apt"
	case strings.Contains(uses, "setup-npm"),
		strings.Contains(uses, "setup-yarn"),
		strings.Contains(uses, "setup-pnpm"):
		kind = graph.KindPrebuildNode
	case strings.Contains(uses, "setup-pip"):
		kind = graph.KindPrebuildPython
	case strings.Contains(uses, "setup-maven"),
		strings.Contains(uses, "setup-gradle"):
		kind = graph.KindPrebuildJava
	case strings.Contains(uses, "setup-custom"):
		kind = graph.KindPrebuildCustom
	}

	if shell, ok := step["shell"]; ok && strings.Contains(shell, "bash") {
		kind = graph.KindRunTests
		attrs.TestType = "unit"
		attrs.Command = shell
	}

	if run, ok := step["run"]; ok {
		// the run body is the step's real command and replaces the shell
		// value even when no sniffing rule matches
		attrs.Command = run
		switch {
		case strings.Contains(run, "npm ci"), strings.Contains(run, "npm install"):
			kind = graph.KindPrebuildNode
		case strings.Contains(run, "mvn"), strings.Contains(run, "gradle"):
			kind = graph.KindBuildJava
		case strings.Contains(run, "pip install"):
			kind = graph.KindPrebuildPython
		}
	}

	label := util.FirstNonEmpty(step["name"], string(kind))
	return newChainNode(kind, label, attrs, index)
}
