package codegen

import (
	"strings"

	"github.com/haatos/visual-ci/internal/graph"
)

// WorkflowPlaceholder is returned when the graph has no reachable start node.
const WorkflowPlaceholder = "# Add a Start node and connect stages to generate YAML."

// runIndent is the column the embedded script is re-indented to so it lines
// up under the step's `run: |` block scalar.
const runIndent = "          "

// GenerateWorkflow renders the graph's linearized stages into a workflow
// YAML document: checkout, one setup step per runtime used anywhere in the
// pipeline, then a single bash step holding the full shell script. The
// output follows the fixed schema the workflow parser accepts
// (jobs.pipeline.steps with name/uses/with/run/shell fields).
func GenerateWorkflow(g graph.Graph) string {
	ordered := graph.Linearize(g)
	if len(ordered) == 0 {
		return WorkflowPlaceholder
	}

	langs := usedLanguages(ordered)

	var sb strings.Builder
	sb.WriteString("name: CI/CD Pipeline\n")
	sb.WriteString("on:\n")
	sb.WriteString("  push:\n")
	sb.WriteString("    branches: [ main ]\n")
	sb.WriteString("  pull_request:\n")
	sb.WriteString("    branches: [ main ]\n")
	sb.WriteString("\n")
	sb.WriteString("jobs:\n")
	sb.WriteString("  pipeline:\n")
	sb.WriteString("    runs-on: ubuntu-latest\n")
	sb.WriteString("    steps:\n")
	sb.WriteString("      - name: Checkout\n")
	sb.WriteString("        uses: actions/checkout@v4\n")
	if langs.javascript {
		sb.WriteString("      - name: Setup Node\n")
		sb.WriteString("        uses: actions/setup-node@v4\n")
		sb.WriteString("        with:\n")
		sb.WriteString("          node-version: '18'\n")
	}
	if langs.python {
		sb.WriteString("      - name: Setup Python\n")
		sb.WriteString("        uses: actions/setup-python@v4\n")
		sb.WriteString("        with:\n")
		sb.WriteString("          python-version: '3.x'\n")
	}
	if langs.java {
		sb.WriteString("      - name: Setup Java\n")
		sb.WriteString("        uses: actions/setup-java@v4\n")
		sb.WriteString("        with:\n")
		sb.WriteString("          distribution: 'temurin'\n")
		sb.WriteString("          java-version: '17'\n")
	}
	sb.WriteString("      - name: Run pipeline script\n")
	sb.WriteString("        shell: bash\n")
	sb.WriteString("        run: |\n")
	sb.WriteString(indentScript(GenerateShell(g)))
	return sb.String()
}

type languageSet struct {
	javascript bool
	python     bool
	java       bool
}

// usedLanguages scans the ordered stages for each runtime's characteristic
// kind substring or an explicit lang attribute.
func usedLanguages(ordered []graph.Node) languageSet {
	var langs languageSet
	for _, n := range ordered {
		kind := string(n.Kind)
		switch {
		case strings.Contains(kind, "node"), strings.Contains(kind, "npm"):
			langs.javascript = true
		case strings.Contains(kind, "python"):
			langs.python = true
		case strings.Contains(kind, "java"):
			langs.java = true
		}
		switch n.Attrs.Lang {
		case "javascript", "node":
			langs.javascript = true
		case "python":
			langs.python = true
		case "java":
			langs.java = true
		}
	}
	return langs
}

// indentScript re-indents every script line to the run block's nesting
// column. Blank lines stay blank so the block scalar does not pick up
// trailing whitespace.
func indentScript(script string) string {
	lines := strings.Split(strings.TrimRight(script, "\n"), "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(runIndent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
