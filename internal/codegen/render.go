package codegen

import (
	"fmt"
	"strings"

	"github.com/haatos/visual-ci/internal/graph"
	"github.com/haatos/visual-ci/internal/util"
)

// RenderStage maps one stage node to its shell snippet. The function is
// total: every stage kind has a fixed template and unrecognized kinds fall
// through to a generic snippet driven by the lang and command attributes.
// Every snippet ends with a trailing newline so the script generator can
// concatenate snippets without separator logic.
func RenderStage(n graph.Node) string {
	switch n.Kind {
	case graph.KindStart:
		return "#!/bin/bash\n# CI/CD Pipeline\necho \"🚀 Starting pipeline...\"\n"
	case graph.KindCloneSource:
		return renderClone(n)
	case graph.KindInstallOS:
		return renderInstallOS(n)
	case graph.KindPrebuildNode:
		return renderPrebuildNode(n)
	case graph.KindPrebuildPython:
		return "# Setup Python environment\npip install -r requirements.txt\n"
	case graph.KindPrebuildJava:
		return "# Setup Java environment\nmvn -B dependency:go-offline\n"
	case graph.KindPrebuildCustom:
		return renderPrebuildCustom(n)
	case graph.KindBuildNPM:
		return "# Build project\nnpm run build\n"
	case graph.KindBuildPython:
		return "# Build package\npython -m build\n"
	case graph.KindBuildJava:
		return "# Build Java project\nmvn -B package\n"
	case graph.KindContainerBuild:
		return renderContainerBuild(n)
	case graph.KindRunTests:
		return renderRunTests(n)
	case graph.KindDeploy:
		return renderDeploy(n)
	case graph.KindNotify:
		return renderNotify(n)
	default:
		return renderFallback(n)
	}
}

func renderClone(n graph.Node) string {
	repo := util.FirstNonEmpty(util.Dequote(n.Attrs.RepoURL), "https://github.com/user/repo.git")
	branch := util.FirstNonEmpty(util.Dequote(n.Attrs.Branch), "main")
	return fmt.Sprintf("# Checkout repository\ngit clone -b %s %s\n", branch, repo)
}

func renderInstallOS(n graph.Node) string {
	packages := util.FirstNonEmpty(util.Dequote(n.Attrs.Packages), "curl git")
	switch n.Attrs.PackageManager {
	case "yum":
		return fmt.Sprintf("# Install OS packages\nsudo yum install -y %s\n", packages)
	case "apk":
		return fmt.Sprintf("# Install OS packages\napk add --no-cache %s\n", packages)
	default:
		// apt is the default package manager
		return fmt.Sprintf(
			"# Install OS packages\nsudo apt-get update && sudo apt-get install -y %s\n",
			packages,
		)
	}
}

func renderPrebuildNode(n graph.Node) string {
	switch n.Attrs.PackageManager {
	case "yarn":
		return "# Setup Node dependencies\nyarn install --frozen-lockfile\n"
	case "pnpm":
		return "# Setup Node dependencies\npnpm install --frozen-lockfile\n"
	default:
		return "# Setup Node dependencies\nnpm ci\n"
	}
}

func renderPrebuildCustom(n graph.Node) string {
	script := util.FirstNonEmpty(
		util.Dequote(n.Attrs.Script),
		"echo \"no custom script provided\"",
	)
	return fmt.Sprintf("# Execute custom script\n%s\n", script)
}

func renderContainerBuild(n graph.Node) string {
	dockerfile := util.FirstNonEmpty(util.Dequote(n.Attrs.Dockerfile), "Dockerfile")
	tag := util.FirstNonEmpty(util.Dequote(n.Attrs.Tag), "app:latest")
	return fmt.Sprintf("# Build container image\ndocker build -f %s -t %s .\n", dockerfile, tag)
}

func renderRunTests(n graph.Node) string {
	testType := util.FirstNonEmpty(strings.TrimSpace(n.Attrs.TestType), "unit")
	command := util.FirstNonEmpty(util.Dequote(n.Attrs.Command), "npm test")
	return fmt.Sprintf("# Run %s tests\n%s\n", testType, command)
}

func renderDeploy(n graph.Node) string {
	environment := util.FirstNonEmpty(strings.TrimSpace(n.Attrs.Environment), "staging")
	script := util.FirstNonEmpty(util.Dequote(n.Attrs.DeployScript), "./deploy.sh")
	return fmt.Sprintf("# Deploy to %s\n%s\n", environment, script)
}

func renderNotify(n graph.Node) string {
	channel := util.FirstNonEmpty(strings.TrimSpace(n.Attrs.Channel), "#ci")
	message := util.FirstNonEmpty(strings.TrimSpace(n.Attrs.Message), "Pipeline finished")
	payload := fmt.Sprintf(`{"channel": "%s", "text": "%s"}`, channel, message)
	return fmt.Sprintf(
		"# Send notification\ncurl -X POST -H 'Content-Type: application/json' -d '%s' \"$WEBHOOK_URL\"\n",
		payload,
	)
}

func renderFallback(n graph.Node) string {
	label := util.FirstNonEmpty(strings.TrimSpace(n.Label), string(n.Kind), "stage")
	if command := util.Dequote(n.Attrs.Command); command != "" {
		return fmt.Sprintf("# %s\n%s\n", label, command)
	}
	switch n.Attrs.Lang {
	case "python":
		return fmt.Sprintf("# %s\npython main.py\n", label)
	case "java":
		return fmt.Sprintf("# %s\nmvn -B verify\n", label)
	default:
		return fmt.Sprintf("# %s\necho \"%s\"\n", label, label)
	}
}
