package graph

// StageKind is the closed set of supported pipeline stage types.
type StageKind string

const (
	KindStart          StageKind = "start"
	KindCloneSource    StageKind = "clone-source"
	KindInstallOS      StageKind = "install-os-packages"
	KindPrebuildNode   StageKind = "prebuild-node"
	KindPrebuildPython StageKind = "prebuild-python"
	KindPrebuildJava   StageKind = "prebuild-java"
	KindPrebuildCustom StageKind = "prebuild-custom"
	KindBuildNPM       StageKind = "build-npm"
	KindBuildPython    StageKind = "build-python"
	KindBuildJava      StageKind = "build-java"
	KindContainerBuild StageKind = "container-build"
	KindRunTests       StageKind = "run-tests"
	KindDeploy         StageKind = "deploy"
	KindNotify         StageKind = "notify"
)

// Attrs holds the sparse, kind-specific attributes of a node. The model is
// intentionally permissive: attributes not relevant to a node's kind are
// ignored by rendering and never validated at construction time.
type Attrs struct {
	RepoURL        string `json:"repo_url,omitempty"`
	Branch         string `json:"branch,omitempty"`
	PackageManager string `json:"package_manager,omitempty"`
	Packages       string `json:"packages,omitempty"`
	Script         string `json:"script,omitempty"`
	Dockerfile     string `json:"dockerfile,omitempty"`
	Tag            string `json:"tag,omitempty"`
	TestType       string `json:"test_type,omitempty"`
	Command        string `json:"command,omitempty"`
	Environment    string `json:"environment,omitempty"`
	DeployScript   string `json:"deploy_script,omitempty"`
	Channel        string `json:"channel,omitempty"`
	Message        string `json:"message,omitempty"`
	Lang           string `json:"lang,omitempty"`
	Version        string `json:"version,omitempty"`
	Distribution   string `json:"distribution,omitempty"`
}

// Node is a single stage on the editor canvas.
type Node struct {
	ID    string    `json:"id"`
	Kind  StageKind `json:"kind"`
	Label string    `json:"label,omitempty"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Attrs Attrs     `json:"attrs"`
}

// Edge is a directed connection between two nodes. Multiple outgoing edges
// from one node are legal in the model, but such a node becomes a branch
// point the linearizer refuses to traverse past.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is the snapshot exchanged with the editing surface. The core never
// mutates a snapshot it is handed.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
