package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/haatos/visual-ci/internal/codegen"
	"github.com/haatos/visual-ci/internal/graph"
	"github.com/haatos/visual-ci/internal/parse"
)

// Artifacts are the two text outputs regenerated from a graph snapshot.
type Artifacts struct {
	Script   string `json:"script"`
	Workflow string `json:"workflow"`
}

// EditorService wraps the pure generation and parsing engine for the HTTP
// layer. Generation is memoized on a content hash of the snapshot: the
// editing surface re-requests the artifacts on tab switches and reconnects
// without the snapshot having changed.
type EditorService struct {
	mu       sync.Mutex
	lastHash string
	lastOut  Artifacts
}

func NewEditorService() *EditorService {
	return &EditorService{}
}

// Generate returns the script and workflow text for a snapshot.
func (s *EditorService) Generate(g graph.Graph) Artifacts {
	hash := snapshotHash(g)

	s.mu.Lock()
	defer s.mu.Unlock()
	if hash != "" && hash == s.lastHash {
		return s.lastOut
	}

	out := Artifacts{
		Script:   codegen.GenerateShell(g),
		Workflow: codegen.GenerateWorkflow(g),
	}
	s.lastHash = hash
	s.lastOut = out
	return out
}

// ParseWorkflow recovers a graph from workflow YAML. An empty graph means
// the text was not usable; the caller keeps its current graph.
func (s *EditorService) ParseWorkflow(text string) graph.Graph {
	return parse.Workflow(text)
}

// ParseScript recovers a graph from a rendered shell script.
func (s *EditorService) ParseScript(text string) graph.Graph {
	return parse.Script(text)
}

func snapshotHash(g graph.Graph) string {
	b, err := json.Marshal(g)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
