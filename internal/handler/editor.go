package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/haatos/visual-ci/internal/graph"
	"github.com/haatos/visual-ci/internal/service"
	"github.com/labstack/echo/v4"
)

func SetupEditorRoutes(
	g *echo.Group,
	editorService EditorServicer,
	snapshots SnapshotStorer,
) {
	h := NewEditorHandler(editorService, snapshots)
	g.POST("/api/sessions", h.PostSession)
	g.GET("/api/sessions/:session_id/graph", h.GetSessionGraph)
	g.PUT("/api/sessions/:session_id/graph", h.PutSessionGraph)
	g.POST("/api/generate", h.PostGenerate)
	g.POST("/api/parse/workflow", h.PostParseWorkflow)
	g.POST("/api/parse/script", h.PostParseScript)
}

type EditorServicer interface {
	Generate(g graph.Graph) service.Artifacts
	ParseWorkflow(text string) graph.Graph
	ParseScript(text string) graph.Graph
}

type SnapshotStorer interface {
	Put(sessionID string, g graph.Graph)
	Get(sessionID string) (graph.Graph, bool)
}

type EditorHandler struct {
	editorService EditorServicer
	snapshots     SnapshotStorer
}

func NewEditorHandler(editorService EditorServicer, snapshots SnapshotStorer) *EditorHandler {
	return &EditorHandler{
		editorService: editorService,
		snapshots:     snapshots,
	}
}

// PostSession opens a new editing session and returns its id.
func (h *EditorHandler) PostSession(c echo.Context) error {
	sessionID := uuid.NewString()
	h.snapshots.Put(sessionID, graph.Graph{})
	return c.JSON(http.StatusCreated, map[string]string{"session_id": sessionID})
}

// GetSessionGraph returns the session's last stored snapshot.
func (h *EditorHandler) GetSessionGraph(c echo.Context) error {
	sessionID := c.Param("session_id")
	g, ok := h.snapshots.Get(sessionID)
	if !ok {
		return newError(nil, http.StatusNotFound, "unknown or expired session")
	}
	return c.JSON(http.StatusOK, g)
}

// PutSessionGraph stores the session's snapshot and responds with the
// regenerated artifacts.
func (h *EditorHandler) PutSessionGraph(c echo.Context) error {
	sessionID := c.Param("session_id")
	if _, ok := h.snapshots.Get(sessionID); !ok {
		return newError(nil, http.StatusNotFound, "unknown or expired session")
	}

	var g graph.Graph
	if err := c.Bind(&g); err != nil {
		return newError(err, http.StatusBadRequest, "invalid graph snapshot")
	}

	h.snapshots.Put(sessionID, g)
	return c.JSON(http.StatusOK, h.editorService.Generate(g))
}

// PostGenerate regenerates both artifacts for a snapshot without touching
// any session state.
func (h *EditorHandler) PostGenerate(c echo.Context) error {
	var g graph.Graph
	if err := c.Bind(&g); err != nil {
		return newError(err, http.StatusBadRequest, "invalid graph snapshot")
	}
	return c.JSON(http.StatusOK, h.editorService.Generate(g))
}

type parseRequest struct {
	Text string `json:"text"`
}

// PostParseWorkflow recovers a graph from workflow YAML. An empty graph in
// the response means the text was not usable; the editing surface keeps
// its current graph in that case.
func (h *EditorHandler) PostParseWorkflow(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil {
		return newError(err, http.StatusBadRequest, "invalid parse request")
	}
	return c.JSON(http.StatusOK, h.editorService.ParseWorkflow(req.Text))
}

// PostParseScript recovers a graph from a rendered shell script.
func (h *EditorHandler) PostParseScript(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil {
		return newError(err, http.StatusBadRequest, "invalid parse request")
	}
	return c.JSON(http.StatusOK, h.editorService.ParseScript(req.Text))
}
