package handler

import (
	"net/http"
	"time"

	"github.com/haatos/visual-ci/internal"
	"github.com/labstack/echo/v4"
)

func SetupConfigRoutes(g *echo.Group, snapshots SnapshotTTLSetter) {
	h := NewConfigHandler(snapshots)
	g.GET("/api/config", h.GetConfig)
	g.PUT("/api/config", h.PutConfig)
}

type SnapshotTTLSetter interface {
	SetTTL(ttl time.Duration)
}

type ConfigHandler struct {
	snapshots SnapshotTTLSetter
}

func NewConfigHandler(snapshots SnapshotTTLSetter) *ConfigHandler {
	return &ConfigHandler{snapshots: snapshots}
}

func (h *ConfigHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, internal.Config)
}

// PutConfig persists the new configuration and applies the snapshot
// lifetime to the store.
func (h *ConfigHandler) PutConfig(c echo.Context) error {
	var config internal.Configuration
	if err := c.Bind(&config); err != nil {
		return newError(err, http.StatusBadRequest, "invalid configuration")
	}
	if time.Duration(config.SnapshotExpiresHours) <= 0 {
		return newError(nil, http.StatusBadRequest, "snapshot_expires_hours must be positive")
	}

	if err := internal.UpdateConfiguration(&config); err != nil {
		return newError(err, http.StatusInternalServerError, "err updating configuration")
	}
	h.snapshots.SetTTL(time.Duration(config.SnapshotExpiresHours))

	return c.JSON(http.StatusOK, internal.Config)
}
