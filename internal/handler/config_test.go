package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/haatos/visual-ci/internal"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTTLSetter struct {
	mock.Mock
}

func (m *MockTTLSetter) SetTTL(ttl time.Duration) {
	m.Called(ttl)
}

func TestConfigHandler_GetConfig(t *testing.T) {
	t.Run("success - current configuration is returned", func(t *testing.T) {
		// arrange
		internal.Config = &internal.Configuration{
			SnapshotExpiresHours: internal.NewHoursDuration(48),
		}
		h := NewConfigHandler(new(MockTTLSetter))
		c, rec := newTestContext(http.MethodGet, "/api/config", "")

		// act
		err := h.GetConfig(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		var out internal.Configuration
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, internal.NewHoursDuration(48), out.SnapshotExpiresHours)
	})
}

func TestConfigHandler_PutConfig(t *testing.T) {
	t.Run("success - configuration is persisted and ttl applied", func(t *testing.T) {
		// arrange
		internal.Config = &internal.Configuration{
			SnapshotExpiresHours: internal.NewHoursDuration(7 * 24),
		}
		defer os.Remove(internal.ConfigPath)
		snapshots := new(MockTTLSetter)
		snapshots.On("SetTTL", 24*time.Hour).Return()
		h := NewConfigHandler(snapshots)
		c, rec := newTestContext(http.MethodPut, "/api/config", `{"snapshot_expires_hours": 24}`)

		// act
		err := h.PutConfig(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, internal.NewHoursDuration(24), internal.Config.SnapshotExpiresHours)
		snapshots.AssertExpectations(t)

		b, err := os.ReadFile(internal.ConfigPath)
		assert.NoError(t, err)
		assert.Contains(t, string(b), `"snapshot_expires_hours": 24`)
	})

	t.Run("failure - non-positive lifetime yields bad request", func(t *testing.T) {
		internal.Config = &internal.Configuration{
			SnapshotExpiresHours: internal.NewHoursDuration(7 * 24),
		}
		h := NewConfigHandler(new(MockTTLSetter))
		c, _ := newTestContext(http.MethodPut, "/api/config", `{"snapshot_expires_hours": 0}`)

		err := h.PutConfig(c)

		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("failure - malformed body yields bad request", func(t *testing.T) {
		h := NewConfigHandler(new(MockTTLSetter))
		c, _ := newTestContext(http.MethodPut, "/api/config", `{"snapshot_expires_hours":`)

		err := h.PutConfig(c)

		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}
