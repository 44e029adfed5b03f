package internal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_UnmarshalJSON(t *testing.T) {
	t.Run("success - unmarshal json works as expected", func(t *testing.T) {
		// arrange
		jsonInput := []byte(`{"snapshot_expires_hours": 24}`)
		var config Configuration

		// act
		err := json.Unmarshal(jsonInput, &config)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, time.Duration(24*time.Hour), time.Duration(config.SnapshotExpiresHours))
	})
}

func TestConfig_MarshalJSON(t *testing.T) {
	t.Run("success - marshal json works as expected", func(t *testing.T) {
		// arrange
		config := Configuration{
			SnapshotExpiresHours: NewHoursDuration(24),
		}

		// act
		b, err := json.Marshal(config)

		// assert
		assert.NoError(t, err)
		assert.Contains(t, string(b), `"snapshot_expires_hours":24`)
	})
}
