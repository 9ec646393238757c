package dateonly

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2026-09-01"`), &d))
		assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), d.Time)

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2026-09-01"`, string(out))
	})

	t.Run("null, empty string and absent mean zero", func(t *testing.T) {
		var payload struct {
			Start Date `json:"start"`
			End   Date `json:"end"`
			Due   Date `json:"due"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"start":null,"due":""}`), &payload))
		assert.True(t, payload.Start.IsZero())
		assert.True(t, payload.End.IsZero())
		assert.True(t, payload.Due.IsZero())
	})

	t.Run("zero marshals to null", func(t *testing.T) {
		out, err := json.Marshal(Date{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})

	t.Run("rejects timestamps", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"2026-09-01T10:00:00Z"`), &d))
	})

	t.Run("FromTime truncates to the UTC day", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*3600)
		d := FromTime(time.Date(2026, time.September, 2, 1, 30, 0, 0, loc)) // 22:30 UTC on Sep 1
		assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), d.Time)
	})
}
