package sim

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Sample_AppendsToSeries(t *testing.T) {
	m := NewMetrics()

	m.Sample(MetricPoint{Time: 10, WaitingPatients: 2})
	m.Sample(MetricPoint{Time: 20, WaitingPatients: 3})

	require.Len(t, m.Series, 2)
	assert.Equal(t, 10.0, m.Series[0].Time)
	assert.Equal(t, 3, m.Series[1].WaitingPatients)
}

func TestSimulationResult_WriteJSON_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	result := &SimulationResult{
		RunID:         "test-run",
		Seed:          42,
		TotalArrivals: 3,
		TotalTreated:  2,
		StillWaiting:  1,
		SimEndTime:    480,
		DischargedPatients: []*Patient{
			NewPatient(1, 0, P3Urgent, 60),
		},
	}

	require.NoError(t, result.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded SimulationResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "test-run", decoded.RunID)
	assert.Equal(t, 3, decoded.TotalArrivals)
	require.Len(t, decoded.DischargedPatients, 1)
	assert.Equal(t, P3Urgent, decoded.DischargedPatients[0].Priority)
}
