package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, activity string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, vec.WithLabelValues(activity).Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, vec *prometheus.GaugeVec, activity string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, vec.WithLabelValues(activity).Write(&m))
	return m.GetGauge().GetValue()
}

func TestRecordSignUp(t *testing.T) {
	before := counterValue(t, signUpsTotal, "Chess Club")

	RecordSignUp("Chess Club", 3)

	require.Equal(t, before+1, counterValue(t, signUpsTotal, "Chess Club"))
	require.Equal(t, float64(3), gaugeValue(t, rosterSize, "Chess Club"))
}

func TestRecordUnregister(t *testing.T) {
	before := counterValue(t, unregistrationsTotal, "Gym Class")

	RecordUnregister("Gym Class", 1)

	require.Equal(t, before+1, counterValue(t, unregistrationsTotal, "Gym Class"))
	require.Equal(t, float64(1), gaugeValue(t, rosterSize, "Gym Class"))
}
