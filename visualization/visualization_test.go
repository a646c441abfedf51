package visualization

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"gridlearn/experiments/metrics"
	"gridlearn/grid"
)

func history() []metrics.RoundMetric {
	var h []metrics.RoundMetric
	for i := 0; i < 20; i++ {
		h = append(h, metrics.RoundMetric{
			Round:          i * 10,
			Belief:         grid.Point{X: 50 + i, Y: 50 - i},
			Truth:          grid.Point{X: 70, Y: 25},
			Distance:       45 - 2*i,
			SessionAverage: 45 - float64(i),
		})
	}
	return h
}

func TestPlotLearning(t *testing.T) {
	paths, err := PlotLearning(t.TempDir(), history())
	require.NoError(t, err)
	require.Len(t, paths, 4)
	for _, path := range paths {
		require.FileExists(t, path)
	}
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, history()))
	require.Contains(t, buf.String(), "Session avg")
	require.Contains(t, buf.String(), "<html")
}
