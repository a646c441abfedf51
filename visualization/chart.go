package visualization

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"gridlearn/experiments/metrics"
)

// RenderChart writes an interactive HTML page with the session's distance
// per round and learning curve.
func RenderChart(w io.Writer, history []metrics.RoundMetric) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Session Average Distance",
			Subtitle: "Epsilon-greedy median guesser",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	rounds := make([]int, len(history))
	distances := make([]opts.LineData, len(history))
	averages := make([]opts.LineData, len(history))
	for i, r := range history {
		rounds[i] = r.Round
		distances[i] = opts.LineData{Value: r.Distance}
		averages[i] = opts.LineData{Value: r.SessionAverage}
	}
	line.SetXAxis(rounds).
		AddSeries("Distance", distances).
		AddSeries("Session avg", averages)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
