package visualization

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gridlearn/experiments/metrics"
)

var (
	beliefColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	truthColor    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	distanceColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	averageColor  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// PlotLearning writes the learning behaviour of a session to dir as four PNG
// files and returns their paths.
func PlotLearning(dir string, history []metrics.RoundMetric) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	beliefX, trueX := make(plotter.XYs, len(history)), make(plotter.XYs, len(history))
	beliefY, trueY := make(plotter.XYs, len(history)), make(plotter.XYs, len(history))
	distance, average := make(plotter.XYs, len(history)), make(plotter.XYs, len(history))
	for i, r := range history {
		x := float64(r.Round)
		beliefX[i] = plotter.XY{X: x, Y: float64(r.Belief.X)}
		trueX[i] = plotter.XY{X: x, Y: float64(r.Truth.X)}
		beliefY[i] = plotter.XY{X: x, Y: float64(r.Belief.Y)}
		trueY[i] = plotter.XY{X: x, Y: float64(r.Truth.Y)}
		distance[i] = plotter.XY{X: x, Y: float64(r.Distance)}
		average[i] = plotter.XY{X: x, Y: r.SessionAverage}
	}

	charts := []struct {
		file   string
		title  string
		yLabel string
		series []series
	}{
		{"belief_x.png", "X Coordinate Learning", "X", []series{{"Belief X", beliefX, beliefColor, 2}, {"True X", trueX, truthColor, 1}}},
		{"belief_y.png", "Y Coordinate Learning", "Y", []series{{"Belief Y", beliefY, beliefColor, 2}, {"True Y", trueY, truthColor, 1}}},
		{"distance.png", "Manhattan Distance per Round", "Distance", []series{{"", distance, distanceColor, 1}}},
		{"session_avg.png", "Session Average Distance (Learning Curve)", "Average Distance", []series{{"", average, averageColor, 2}}},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		p := plot.New()
		p.Title.Text = c.title
		p.X.Label.Text = "Round"
		p.Y.Label.Text = c.yLabel
		p.Add(plotter.NewGrid())

		for _, s := range c.series {
			line, err := plotter.NewLine(s.points)
			if err != nil {
				return nil, fmt.Errorf("failed to create %s line: %w", c.file, err)
			}
			line.Color = s.color
			line.Width = vg.Points(s.width)
			p.Add(line)
			if s.label != "" {
				p.Legend.Add(s.label, line)
			}
		}
		p.Legend.Top = true

		path := filepath.Join(dir, c.file)
		if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", c.file, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

type series struct {
	label  string
	points plotter.XYs
	color  color.Color
	width  float64
}
