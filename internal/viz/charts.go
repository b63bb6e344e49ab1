package viz

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/stats"
)

var signalOrder = []string{
	models.SignalPoor,
	models.SignalFair,
	models.SignalGood,
	models.SignalExcellent,
}

var spotOrder = []string{
	models.SpotHotspot,
	models.SpotColdspot,
	models.SpotNotSignificant,
}

// SignalStrengthBar renders a PNG bar chart of cell counts per signal
// strength category, in fixed category order.
func SignalStrengthBar(cells models.CellSet, title string) ([]byte, error) {
	counts := make(map[string]int)
	for _, c := range cells {
		counts[c.SignalStrength]++
	}

	values := make(plotter.Values, len(signalOrder))
	for i, cat := range signalOrder {
		values[i] = float64(counts[cat])
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Cells"

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(signalOrder...)

	return renderPNG(p)
}

// RSRPBox renders a PNG box plot of mean RSRP grouped by spot
// classification, with a line tracing the group means.
func RSRPBox(cells models.CellSet, title string) ([]byte, error) {
	groups := make(map[string][]float64)
	for _, c := range cells {
		if c.Spot == "" {
			continue
		}
		groups[c.Spot] = append(groups[c.Spot], c.RSRP)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "RSRP (dBm)"

	means := make(plotter.XYs, 0, len(spotOrder))
	for i, label := range spotOrder {
		vals := groups[label]
		if len(vals) == 0 {
			continue
		}

		values := make(plotter.Values, len(vals))
		copy(values, vals)
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), values)
		if err != nil {
			return nil, fmt.Errorf("failed to build box plot: %w", err)
		}
		p.Add(box)
		means = append(means, plotter.XY{X: float64(i), Y: stats.Mean(vals)})
	}

	if len(means) > 1 {
		line, err := plotter.NewLine(means)
		if err != nil {
			return nil, fmt.Errorf("failed to build mean line: %w", err)
		}
		p.Add(line)
		p.Legend.Add("Mean", line)
	}
	p.NominalX(spotOrder...)

	return renderPNG(p)
}

func renderPNG(p *plot.Plot) ([]byte, error) {
	w, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write chart: %w", err)
	}
	return buf.Bytes(), nil
}
