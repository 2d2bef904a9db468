package reporting

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/intentwire/intentbench/internal/models"
)

// ChartOptions configures the HTML chart artifact.
type ChartOptions struct {
	FileName  string `mapstructure:"file_name"`
	BarWidth  int    `mapstructure:"bar_width"`
	BarHeight int    `mapstructure:"bar_height"`
}

func defaultChartOptions() ChartOptions {
	return ChartOptions{
		FileName:  "charts.html",
		BarWidth:  480,
		BarHeight: 26,
	}
}

// ChartRenderer writes SVG bar charts comparing models on accuracy,
// Brier score, and average duration.
type ChartRenderer struct {
	Options ChartOptions
}

// Name implements Renderer.
func (r *ChartRenderer) Name() string { return "chart" }

type chartBar struct {
	Label string
	Value string
	// Width is the bar length in pixels, scaled to the chart width.
	Width int
	// Y and ValueX are precomputed SVG offsets.
	Y      int
	ValueX int
}

type chartData struct {
	Title     string
	Note      string
	Bars      []chartBar
	BarHeight int
	Width     int
	Height    int
}

type chartsPage struct {
	Charts []chartData
}

// Render implements Renderer.
func (r *ChartRenderer) Render(dir string, s *models.Summary) (string, error) {
	rows := s.ModelPerformance

	accuracy := chartData{
		Title:     "Accuracy (Higher is Better)",
		BarHeight: r.Options.BarHeight,
		Width:     r.Options.BarWidth,
	}
	brier := chartData{
		Title:     "Brier Score (Lower is Better)",
		BarHeight: r.Options.BarHeight,
		Width:     r.Options.BarWidth,
	}
	duration := chartData{
		Title:     "Average Duration (Lower is Better)",
		Note:      "seconds per attempt",
		BarHeight: r.Options.BarHeight,
		Width:     r.Options.BarWidth,
	}

	maxBrier, maxDur := 0.0, 0.0
	for _, row := range rows {
		if row.BrierScore > maxBrier {
			maxBrier = row.BrierScore
		}
		if row.AverageDuration > maxDur {
			maxDur = row.AverageDuration
		}
	}

	for _, row := range rows {
		accuracy.Bars = append(accuracy.Bars, chartBar{
			Label: row.Model,
			Value: fmt.Sprintf("%.4f", row.Accuracy),
			Width: scale(row.Accuracy, 1, r.Options.BarWidth),
		})
		brier.Bars = append(brier.Bars, chartBar{
			Label: row.Model,
			Value: fmt.Sprintf("%.4f", row.BrierScore),
			Width: scale(row.BrierScore, maxBrier, r.Options.BarWidth),
		})
		duration.Bars = append(duration.Bars, chartBar{
			Label: row.Model,
			Value: fmt.Sprintf("%.2f s", row.AverageDuration),
			Width: scale(row.AverageDuration, maxDur, r.Options.BarWidth),
		})
	}

	page := chartsPage{Charts: []chartData{accuracy, brier, duration}}
	for i := range page.Charts {
		c := &page.Charts[i]
		rowH := c.BarHeight + 8
		for j := range c.Bars {
			c.Bars[j].Y = j * rowH
			c.Bars[j].ValueX = c.Bars[j].Width + 6
		}
		c.Height = rowH * len(c.Bars)
		// Leave room for the value labels to the right of the bars.
		c.Width += 80
	}

	tmpl, err := template.New("charts").Parse(chartsTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing chart template: %w", err)
	}

	path := filepath.Join(dir, r.Options.FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart report: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if err := tmpl.Execute(f, page); err != nil {
		return "", fmt.Errorf("rendering chart report: %w", err)
	}
	return path, nil
}

// scale maps value into [0, width] pixels against max. A zero max
// collapses every bar to zero rather than dividing by zero.
func scale(value, max float64, width int) int {
	if max <= 0 {
		return 0
	}
	w := int(value / max * float64(width))
	if w < 0 {
		return 0
	}
	if w > width {
		return width
	}
	return w
}

const chartsTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Model Comparison</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #222; }
  h2 { margin-bottom: 0.25rem; }
  .note { color: #777; font-size: 0.85rem; margin-top: 0; }
  .chart { margin-bottom: 2.5rem; }
  .label { font-size: 13px; fill: #333; }
  .value { font-size: 12px; fill: #555; }
  rect { fill: #6c8ebf; }
</style>
</head>
<body>
<h1>Model Comparison</h1>
{{range .Charts}}
<div class="chart">
  <h2>{{.Title}}</h2>
  {{if .Note}}<p class="note">{{.Note}}</p>{{end}}
  <svg width="{{.Width}}" height="{{.Height}}" role="img">
    {{range .Bars}}
    <g transform="translate(0, {{.Y}})">
      <text class="label" x="0" y="12">{{.Label}}</text>
      <rect x="0" y="16" width="{{.Width}}" height="8"></rect>
      <text class="value" x="{{.ValueX}}" y="24">{{.Value}}</text>
    </g>
    {{end}}
  </svg>
</div>
{{end}}
</body>
</html>
`
