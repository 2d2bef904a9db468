// Package reporting writes the structured summary document and the
// optional human-readable renderings derived from it. The structured
// summary is always written first; renderers are best-effort and their
// failures never block it.
package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"

	"github.com/intentwire/intentbench/internal/models"
)

// Capabilities records which optional renderings are enabled. It is
// resolved once at startup from flags and passed into artifact writing.
type Capabilities struct {
	Table bool
	Chart bool
}

// Renderer produces one human-readable artifact from a summary.
type Renderer interface {
	// Name identifies the renderer in skip notices.
	Name() string
	// Render writes the artifact into dir and returns its path.
	Render(dir string, s *models.Summary) (string, error)
}

// SummaryFileName is the structured summary artifact inside the
// analysis directory.
const SummaryFileName = "summary.json"

// WriteSummary writes the structured summary document to dir,
// creating dir if needed.
func WriteSummary(dir string, s *models.Summary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating analysis directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}

	path := filepath.Join(dir, SummaryFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}
	return path, nil
}

// ReadSummary loads a previously written summary document.
func ReadSummary(path string) (*models.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s models.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing summary %s: %w", path, err)
	}
	return &s, nil
}

// NewRenderers builds the renderer set from suite report configs,
// filtered by caps. With no configs the default set (table and chart)
// is used. Unknown report types and unknown config keys are errors.
func NewRenderers(caps Capabilities, cfgs []models.ReportConfig) ([]Renderer, error) {
	if len(cfgs) == 0 {
		cfgs = []models.ReportConfig{{Kind: "table"}, {Kind: "chart"}}
	}

	var renderers []Renderer
	for _, cfg := range cfgs {
		switch cfg.Kind {
		case "table":
			if !caps.Table {
				continue
			}
			opts := defaultTableOptions()
			if err := decodeParams(cfg.Parameters, &opts); err != nil {
				return nil, fmt.Errorf("table report config: %w", err)
			}
			renderers = append(renderers, &TableRenderer{Options: opts})
		case "chart":
			if !caps.Chart {
				continue
			}
			opts := defaultChartOptions()
			if err := decodeParams(cfg.Parameters, &opts); err != nil {
				return nil, fmt.Errorf("chart report config: %w", err)
			}
			renderers = append(renderers, &ChartRenderer{Options: opts})
		default:
			return nil, fmt.Errorf("unknown report type %q (supported: table, chart)", cfg.Kind)
		}
	}
	return renderers, nil
}

// decodeParams decodes a free-form YAML parameter map into a typed
// options struct, rejecting keys the renderer does not understand.
func decodeParams(params map[string]any, target any) error {
	if len(params) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}
