package tablift

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/tablift/tablift/pkg/tablift/detect"
)

// FileConfig is the optional on-disk configuration. Only the heuristic
// thresholds live here; everything else is a flag. Pointer fields
// distinguish "not set" from an explicit zero.
type FileConfig struct {
	Clean struct {
		MinRows      *int     `yaml:"minRows"`
		MinFillRatio *float64 `yaml:"minFillRatio"`
		ColumnPrefix string   `yaml:"columnPrefix"`
	} `yaml:"clean"`

	Detect struct {
		RowTolerance     *float64 `yaml:"rowTolerance"`
		SnapTolerance    *float64 `yaml:"snapTolerance"`
		MinColumnSupport *float64 `yaml:"minColumnSupport"`
		MinGapWidth      *float64 `yaml:"minGapWidth"`
		DisableFallback  bool     `yaml:"disableFallback"`
	} `yaml:"detect"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply overlays the configured values onto opts. Detector tolerances only
// apply when the primary engine is the default PDF engine.
func (c *FileConfig) Apply(opts *Options) {
	if c.Clean.MinRows != nil {
		opts.Clean.MinRows = *c.Clean.MinRows
	}
	if c.Clean.MinFillRatio != nil {
		opts.Clean.MinFillRatio = *c.Clean.MinFillRatio
	}
	if c.Clean.ColumnPrefix != "" {
		opts.Clean.ColumnPrefix = c.Clean.ColumnPrefix
	}

	if eng, ok := opts.Engine.(*detect.PDFEngine); ok {
		if c.Detect.RowTolerance != nil {
			eng.RowTolerance = *c.Detect.RowTolerance
		}
		if c.Detect.SnapTolerance != nil {
			eng.SnapTolerance = *c.Detect.SnapTolerance
		}
		if c.Detect.MinColumnSupport != nil {
			eng.MinColumnSupport = *c.Detect.MinColumnSupport
		}
		if c.Detect.MinGapWidth != nil {
			eng.MinGapWidth = *c.Detect.MinGapWidth
		}
	}
	if c.Detect.DisableFallback {
		opts.Fallback = nil
	}
}
