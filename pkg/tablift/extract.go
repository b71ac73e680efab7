package tablift

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tablift/tablift/pkg/tablift/clean"
	"github.com/tablift/tablift/pkg/tablift/detect"
	"github.com/tablift/tablift/pkg/tablift/models"
)

// strategy is one detector invocation in the chain: an engine, the mode to
// run it in, and the header assumption applied during cleaning.
type strategy struct {
	method       models.Method
	engine       detect.Engine
	mode         detect.Mode
	assumeHeader bool
}

// strategies assembles the fixed-priority detector order from the configured
// engines. More specific detectors come first because they have lower
// false-positive rates and should win whenever they apply.
func strategies(opts Options) []strategy {
	var out []strategy
	if opts.Engine != nil {
		out = append(out,
			strategy{models.MethodGrid, opts.Engine, detect.ModeGrid, true},
			strategy{models.MethodLattice, opts.Engine, detect.ModeLattice, true},
			strategy{models.MethodStream, opts.Engine, detect.ModeStream, true},
			strategy{models.MethodGridHeaderless, opts.Engine, detect.ModeHeaderless, false},
		)
	}
	if opts.Fallback != nil {
		out = append(out, strategy{models.MethodTextFallback, opts.Fallback, detect.ModeHeaderless, false})
	}
	return out
}

// Extract runs the detector chain against an already-validated PDF and
// returns the terminal outcome. The first strategy whose candidates survive
// cleaning wins; a detector error, panic, or full rejection by the cleaner
// is a miss and the chain moves on. When every strategy misses the outcome
// is the "all methods failed" result, which callers should treat as a
// normal, expected case.
func Extract(path string, opts Options) *models.Outcome {
	for _, s := range strategies(opts) {
		raw, err := runDetector(s, path)
		if err != nil {
			log.Debug().
				Str("strategy", string(s.method)).
				Err(err).
				Msg("strategy failed, trying next")
			continue
		}

		var accepted []models.Table
		for _, t := range raw {
			if ct, ok := clean.Clean(t, s.assumeHeader, opts.Clean); ok {
				accepted = append(accepted, ct)
			}
		}
		if len(accepted) == 0 {
			log.Debug().
				Str("strategy", string(s.method)).
				Int("candidates", len(raw)).
				Msg("no candidate survived cleaning")
			continue
		}

		log.Info().
			Str("method", string(s.method)).
			Int("tables", len(accepted)).
			Msg("tables extracted")
		return &models.Outcome{Success: true, Tables: accepted, Method: s.method}
	}

	return &models.Outcome{
		Success:      false,
		Method:       models.MethodAllFailed,
		ErrorMessage: "no tables found by any extraction method; the PDF may contain no tabular data or only scanned images",
	}
}

// runDetector isolates a single detector call so a panic inside an engine
// cannot abort the chain.
func runDetector(s strategy, path string) (tables []models.Table, err error) {
	defer func() {
		if p := recover(); p != nil {
			tables = nil
			err = fmt.Errorf("detector %s panicked: %v", s.engine.Name(), p)
		}
	}()
	return s.engine.Detect(path, s.mode)
}
