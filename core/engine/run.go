package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"refine-calc/core/ledger"
	"refine-calc/core/resource"
	"refine-calc/internal/logging"
)

// Result is the outcome of one run over a batch of owned resources
type Result struct {
	// Haves are the owned inputs in display order
	Haves []*resource.Resource

	// Needs are the non-zero needs in display order
	Needs []*resource.Resource

	// Crafted is the non-zero crafted supply left after reconciliation, in display order
	Crafted []*resource.Resource

	// Metadata describes the run
	Metadata Metadata
}

// Metadata contains execution context
type Metadata struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Timestamp string          `json:"timestamp" yaml:"timestamp"`
	Duration  string          `json:"duration" yaml:"duration"`
	Remainder RemainderPolicy `json:"remainder" yaml:"remainder"`
	Depth     DepthPolicy     `json:"depth" yaml:"depth"`
}

// Run feeds a batch of owned resources through one ledger. Haves are processed
// in display order. Refined haves are recorded as crafted supply before any
// calculation so derived needs are offset against them, and their own descent
// does not craft them again.
func (e *Engine) Run(haves []*resource.Resource) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := logging.With(zap.String("run_id", runID))

	sorted := resource.Sorted(haves)
	totals := ledger.New()

	for _, have := range sorted {
		if !have.IsRefined() {
			continue
		}
		if _, err := totals.Craft(have); err != nil {
			return nil, err
		}
	}

	for _, have := range sorted {
		log.Debug("calculate", zap.Stringer("have", have))
		if err := e.calculate(totals, have, !have.IsRefined()); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Haves:   sorted,
		Needs:   nonZero(resource.Sorted(totals.Resources())),
		Crafted: nonZero(resource.Sorted(totals.Crafted())),
		Metadata: Metadata{
			RunID:     runID,
			Timestamp: start.UTC().Format(time.RFC3339),
			Duration:  time.Since(start).String(),
			Remainder: e.config.Remainder,
			Depth:     e.config.Depth,
		},
	}

	log.Info("calculation complete",
		zap.Int("haves", len(result.Haves)),
		zap.Int("needs", len(result.Needs)),
	)
	return result, nil
}

func nonZero(rs []*resource.Resource) []*resource.Resource {
	out := rs[:0]
	for _, r := range rs {
		if r.Quantity() > 0 {
			out = append(out, r)
		}
	}
	return out
}
