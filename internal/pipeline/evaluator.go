// Package pipeline runs the cross-sectional scan: every calculator at
// every window for every security, blended, ranked.
package pipeline

import (
	"context"
	"sync"

	"github.com/wp4032/stocks/internal/domain"
	"github.com/wp4032/stocks/internal/metrics"
	"github.com/wp4032/stocks/internal/telemetry"
)

// Evaluator computes the full metric grid for one security. The
// calculators are independent and run concurrently; the blender joins
// on their 1/3/5-year values afterwards.
type Evaluator struct {
	calculators []metrics.Calculator
	telemetry   *telemetry.Registry
}

func NewEvaluator(calculators []metrics.Calculator, reg *telemetry.Registry) *Evaluator {
	return &Evaluator{calculators: calculators, telemetry: reg}
}

// lookbacks returns the window years evaluated per kind: {1,3,5} for
// everyone, a TTM point for the fundamentals ratios, and an extra
// informational 10Y for growth. The 10Y and TTM columns never enter
// the composite.
func lookbacks(kind domain.MetricKind) []int {
	switch kind {
	case domain.KindGrowth:
		return []int{10, 5, 3, 1}
	case domain.KindBeta:
		return []int{5, 3, 1}
	default:
		return []int{0, 5, 3, 1}
	}
}

// Evaluate builds the SecurityRecord for sec. A failure of any single
// metric or window leaves that cell unavailable and touches nothing
// else.
func (e *Evaluator) Evaluate(ctx context.Context, sec domain.Security) domain.SecurityRecord {
	rec := domain.NewSecurityRecord(sec)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, calc := range e.calculators {
		wg.Add(1)
		go func(c metrics.Calculator) {
			defer wg.Done()
			for _, years := range lookbacks(c.Kind()) {
				v := c.Compute(ctx, sec, years)
				if !v.Available() && e.telemetry != nil {
					e.telemetry.MetricUnavailable.WithLabelValues(string(c.Kind())).Inc()
				}
				mu.Lock()
				rec.Set(v)
				mu.Unlock()
			}
		}(calc)
	}
	wg.Wait()

	for _, calc := range e.calculators {
		kind := calc.Kind()
		rec.Set(domain.Blend(kind,
			rec.Get(kind, domain.Window1Y),
			rec.Get(kind, domain.Window3Y),
			rec.Get(kind, domain.Window5Y),
		))
	}
	return rec
}
