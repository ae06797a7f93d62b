package assistant

import (
	"context"
	"log/slog"

	"github.com/MrJamesThe3rd/texttx/internal/extract"
	"github.com/MrJamesThe3rd/texttx/internal/metrics"
)

// Orchestrator runs strategies in order and returns the first Hit.
type Orchestrator struct {
	strategies []Strategy
}

func NewOrchestrator(strategies ...Strategy) *Orchestrator {
	return &Orchestrator{strategies: strategies}
}

// Run never fails: when every strategy misses, the heuristic extractors answer.
func (o *Orchestrator) Run(ctx context.Context, req Request) Result {
	var res Result

	for _, s := range o.strategies {
		if res = s.Extract(ctx, req); res.Status == Hit {
			break
		}

		slog.Debug("extraction strategy missed", "source", res.Source)
	}

	if res.Status != Hit {
		res = hit(SourceHeuristic, extract.Analyze(req.Normalized, req.Today, req.Categories))
	}

	supplementAmount(&res.Candidate, req.Normalized)
	metrics.Extractions.WithLabelValues(string(res.Source)).Inc()

	return res
}

// supplementAmount reads the amount from the current message when the
// candidate has none, splitting totals across installments.
func supplementAmount(c *extract.Candidate, normalized string) {
	if c.HasAmount() {
		return
	}

	amount := extract.Amount(normalized)
	if !amount.Valid || !amount.Decimal.IsPositive() {
		return
	}

	if c.Installments > 1 {
		c.SplitAmount(amount.Decimal, normalized)
		return
	}

	c.Amount = amount
}
