package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/texttx/internal/extract"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type stubStrategy struct {
	result Result
	calls  int
}

func (s *stubStrategy) Extract(context.Context, Request) Result {
	s.calls++
	return s.result
}

func TestOrchestrator_Run(t *testing.T) {
	today := time.Date(2024, 11, 14, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name       string
		normalized string
		strategies func() ([]Strategy, []*stubStrategy)
		wantSource Source
		wantAmount decimal.NullDecimal
		wantCalls  []int
	}

	tests := []testCase{
		{
			name:       "FirstHitWins",
			normalized: "uber 25 reais",
			strategies: func() ([]Strategy, []*stubStrategy) {
				a := &stubStrategy{result: hit(SourceReuse, extract.Candidate{
					Type:   transaction.TypeExpense,
					Amount: decimal.NewNullDecimal(decimal.NewFromInt(30)),
				})}
				b := &stubStrategy{result: hit(SourceProvider, extract.Candidate{})}

				return []Strategy{a, b}, []*stubStrategy{a, b}
			},
			wantSource: SourceReuse,
			wantAmount: decimal.NewNullDecimal(decimal.NewFromInt(30)),
			wantCalls:  []int{1, 0},
		},
		{
			name:       "MissesFallThrough",
			normalized: "uber 25 reais",
			strategies: func() ([]Strategy, []*stubStrategy) {
				a := &stubStrategy{result: miss(SourceReuse)}
				b := &stubStrategy{result: hit(SourceFallback, extract.Candidate{Type: transaction.TypeExpense})}

				return []Strategy{a, b}, []*stubStrategy{a, b}
			},
			wantSource: SourceFallback,
			wantAmount: decimal.NewNullDecimal(decimal.NewFromInt(25)),
			wantCalls:  []int{1, 1},
		},
		{
			name:       "SupplementSplitsTotal",
			normalized: "geladeira 1500 em 10x",
			strategies: func() ([]Strategy, []*stubStrategy) {
				a := &stubStrategy{result: hit(SourceProvider, extract.Candidate{Installments: 10})}
				return []Strategy{a}, []*stubStrategy{a}
			},
			wantSource: SourceProvider,
			wantAmount: decimal.NewNullDecimal(decimal.NewFromInt(150)),
			wantCalls:  []int{1},
		},
		{
			name:       "AllMissUsesHeuristic",
			normalized: "comprei um livro de 80 reais",
			strategies: func() ([]Strategy, []*stubStrategy) {
				a := &stubStrategy{result: miss(SourceProvider)}
				return []Strategy{a}, []*stubStrategy{a}
			},
			wantSource: SourceHeuristic,
			wantAmount: decimal.NewNullDecimal(decimal.NewFromInt(80)),
			wantCalls:  []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategies, stubs := tt.strategies()

			res := NewOrchestrator(strategies...).Run(context.Background(), Request{
				Normalized: tt.normalized,
				Today:      today,
			})

			assert.Equal(t, Hit, res.Status)
			assert.Equal(t, tt.wantSource, res.Source)
			assert.Equal(t, tt.wantAmount.Valid, res.Candidate.Amount.Valid)
			assert.True(t, tt.wantAmount.Decimal.Equal(res.Candidate.Amount.Decimal), "amount %s", res.Candidate.Amount.Decimal)

			for i, s := range stubs {
				assert.Equal(t, tt.wantCalls[i], s.calls)
			}
		})
	}
}
