package pattern

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/texttx/internal/extract"
	"github.com/MrJamesThe3rd/texttx/internal/textnorm"
)

const (
	ReuseMinConfidence = 0.7
	ReuseMinSimilarity = 0.8
	FallbackMinSimilar = 0.5

	// HistoryLimit is how many recent patterns are sent to the provider as context.
	HistoryLimit = 20

	SimilarLimit = 10
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=pattern
type Repository interface {
	Save(ctx context.Context, p *LearnedPattern) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*LearnedPattern, error)
	ListProcessed(ctx context.Context, userID uuid.UUID, minConfidence float64) ([]*LearnedPattern, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*LearnedPattern, error)
	FindSimilar(ctx context.Context, userID uuid.UUID, keyword string) ([]*LearnedPattern, error)
	ListUnprocessed(ctx context.Context, userID uuid.UUID) ([]*LearnedPattern, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FindReusable returns the most recent confident pattern similar enough to be the
// same recurring transaction, or nil.
func (s *Service) FindReusable(ctx context.Context, userID uuid.UUID, normalized string) (*LearnedPattern, error) {
	patterns, err := s.repo.ListProcessed(ctx, userID, ReuseMinConfidence)
	if err != nil {
		return nil, fmt.Errorf("listing processed patterns: %w", err)
	}

	for _, p := range patterns {
		if extract.Similarity(normalized, p.NormalizedText) >= ReuseMinSimilarity {
			return p, nil
		}
	}

	return nil, nil
}

// FindFallback returns the processed pattern with the highest similarity of at
// least FallbackMinSimilar, preferring higher confidence on ties, or nil.
func (s *Service) FindFallback(ctx context.Context, userID uuid.UUID, normalized string) (*LearnedPattern, error) {
	patterns, err := s.repo.ListProcessed(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("listing processed patterns: %w", err)
	}

	slices.SortStableFunc(patterns, func(a, b *LearnedPattern) int {
		return cmp.Compare(b.ConfidenceOrZero(), a.ConfidenceOrZero())
	})

	var (
		best      *LearnedPattern
		bestScore float64
	)

	for _, p := range patterns {
		score := extract.Similarity(normalized, p.NormalizedText)
		if score >= FallbackMinSimilar && score > bestScore {
			best, bestScore = p, score
		}
	}

	return best, nil
}

// Recent returns the user's latest patterns, newest first.
func (s *Service) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*LearnedPattern, error) {
	return s.repo.ListRecent(ctx, userID, limit)
}

// Record persists a new pattern.
func (s *Service) Record(ctx context.Context, p *LearnedPattern) error {
	return s.repo.Save(ctx, p)
}

// Similar looks up processed patterns sharing any word longer than three
// characters with text, most confident first, capped at SimilarLimit.
func (s *Service) Similar(ctx context.Context, userID uuid.UUID, text string) ([]*LearnedPattern, error) {
	seen := make(map[uuid.UUID]struct{})

	var found []*LearnedPattern

	for _, keyword := range textnorm.Words(textnorm.Normalize(text)) {
		if len(keyword) <= 3 {
			continue
		}

		patterns, err := s.repo.FindSimilar(ctx, userID, keyword)
		if err != nil {
			return nil, fmt.Errorf("finding patterns for %q: %w", keyword, err)
		}

		for _, p := range patterns {
			if _, dup := seen[p.ID]; dup {
				continue
			}

			seen[p.ID] = struct{}{}
			found = append(found, p)
		}
	}

	slices.SortStableFunc(found, func(a, b *LearnedPattern) int {
		return cmp.Compare(b.ConfidenceOrZero(), a.ConfidenceOrZero())
	})

	if len(found) > SimilarLimit {
		found = found[:SimilarLimit]
	}

	return found, nil
}

// All lists every pattern of the user, newest first.
func (s *Service) All(ctx context.Context, userID uuid.UUID) ([]*LearnedPattern, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Pending lists failed patterns whose text has never been processed successfully.
func (s *Service) Pending(ctx context.Context, userID uuid.UUID) ([]*LearnedPattern, error) {
	return s.repo.ListUnprocessed(ctx, userID)
}
