package service

import (
	"context"
	"sort"

	"campus-teamup/internal/logger"
	"campus-teamup/internal/matching"
	"campus-teamup/internal/model"
)

type cardPool interface {
	GetCard(ctx context.Context, id string) (*model.IntentCard, error)
	ListPublicCards(ctx context.Context, excludeUID string, limit int) ([]model.IntentCard, error)
}

type poolCache interface {
	Get(ctx context.Context) ([]model.IntentCard, bool)
	Set(ctx context.Context, cards []model.IntentCard) error
}

// RankedMatch is one entry of the ranked, explained match list.
type RankedMatch struct {
	Card      model.IntentCard        `json:"card"`
	Breakdown matching.ScoreBreakdown `json:"breakdown"`
	Reasons   []string                `json:"reasons"`
}

// MatchService runs the filter → score → explain pipeline over the public
// candidate pool. The core stays pure; this layer does the fetching, the
// final sort and the top-N truncation.
type MatchService struct {
	cards      cardPool
	cache      poolCache // nil when the match cache is disabled
	cfg        matching.Config
	maxResults int
	poolSize   int
}

// NewMatchService creates a new match service. cache may be nil.
func NewMatchService(cards cardPool, cache poolCache, cfg matching.Config, maxResults, poolSize int) *MatchService {
	return &MatchService{
		cards:      cards,
		cache:      cache,
		cfg:        cfg,
		maxResults: maxResults,
		poolSize:   poolSize,
	}
}

// TopMatches ranks the public pool against one of the viewer's cards and
// returns the explained top-N list, best first. Candidates that fail the
// hard filter never appear, regardless of score.
func (s *MatchService) TopMatches(ctx context.Context, viewerUID, cardID string, limit int) ([]RankedMatch, error) {
	source, err := s.cards.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if source.OwnerUID != viewerUID {
		return nil, ErrForbidden
	}

	pool, err := s.candidatePool(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]RankedMatch, 0, len(pool))
	for _, candidate := range pool {
		if candidate.OwnerUID == viewerUID || !candidate.IsPublic {
			continue
		}
		if res := matching.PassesHardFilters(s.cfg, *source, candidate); !res.OK {
			continue
		}
		breakdown := matching.ScoreMatch(s.cfg, *source, candidate)
		matches = append(matches, RankedMatch{
			Card:      candidate,
			Breakdown: breakdown,
			Reasons:   matching.Explain(s.cfg, *source, candidate, breakdown),
		})
	}

	// Sort-then-truncate is deliberately a post-processing step out here;
	// the core only produces unordered scored pairs.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Breakdown.Total > matches[j].Breakdown.Total
	})

	if limit <= 0 || limit > s.maxResults {
		limit = s.maxResults
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// candidatePool returns the public card pool, preferring the cache. The
// cache holds the unfiltered pool; viewer-owned cards are dropped by the
// caller. Cache errors fall through to the repository.
func (s *MatchService) candidatePool(ctx context.Context) ([]model.IntentCard, error) {
	if s.cache != nil {
		if cards, ok := s.cache.Get(ctx); ok {
			return cards, nil
		}
	}

	cards, err := s.cards.ListPublicCards(ctx, "", s.poolSize)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cards); err != nil {
			logger.Warn().Err(err).Msg("failed to cache public card pool")
		}
	}
	return cards, nil
}

// WarmPool refreshes the cached public pool. Used by the scheduler; a no-op
// without a cache.
func (s *MatchService) WarmPool(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	cards, err := s.cards.ListPublicCards(ctx, "", s.poolSize)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, cards)
}
