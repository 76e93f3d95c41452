package leaderboard

import (
	"context"
	"fmt"
	"log"
	"time"
)

const allTimeCacheTTL = 30 * time.Second

// Service answers board requests. It tries the pre-aggregated path first
// and falls back to fetching raw events and running the local pipeline when
// the server-side routine is unavailable. Both paths feed the same Rank
// call, so ordering and truncation can never diverge between them.
type Service struct {
	store EventStore
	pre   PreAggregator
	cache *resultCache
	now   func() time.Time
}

func NewService(store EventStore, pre PreAggregator) *Service {
	return &Service{
		store: store,
		pre:   pre,
		cache: newResultCache(allTimeCacheTTL),
		now:   time.Now,
	}
}

func (s *Service) TopTechnical(ctx context.Context, category string, window Window, limit int) (*Board, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}
	now := s.now()
	key := fmt.Sprintf("technical|%s|%s|%d", category, window, limit)
	if board, ok := s.cached(key, window, now); ok {
		return board, nil
	}
	since, _ := window.Cutoff(now)

	entries, err := s.pre.TopTechnical(ctx, category, since, limit)
	if err != nil {
		log.Printf("warning: preferred technical path failed, using manual aggregation: %v", err)
		events, err := s.store.TechnicalEvents(ctx, category, since)
		if err != nil {
			return nil, fmt.Errorf("fetch technical events: %w", err)
		}
		entries = Aggregate(KindTechnical, FilterEvents(events, window, now))
	}

	board, err := s.finish(entries, limit)
	if err != nil {
		return nil, err
	}
	s.remember(key, window, board, now)
	return board, nil
}

func (s *Service) TopSoftSkills(ctx context.Context, limit int) (*Board, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}
	now := s.now()
	key := fmt.Sprintf("soft-skills|%d", limit)
	if board, ok := s.cached(key, WindowAll, now); ok {
		return board, nil
	}

	entries, err := s.pre.TopSoftSkills(ctx, limit)
	if err != nil {
		log.Printf("warning: preferred soft-skills path failed, using manual aggregation: %v", err)
		events, err := s.store.SoftSkillEvents(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch soft-skill events: %w", err)
		}
		entries = Aggregate(KindSoftSkills, events)
	}

	board, err := s.finish(entries, limit)
	if err != nil {
		return nil, err
	}
	s.remember(key, WindowAll, board, now)
	return board, nil
}

func (s *Service) TopProjects(ctx context.Context, window Window, limit int) (*Board, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}
	now := s.now()
	key := fmt.Sprintf("projects|%s|%d", window, limit)
	if board, ok := s.cached(key, window, now); ok {
		return board, nil
	}
	since, _ := window.Cutoff(now)

	entries, err := s.pre.TopProjects(ctx, since, limit)
	if err != nil {
		log.Printf("warning: preferred projects path failed, using manual aggregation: %v", err)
		events, err := s.store.ProjectEvents(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("fetch project events: %w", err)
		}
		entries = Aggregate(KindProjects, FilterEvents(events, window, now))
	}

	board, err := s.finish(entries, limit)
	if err != nil {
		return nil, err
	}
	s.remember(key, window, board, now)
	return board, nil
}

func (s *Service) finish(entries map[string]*Entry, limit int) (*Board, error) {
	ranked, err := Rank(entries, limit)
	if err != nil {
		return nil, err
	}
	return &Board{Entries: ranked, TotalCount: len(ranked)}, nil
}

// Only all-time boards are cached; windowed boards shift with the clock.
func (s *Service) cached(key string, window Window, now time.Time) (*Board, bool) {
	if window != WindowAll {
		return nil, false
	}
	return s.cache.get(key, now)
}

func (s *Service) remember(key string, window Window, board *Board, now time.Time) {
	if window != WindowAll {
		return
	}
	s.cache.put(key, board, now)
}
