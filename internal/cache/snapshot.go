// Package cache holds the in-process TTL snapshot of campaigns that
// selection reads from, keeping the engine itself free of any refresh
// timing concerns.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"campus-ads/internal/core/domain"
	"campus-ads/internal/core/port"
	"campus-ads/internal/metrics"
)

// Snapshot caches the repository's campaign list for a fixed TTL. Concurrent
// selections share one slice; callers must treat it as read-only. When a
// refresh fails and an earlier snapshot exists, the stale snapshot is served
// so a store outage degrades to stale ads rather than no ads.
type Snapshot struct {
	repo   port.CampaignRepository
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	campaigns []domain.Campaign
	fetchedAt time.Time
	valid     bool
}

// NewSnapshot creates a snapshot cache over repo with the given TTL.
func NewSnapshot(repo port.CampaignRepository, ttl time.Duration, logger *slog.Logger) *Snapshot {
	return &Snapshot{repo: repo, ttl: ttl, logger: logger, now: time.Now}
}

// Campaigns returns the cached snapshot, refreshing it from the repository
// when it is missing, invalidated or older than the TTL. The error is
// non-nil only when a refresh fails with no previous snapshot to fall
// back on.
func (s *Snapshot) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.valid && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.campaigns, nil
	}

	fresh, err := s.repo.List(ctx)
	if err != nil {
		metrics.SnapshotRefreshErrors.Inc()
		if s.valid {
			s.logger.Warn("campaign snapshot refresh failed, serving stale",
				slog.Any("error", err))
			return s.campaigns, nil
		}
		return nil, err
	}

	s.campaigns = fresh
	s.fetchedAt = s.now()
	s.valid = true
	return s.campaigns, nil
}

// Invalidate drops the snapshot so the next read hits the repository. Called
// after every accepted admin write.
func (s *Snapshot) Invalidate() {
	s.mu.Lock()
	s.valid = false
	s.mu.Unlock()
}
