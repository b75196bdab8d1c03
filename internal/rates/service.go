package rates

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salon-pay/salon_pay/internal/currency"
	"github.com/salon-pay/salon_pay/internal/metrics"
)

const snapshotKey = "rates:snapshot:v1"

// Service owns the current exchange-rate table. The table is replaced
// wholesale on refresh and never partially mutated; readers get a snapshot
// copy so a conversion always sees one consistent table.
type Service struct {
	mu       sync.RWMutex
	table    currency.Table
	provider Provider
	cache    *redis.Client
	logger   *slog.Logger
	interval time.Duration
}

// New seeds the service with the built-in fallback table so conversions work
// before the first successful refresh. The Redis client is optional and only
// used to persist the last good snapshot across restarts.
func New(provider Provider, cache *redis.Client, logger *slog.Logger, interval time.Duration) *Service {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Service{
		table:    currency.Fallback(),
		provider: provider,
		cache:    cache,
		logger:   logger,
		interval: interval,
	}
}

// Table returns a copy of the current rate table.
func (s *Service) Table() currency.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone()
}

// Refresh fetches a fresh table and installs it. On provider failure it falls
// back to the last snapshot stored in Redis, and failing that keeps serving
// the current table. Refresh never returns the service to an unusable state;
// whichever refresh completes last wins.
func (s *Service) Refresh(ctx context.Context) error {
	table, err := s.provider.Fetch(ctx)
	if err != nil {
		metrics.RateRefreshes.WithLabelValues("failure").Inc()
		s.logger.Warn("rate refresh failed, using fallback", "error", err)
		if cached, ok := s.cachedSnapshot(ctx); ok {
			s.replace(cached)
		}
		return err
	}

	metrics.RateRefreshes.WithLabelValues("success").Inc()
	s.replace(table)
	s.storeSnapshot(ctx, table)
	return nil
}

// Run refreshes immediately and then on the configured interval until the
// context is cancelled. One request is outstanding at a time.
func (s *Service) Run(ctx context.Context) {
	if err := s.Refresh(ctx); err == nil {
		s.logger.Info("exchange rates loaded", "interval", s.interval.String())
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

func (s *Service) replace(table currency.Table) {
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
}

func (s *Service) storeSnapshot(ctx context.Context, table currency.Table) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(table.Rates)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, snapshotKey, payload, 0).Err(); err != nil {
		s.logger.Warn("persist rate snapshot failed", "error", err)
	}
}

func (s *Service) cachedSnapshot(ctx context.Context) (currency.Table, bool) {
	if s.cache == nil {
		return currency.Table{}, false
	}
	payload, err := s.cache.Get(ctx, snapshotKey).Result()
	if err != nil {
		return currency.Table{}, false
	}
	var rates map[string]float64
	if err := json.Unmarshal([]byte(payload), &rates); err != nil {
		s.logger.Warn("decode rate snapshot failed", "error", err)
		return currency.Table{}, false
	}
	if len(rates) == 0 {
		return currency.Table{}, false
	}
	s.mu.RLock()
	base := s.table.Base
	s.mu.RUnlock()
	return currency.Table{Base: base, Rates: rates}, true
}
