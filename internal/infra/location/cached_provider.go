package location

import (
	"context"
	"log/slog"
	"sync"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// cachedProvider wraps another provider and reuses its last fix until the
// gateway has moved farther than the configured reuse distance. A fresh
// lookup that fails falls back to the cached fix, so a brief positioning
// outage does not stall uploads.
type cachedProvider struct {
	inner         service.LocationProvider
	reuseDistance float64
	logger        *slog.Logger

	mu     sync.Mutex
	cached *entity.Position
}

// NewCachedProvider decorates inner with distance-based reuse.
func NewCachedProvider(inner service.LocationProvider, cfg *config.Config, logger *slog.Logger) service.LocationProvider {
	return &cachedProvider{
		inner:         inner,
		reuseDistance: cfg.Location.ReuseDistanceMeters,
		logger:        logger,
	}
}

func (p *cachedProvider) CurrentPosition(ctx context.Context) (*entity.Position, error) {
	fresh, err := p.inner.CurrentPosition(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		if p.cached != nil {
			p.logger.Warn("Position lookup failed, reusing last fix",
				slog.Any("error", err),
			)
			cached := *p.cached

			return &cached, nil
		}

		return nil, err
	}

	if p.cached != nil && p.distanceMeters(p.cached, fresh) < p.reuseDistance {
		cached := *p.cached

		return &cached, nil
	}

	cached := *fresh
	p.cached = &cached

	return fresh, nil
}

func (p *cachedProvider) distanceMeters(a, b *entity.Position) float64 {
	return geo.Distance(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	)
}
