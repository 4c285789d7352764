// Package location implements gateway position providers.
package location

import (
	"context"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/service"
)

// staticProvider returns the fixed position configured for a stationary
// gateway.
type staticProvider struct {
	position entity.Position
}

// NewStaticProvider creates a provider that always reports the configured
// coordinates.
func NewStaticProvider(cfg *config.Config) service.LocationProvider {
	return &staticProvider{
		position: entity.Position{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		},
	}
}

func (p *staticProvider) CurrentPosition(_ context.Context) (*entity.Position, error) {
	position := p.position

	return &position, nil
}
