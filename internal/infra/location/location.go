// Package location provides the request-scoped device location source.
// Coordinates arrive with each request from the device's own fix; the
// delivery layer stashes them in the context and this provider reads them
// back for the use cases.
package location

import (
	"context"

	"pawtag/internal/domain/entity"
	"pawtag/internal/domain/service"

	"github.com/pkg/errors"
)

type coordinatesKey struct{}

// ErrNoLocation is returned when the request carried no device fix.
var ErrNoLocation = errors.New("device location not provided")

// WithCoordinates returns a context carrying the device coordinates.
func WithCoordinates(ctx context.Context, coords entity.Coordinates) context.Context {
	return context.WithValue(ctx, coordinatesKey{}, coords)
}

// FromContext extracts the device coordinates if present.
func FromContext(ctx context.Context) (entity.Coordinates, bool) {
	coords, ok := ctx.Value(coordinatesKey{}).(entity.Coordinates)

	return coords, ok
}

type deviceProvider struct{}

// NewDeviceProvider creates a LocationProvider that reads the per-request
// device fix from the context.
func NewDeviceProvider() service.LocationProvider {
	return &deviceProvider{}
}

func (p *deviceProvider) Current(ctx context.Context) (entity.Coordinates, error) {
	coords, ok := FromContext(ctx)
	if !ok {
		return entity.Coordinates{}, ErrNoLocation
	}
	if !coords.Valid() {
		return entity.Coordinates{}, errors.New("device location out of range")
	}

	return coords, nil
}
