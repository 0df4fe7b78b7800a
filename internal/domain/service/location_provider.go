package service

import (
	"context"

	"pawtag/internal/domain/entity"
)

// LocationProvider defines the interface for obtaining the caller's current
// device coordinates. It fails when the device denied the capability or no
// fix is available; callers decide per transition whether that failure is
// fatal (reporting, resolving) or degrades to a nil location (pet creation).
type LocationProvider interface {
	Current(ctx context.Context) (entity.Coordinates, error)
}
