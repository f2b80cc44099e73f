package database

import (
	"context"
	"time"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
)

// ObserverDirectory is the queryable store of observer records. The
// alerting path only reads; writes come from the location-update and
// subscription handlers.
type ObserverDirectory interface {
	// FindByIdentity returns (nil, nil) when no such observer exists.
	FindByIdentity(ctx context.Context, identity string) (*domain.Observer, error)
	FindSubscribed(ctx context.Context) ([]domain.Observer, error)
	FindAll(ctx context.Context) ([]domain.Observer, error)
	UpdateLocation(ctx context.Context, identity, lat, lon string, reportedAt time.Time) error
	UpdateSubscription(ctx context.Context, identity string, subscribed bool) error
}
