package service

import (
	"context"
	"time"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/repository/database"
)

// ObserverService fronts the observer directory for the update and
// query paths.
type ObserverService struct {
	repo database.ObserverDirectory
}

func NewObserverService(repo database.ObserverDirectory) *ObserverService {
	return &ObserverService{repo: repo}
}

func (s *ObserverService) SaveLocation(ctx context.Context, identity, lat, lon string, reportedAt time.Time) error {
	return s.repo.UpdateLocation(ctx, identity, lat, lon, reportedAt)
}

func (s *ObserverService) SetSubscription(ctx context.Context, identity string, subscribed bool) error {
	return s.repo.UpdateSubscription(ctx, identity, subscribed)
}

func (s *ObserverService) GetByIdentity(ctx context.Context, identity string) (*domain.Observer, error) {
	return s.repo.FindByIdentity(ctx, identity)
}

func (s *ObserverService) GetAll(ctx context.Context) ([]domain.Observer, error) {
	return s.repo.FindAll(ctx)
}
