package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
)

type mockObserverRepo struct {
	findByIdentityFn     func(ctx context.Context, identity string) (*domain.Observer, error)
	findSubscribedFn     func(ctx context.Context) ([]domain.Observer, error)
	findAllFn            func(ctx context.Context) ([]domain.Observer, error)
	updateLocationFn     func(ctx context.Context, identity, lat, lon string, reportedAt time.Time) error
	updateSubscriptionFn func(ctx context.Context, identity string, subscribed bool) error
}

func (m *mockObserverRepo) FindByIdentity(ctx context.Context, identity string) (*domain.Observer, error) {
	return m.findByIdentityFn(ctx, identity)
}

func (m *mockObserverRepo) FindSubscribed(ctx context.Context) ([]domain.Observer, error) {
	return m.findSubscribedFn(ctx)
}

func (m *mockObserverRepo) FindAll(ctx context.Context) ([]domain.Observer, error) {
	return m.findAllFn(ctx)
}

func (m *mockObserverRepo) UpdateLocation(ctx context.Context, identity, lat, lon string, reportedAt time.Time) error {
	return m.updateLocationFn(ctx, identity, lat, lon, reportedAt)
}

func (m *mockObserverRepo) UpdateSubscription(ctx context.Context, identity string, subscribed bool) error {
	return m.updateSubscriptionFn(ctx, identity, subscribed)
}

func TestSaveLocation_Success(t *testing.T) {
	var gotIdentity, gotLat string
	repo := &mockObserverRepo{
		updateLocationFn: func(_ context.Context, identity, lat, _ string, _ time.Time) error {
			gotIdentity, gotLat = identity, lat
			return nil
		},
	}

	svc := NewObserverService(repo)
	err := svc.SaveLocation(context.Background(), "a@x.com", "12.98", "77.60", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotIdentity != "a@x.com" || gotLat != "12.98" {
		t.Errorf("unexpected arguments %s %s", gotIdentity, gotLat)
	}
}

func TestSaveLocation_RepoError(t *testing.T) {
	repo := &mockObserverRepo{
		updateLocationFn: func(_ context.Context, _, _, _ string, _ time.Time) error {
			return errors.New("db error")
		},
	}

	svc := NewObserverService(repo)
	err := svc.SaveLocation(context.Background(), "a@x.com", "12.98", "77.60", time.Now())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetByIdentity(t *testing.T) {
	repo := &mockObserverRepo{
		findByIdentityFn: func(_ context.Context, identity string) (*domain.Observer, error) {
			return &domain.Observer{Identity: identity, Subscribed: true}, nil
		},
	}

	svc := NewObserverService(repo)
	obs, err := svc.GetByIdentity(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.Identity != "a@x.com" {
		t.Errorf("expected a@x.com, got %s", obs.Identity)
	}
}

func TestSetSubscription(t *testing.T) {
	var gotSubscribed bool
	repo := &mockObserverRepo{
		updateSubscriptionFn: func(_ context.Context, _ string, subscribed bool) error {
			gotSubscribed = subscribed
			return nil
		},
	}

	svc := NewObserverService(repo)
	if err := svc.SetSubscription(context.Background(), "a@x.com", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotSubscribed {
		t.Error("expected subscribed=true")
	}
}
