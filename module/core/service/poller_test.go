package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
)

type mockFeed struct {
	fetchFn func(ctx context.Context) (*domain.Reading, error)
	fetches int32
}

func (m *mockFeed) Fetch(ctx context.Context) (*domain.Reading, error) {
	atomic.AddInt32(&m.fetches, 1)
	return m.fetchFn(ctx)
}

type mockDispatcher struct {
	dispatched chan *domain.Reading
}

func newMockDispatcher() *mockDispatcher {
	return &mockDispatcher{dispatched: make(chan *domain.Reading, 16)}
}

func (m *mockDispatcher) Dispatch(_ context.Context, reading *domain.Reading, _ []domain.Channel) {
	m.dispatched <- reading
}

func TestRun_FirstCycleIsImmediate(t *testing.T) {
	fetched := make(chan struct{}, 1)
	feed := &mockFeed{
		fetchFn: func(_ context.Context) (*domain.Reading, error) {
			select {
			case fetched <- struct{}{}:
			default:
			}
			return &domain.Reading{ChannelA: 100, ChannelB: 100}, nil
		},
	}
	disp := newMockDispatcher()

	p := NewPoller(feed, NewThresholdEvaluator(750, 1500), disp, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	select {
	case <-fetched:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate first fetch")
	}
}

func TestRun_BreachTriggersDispatch(t *testing.T) {
	feed := &mockFeed{
		fetchFn: func(_ context.Context) (*domain.Reading, error) {
			return &domain.Reading{ChannelA: 800, ChannelB: 1600}, nil
		},
	}
	disp := newMockDispatcher()

	p := NewPoller(feed, NewThresholdEvaluator(750, 1500), disp, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	select {
	case reading := <-disp.dispatched:
		if reading.ChannelA != 800 || reading.ChannelB != 1600 {
			t.Errorf("unexpected reading %+v", reading)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a dispatch")
	}
}

func TestRun_NoBreachNoDispatch(t *testing.T) {
	feed := &mockFeed{
		fetchFn: func(_ context.Context) (*domain.Reading, error) {
			return &domain.Reading{ChannelA: 100, ChannelB: 100}, nil
		},
	}
	disp := newMockDispatcher()

	p := NewPoller(feed, NewThresholdEvaluator(750, 1500), disp, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	select {
	case <-disp.dispatched:
		t.Fatal("expected no dispatch")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRun_FetchFailureIsNotFatal(t *testing.T) {
	feed := &mockFeed{
		fetchFn: func(_ context.Context) (*domain.Reading, error) {
			return nil, errors.New("network error")
		},
	}
	disp := newMockDispatcher()

	p := NewPoller(feed, NewThresholdEvaluator(750, 1500), disp, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	// the loop must keep polling after failures
	deadline := time.After(time.Second)
	for atomic.LoadInt32(&feed.fetches) < 2 {
		select {
		case <-deadline:
			t.Fatal("expected the poller to keep fetching after a failure")
		case <-time.After(5 * time.Millisecond):
		}
	}

	select {
	case <-disp.dispatched:
		t.Fatal("expected no dispatch on fetch failure")
	default:
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	feed := &mockFeed{
		fetchFn: func(_ context.Context) (*domain.Reading, error) {
			return &domain.Reading{}, nil
		},
	}
	disp := newMockDispatcher()

	p := NewPoller(feed, NewThresholdEvaluator(750, 1500), disp, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return after cancel")
	}

	count := atomic.LoadInt32(&feed.fetches)
	time.Sleep(30 * time.Millisecond)
	if atomic.LoadInt32(&feed.fetches) != count {
		t.Error("expected no fetches after Run returned")
	}
}
