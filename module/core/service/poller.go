package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
)

type feedClient interface {
	Fetch(ctx context.Context) (*domain.Reading, error)
}

type alertDispatcher interface {
	Dispatch(ctx context.Context, reading *domain.Reading, breached []domain.Channel)
}

// Poller drives the poll/evaluate/dispatch cycle on a fixed interval.
type Poller struct {
	feed      feedClient
	evaluator *ThresholdEvaluator
	alerts    alertDispatcher
	interval  time.Duration
	log       *zap.Logger
}

func NewPoller(feed feedClient, evaluator *ThresholdEvaluator, alerts alertDispatcher, interval time.Duration, log *zap.Logger) *Poller {
	return &Poller{
		feed:      feed,
		evaluator: evaluator,
		alerts:    alerts,
		interval:  interval,
		log:       log,
	}
}

// Run executes one cycle immediately and then one per interval until
// the context is cancelled. The timer is re-armed only after the
// previous cycle has settled, so at most one cycle is ever in flight.
func (p *Poller) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			p.cycle(ctx)
			timer.Reset(p.interval)
		}
	}
}

// cycle never fails: a fetch error is a no-breach cycle and dispatch
// contains its own failures.
func (p *Poller) cycle(ctx context.Context) {
	reading, err := p.feed.Fetch(ctx)
	if err != nil {
		p.log.Warn("fetch reading", zap.Error(err))
		return
	}

	p.log.Info("reading received",
		zap.Float64("channel_a", reading.ChannelA),
		zap.Float64("channel_b", reading.ChannelB))

	breached := p.evaluator.Evaluate(reading)
	if len(breached) == 0 {
		return
	}

	p.alerts.Dispatch(ctx, reading, breached)
}
