package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/notifier"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/repository/database"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/repository/publisher"
)

const alertSubject = "Air Quality Alert"

// AlertService fans a breached reading out to every eligible
// subscribed observer. All failures are contained: a bad record, a
// failed send or a failed event publish is logged and the batch moves
// on to the next observer.
type AlertService struct {
	directory     database.ObserverDirectory
	notifier      notifier.Notifier
	publisher     publisher.AlertPublisher
	filter        *EligibilityFilter
	adminIdentity string
	log           *zap.Logger
}

func NewAlertService(
	directory database.ObserverDirectory,
	sink notifier.Notifier,
	pub publisher.AlertPublisher,
	filter *EligibilityFilter,
	adminIdentity string,
	log *zap.Logger,
) *AlertService {
	return &AlertService{
		directory:     directory,
		notifier:      sink,
		publisher:     pub,
		filter:        filter,
		adminIdentity: adminIdentity,
		log:           log,
	}
}

// Dispatch loads the anchor observer, filters all subscribed
// observers against it and sends one notification per eligible
// observer. A missing or unusable anchor aborts this dispatch only.
func (s *AlertService) Dispatch(ctx context.Context, reading *domain.Reading, breached []domain.Channel) {
	anchor, err := s.directory.FindByIdentity(ctx, s.adminIdentity)
	if err != nil {
		s.log.Error("load anchor observer", zap.Error(err))
		return
	}
	if anchor == nil {
		s.log.Error("anchor observer not found", zap.String("identity", s.adminIdentity))
		return
	}
	if !anchor.HasPosition() {
		s.log.Error("anchor observer has no usable position", zap.String("identity", s.adminIdentity))
		return
	}

	observers, err := s.directory.FindSubscribed(ctx)
	if err != nil {
		s.log.Error("list subscribed observers", zap.Error(err))
		return
	}

	for i := range observers {
		s.notifyObserver(ctx, anchor, &observers[i], reading, breached)
	}
}

func (s *AlertService) notifyObserver(ctx context.Context, anchor, candidate *domain.Observer, reading *domain.Reading, breached []domain.Channel) {
	elig := s.filter.Check(anchor, candidate)
	if !elig.Eligible {
		s.log.Debug("observer not eligible",
			zap.String("identity", candidate.Identity),
			zap.Float64("distance_km", elig.DistanceKm),
			zap.Float64("elapsed_minutes", elig.ElapsedMinutes))
		return
	}

	// A computed distance of exactly 0 reads as "0 km away" in the
	// alert text; report it as 1 instead. Eligibility already passed
	// on the real value.
	dist := elig.DistanceKm
	if dist == 0 {
		dist = 1
	}

	n := &domain.Notification{
		Recipient:      *candidate.Email,
		ChannelA:       reading.ChannelA,
		ChannelB:       reading.ChannelB,
		DistanceKm:     dist,
		ElapsedMinutes: elig.ElapsedMinutes,
	}

	if err := s.notifier.Send(ctx, n.Recipient, alertSubject, renderAlertBody(n)); err != nil {
		s.log.Error("send alert",
			zap.String("recipient", n.Recipient),
			zap.Error(err))
	} else {
		s.log.Info("alert dispatched",
			zap.String("recipient", n.Recipient),
			zap.Float64("distance_km", n.DistanceKm),
			zap.Float64("elapsed_minutes", n.ElapsedMinutes))
	}

	event := &domain.AlertEvent{
		Recipient:      n.Recipient,
		Channels:       breached,
		ChannelA:       n.ChannelA,
		ChannelB:       n.ChannelB,
		DistanceKm:     n.DistanceKm,
		ElapsedMinutes: n.ElapsedMinutes,
		Timestamp:      time.Now().Unix(),
	}
	if err := s.publisher.PublishAlert(ctx, event); err != nil {
		s.log.Error("publish alert event",
			zap.String("recipient", n.Recipient),
			zap.Error(err))
	}
}

func renderAlertBody(n *domain.Notification) string {
	return fmt.Sprintf(`<h1>Air Quality Alert</h1>
<p>AQI (%v) and MQ3 (%v) levels around you within %vkm, within %.2f minutes.</p>
<p>Air pollution exceeds the threshold. Please take necessary precautions.</p>`,
		n.ChannelA, n.ChannelB, n.DistanceKm, n.ElapsedMinutes)
}
