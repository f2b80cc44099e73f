package core

import (
	"context"
	"database/sql"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/D-J-M-Rohit/Air-Pro/config"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/feed"
	handler "github.com/D-J-M-Rohit/Air-Pro/module/core/internal/handler/http"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/handler/subscriber"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/notifier"
	smtpnotifier "github.com/D-J-M-Rohit/Air-Pro/module/core/internal/notifier/smtp"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/repository/database/postgres"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/repository/publisher/rabbitmq"
	"github.com/D-J-M-Rohit/Air-Pro/module/core/service"
)

type Module struct {
	ObserverSvc *service.ObserverService
	AlertSvc    *service.AlertService
	poller      *service.Poller
	handler     *handler.ObserverHandler
	subscriber  *subscriber.LocationSubscriber
}

func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, cfg *config.Config, log *zap.Logger) (*Module, error) {
	directory := postgres.NewObserverRepo(db)

	alertPub, err := rabbitmq.NewAlertPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("alert publisher: %w", err)
	}

	// Real mail delivery only when SMTP is configured; otherwise
	// alerts are composed and logged.
	var sink notifier.Notifier
	if cfg.SMTPHost != "" {
		sink = smtpnotifier.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.AlertFrom)
	} else {
		sink = notifier.NewLogNotifier(log)
	}

	observerSvc := service.NewObserverService(directory)
	filter := service.NewEligibilityFilter(cfg.MaxDistanceKm, cfg.MaxTimeMinutes)
	alertSvc := service.NewAlertService(directory, sink, alertPub, filter, cfg.AdminIdentity, log)
	evaluator := service.NewThresholdEvaluator(cfg.ChannelAThreshold, cfg.ChannelBThreshold)
	poller := service.NewPoller(feed.NewClient(cfg.FeedURL), evaluator, alertSvc, cfg.PollInterval, log)

	h := handler.NewObserverHandler(observerSvc, validator.New())
	sub := subscriber.NewLocationSubscriber(mqttClient, observerSvc, log)

	return &Module{
		ObserverSvc: observerSvc,
		AlertSvc:    alertSvc,
		poller:      poller,
		handler:     h,
		subscriber:  sub,
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.handler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}

// StartPoller launches the poll loop; it runs until ctx is cancelled.
func (m *Module) StartPoller(ctx context.Context) {
	go m.poller.Run(ctx)
}
