package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const topicPattern = "/airpro/observer/+/location"

type observerService interface {
	SaveLocation(ctx context.Context, identity, lat, lon string, reportedAt time.Time) error
}

type locationMessage struct {
	Identity  string  `json:"identity"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// LocationSubscriber writes observer location reports arriving over
// MQTT into the directory.
type LocationSubscriber struct {
	client      mqtt.Client
	observerSvc observerService
	log         *zap.Logger
}

func NewLocationSubscriber(client mqtt.Client, observerSvc observerService, log *zap.Logger) *LocationSubscriber {
	return &LocationSubscriber{
		client:      client,
		observerSvc: observerSvc,
		log:         log,
	}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		s.log.Warn("invalid location message", zap.Error(err))
		return
	}

	if err := validateLocationMessage(&raw); err != nil {
		s.log.Warn("location message rejected", zap.Error(err))
		return
	}

	lat := strconv.FormatFloat(raw.Latitude, 'f', -1, 64)
	lon := strconv.FormatFloat(raw.Longitude, 'f', -1, 64)
	reportedAt := time.Unix(raw.Timestamp, 0)

	if err := s.observerSvc.SaveLocation(context.Background(), raw.Identity, lat, lon, reportedAt); err != nil {
		s.log.Error("save observer location",
			zap.String("identity", raw.Identity),
			zap.Error(err))
	}
}

func validateLocationMessage(msg *locationMessage) error {
	if msg.Identity == "" {
		return fmt.Errorf("identity: required")
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
