package publisher

import (
	"context"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
)

type AlertPublisher interface {
	PublishAlert(ctx context.Context, event *domain.AlertEvent) error
}
