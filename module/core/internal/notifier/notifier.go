// Package notifier defines the outbound notification collaborator and
// its non-delivering default.
package notifier

import (
	"context"

	"go.uber.org/zap"
)

type Notifier interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

// LogNotifier records composed alerts without delivering them. It is
// the default sink when no SMTP host is configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, recipient, subject, _ string) error {
	n.log.Info("alert composed",
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}
