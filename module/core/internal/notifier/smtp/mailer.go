package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/internal/notifier"
)

var _ notifier.Notifier = (*Mailer)(nil)

// Mailer delivers alerts as HTML mail over authenticated SMTP.
type Mailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: smtp.PlainAuth("", username, password, host),
	}
}

func (m *Mailer) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
