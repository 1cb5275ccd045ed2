package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type MailNotifier struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger logger.Logger
}

// NewMailNotifier builds an SMTP notifier. An empty host disables sending,
// notifications are then logged and dropped.
func NewMailNotifier(host string, port int, from, password string, logger logger.Logger) *MailNotifier {
	n := &MailNotifier{from: from, logger: logger}
	if host == "" {
		logger.Warn("smtp host is empty, notifications disabled")
		return n
	}

	n.addr = fmt.Sprintf("%s:%d", host, port)
	n.auth = smtp.PlainAuth("", from, password, host)
	return n
}

func (n *MailNotifier) NotifyRegistrationApproved(ctx context.Context, student *domain.Student, event *domain.Event) {
	subject := "Your event registration was approved"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour registration for \"%s\" has been approved.\nThe event starts at %s.\n\nSee you there!",
		student.Fullname, event.Name, event.StartAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, student.Email, subject, body)
}

func (n *MailNotifier) NotifyRegistrationRejected(ctx context.Context, student *domain.Student, event *domain.Event, reason string) {
	subject := "Your event registration was rejected"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour registration for \"%s\" has been rejected.\nReason: %s",
		student.Fullname, event.Name, reason,
	)
	n.send(ctx, student.Email, subject, body)
}

func (n *MailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.addr == "" {
		n.logger.Debug("notification skipped (mailer disabled)", logger.String("subject", subject))
		return
	}

	if to == "" {
		n.logger.Debug("notification skipped (no email)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("to", to))
		return
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", n.from, to, subject, body)

	if err := smtp.SendMail(n.addr, n.auth, n.from, []string{to}, []byte(msg)); err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("email notification sent", logger.String("to", to))
}
