package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/config"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/mail.v2"
)

// Notifier tells the shop owner about new enquiries.
type Notifier interface {
	ContactReceived(ctx context.Context, msg models.ContactMessage) error
}

type Noop struct{}

func (Noop) ContactReceived(context.Context, models.ContactMessage) error { return nil }

type sender interface {
	DialAndSend(m ...*mail.Message) error
}

type SMTPNotifier struct {
	sender sender
	from   string
	to     string
}

// New returns an SMTP notifier, or a no-op one when SMTP is not configured.
func New(cfg config.SMTPConfig) Notifier {
	if cfg.Host == "" || cfg.NotifyTo == "" {
		logrus.Info("SMTP not configured, contact notifications disabled")
		return Noop{}
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.Timeout = 15 * time.Second
	return &SMTPNotifier{sender: dialer, from: from, to: cfg.NotifyTo}
}

func (n *SMTPNotifier) ContactReceived(ctx context.Context, msg models.ContactMessage) error {
	m := contactEmail(n.from, n.to, msg)

	done := make(chan error, 1)
	go func() { done <- n.sender.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send contact notification: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func contactEmail(from, to string, msg models.ContactMessage) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("New enquiry from %s", msg.Name))
	m.SetBody("text/plain", contactBody(msg))
	return m
}

func contactBody(msg models.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	}
	fmt.Fprintf(&b, "\n%s\n", msg.Message)
	return b.String()
}
