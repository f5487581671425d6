package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/config"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type fakeSender struct {
	sent  []*mail.Message
	err   error
	delay time.Duration
}

func (f *fakeSender) DialAndSend(m ...*mail.Message) error {
	time.Sleep(f.delay)
	f.sent = append(f.sent, m...)
	return f.err
}

var enquiry = models.ContactMessage{
	Name:    "Asha",
	Email:   "asha@example.com",
	Phone:   "98765 43210",
	Message: "Is the kundan set available in silver?",
}

func TestNewWithoutHostIsNoop(t *testing.T) {
	n := New(config.SMTPConfig{NotifyTo: "owner@example.com"})
	assert.IsType(t, Noop{}, n)
	assert.NoError(t, n.ContactReceived(context.Background(), enquiry))
}

func TestNewWithHost(t *testing.T) {
	n := New(config.SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "shop@example.com", NotifyTo: "owner@example.com"})
	smtp, ok := n.(*SMTPNotifier)
	require.True(t, ok)
	assert.Equal(t, "shop@example.com", smtp.from)
}

func TestContactReceivedSendsEmail(t *testing.T) {
	s := &fakeSender{}
	n := &SMTPNotifier{sender: s, from: "shop@example.com", to: "owner@example.com"}

	require.NoError(t, n.ContactReceived(context.Background(), enquiry))
	require.Len(t, s.sent, 1)

	m := s.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"asha@example.com"}, m.GetHeader("Reply-To"))
	assert.Equal(t, []string{"New enquiry from Asha"}, m.GetHeader("Subject"))
}

func TestContactReceivedWrapsSendError(t *testing.T) {
	n := &SMTPNotifier{sender: &fakeSender{err: errors.New("auth failed")}}
	err := n.ContactReceived(context.Background(), enquiry)
	assert.ErrorContains(t, err, "auth failed")
}

func TestContactReceivedHonoursContext(t *testing.T) {
	n := &SMTPNotifier{sender: &fakeSender{delay: time.Second}}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := n.ContactReceived(ctx, enquiry)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestContactBody(t *testing.T) {
	body := contactBody(enquiry)
	assert.Contains(t, body, "Name: Asha\n")
	assert.Contains(t, body, "Phone: 98765 43210\n")
	assert.Contains(t, body, "kundan set")

	noPhone := enquiry
	noPhone.Phone = ""
	assert.NotContains(t, contactBody(noPhone), "Phone:")
}
