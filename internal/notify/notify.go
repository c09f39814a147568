package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// Confirmation is everything the booking confirmation email needs.
type Confirmation struct {
	To          string
	Customer    string
	Business    string
	ServiceName string
	Start       time.Time
	Location    *time.Location
}

type Sender interface {
	SendConfirmation(ctx context.Context, c Confirmation) error
}

type smtpSender struct {
	addr string
	from string
}

// NewSMTPSender sends confirmations through a plain SMTP relay.
func NewSMTPSender(host string, port int, from string) Sender {
	return &smtpSender{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
	}
}

func (s *smtpSender) SendConfirmation(_ context.Context, c Confirmation) error {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	when := c.Start.In(loc).Format("Monday, January 2, 2006 at 15:04")

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", c.To)
	fmt.Fprintf(&b, "Subject: Appointment confirmed with %s\r\n", c.Business)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", c.Customer)
	fmt.Fprintf(&b, "Your appointment for %s with %s is confirmed for %s.\r\n\r\n", c.ServiceName, c.Business, when)
	b.WriteString("See you there!\r\n")

	if err := smtp.SendMail(s.addr, nil, s.from, []string{c.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("send confirmation mail failed: %w", err)
	}
	return nil
}

type noopSender struct{}

// NewNoopSender is used when no SMTP relay is configured.
func NewNoopSender() Sender {
	return noopSender{}
}

func (noopSender) SendConfirmation(context.Context, Confirmation) error {
	return nil
}
