package mailer

import "gopkg.in/gomail.v2"

// Dialer abstracts the SMTP dial-and-send step.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends plain-text mail over SMTP.
type Mailer struct {
	dialer Dialer
	from   string
}

// New creates a Mailer for the given SMTP endpoint.
func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// NewWithDialer creates a Mailer with a custom dialer.
func NewWithDialer(dialer Dialer, from string) *Mailer {
	return &Mailer{dialer: dialer, from: from}
}

// Send delivers a plain-text message to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
