package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer sends plain-text mail. Delivery is a secondary channel: callers
// log failures and carry on, they never fail the primary operation on a
// mail error.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer implements Mailer over a plain SMTP relay
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer creates a new SMTPMailer. Username may be empty for an
// unauthenticated relay.
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: host + ":" + port,
		from: from,
		auth: auth,
	}
}

// Send delivers one message
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}
