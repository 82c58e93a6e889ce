// Package mailer delivers the contact-form notification email. Delivery
// is best-effort by contract: every failure mode resolves to false after
// logging, and nothing propagates to the caller.
package mailer

import (
	"fmt"
	"log/slog"
	"strings"

	mail "github.com/wneessen/go-mail"

	"github.com/kartiksharma/portfolio/models"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 465
)

type Mailer struct {
	user     string
	password string
	log      *slog.Logger
}

func New(user, password string, log *slog.Logger) *Mailer {
	return &Mailer{user: user, password: password, log: log}
}

// Send emails the submitted contact message to the site operator. It
// reports whether delivery succeeded; the message itself is already
// persisted before this runs.
func (m *Mailer) Send(message models.ContactMessageInput) bool {
	if m.user == "" || m.password == "" {
		m.log.Warn("Email credentials not configured, skipping email send")
		return false
	}

	msg := mail.NewMsg()
	if err := msg.From(m.user); err != nil {
		m.log.Error("Invalid sender address", slog.String("error", err.Error()))
		return false
	}
	if err := msg.To(m.user); err != nil {
		m.log.Error("Invalid recipient address", slog.String("error", err.Error()))
		return false
	}
	if err := msg.ReplyTo(message.Email); err != nil {
		m.log.Error("Invalid reply-to address", slog.String("error", err.Error()))
		return false
	}

	msg.Subject(fmt.Sprintf("Portfolio Contact: Message from %s", message.Name))
	msg.SetBodyString(mail.TypeTextHTML, contactBody(message))

	client, err := mail.NewClient(smtpHost,
		mail.WithPort(smtpPort),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
	)
	if err != nil {
		m.log.Error("Failed to build SMTP client", slog.String("error", err.Error()))
		return false
	}

	if err := client.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send contact email", slog.String("error", err.Error()))
		return false
	}

	m.log.Info("Contact email sent successfully")
	return true
}

func contactBody(message models.ContactMessageInput) string {
	body := strings.ReplaceAll(message.Message, "\n", "<br>")
	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Reply directly to: %s</small></p>`,
		message.Name, message.Email, body, message.Email)
}
