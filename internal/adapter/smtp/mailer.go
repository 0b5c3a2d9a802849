package smtp

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// Compile-time check: Mailer implements domain.Notifier.
var _ domain.Notifier = (*Mailer)(nil)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends outcome emails over SMTP. It is the delivery end of the
// notification pipeline; the request path only ever talks to the queue.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates a mailer from SMTP settings.
func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) SendApprovalNotice(ctx context.Context, n domain.ApprovalNotice) error {
	return m.send(ctx, n.Email,
		"Your vendor application has been approved",
		approvalBody(n))
}

func (m *Mailer) SendDeclineNotice(ctx context.Context, n domain.DeclineNotice) error {
	return m.send(ctx, n.Email,
		"Update on your vendor application",
		declineBody(n))
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}

func approvalBody(n domain.ApprovalNotice) string {
	return fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
  <h2>Congratulations, %s!</h2>
  <p>Your application for <strong>%s</strong> has been approved.
  Your vendor account is now active and you can start listing products.</p>
  <p>Sign in to your dashboard to set up your storefront.</p>
  <p>— The Marketplace Team</p>
</div>`, html.EscapeString(n.Username), html.EscapeString(n.BusinessName))
}

func declineBody(n domain.DeclineNotice) string {
	reason := ""
	if n.Reason != "" {
		reason = fmt.Sprintf(`<p><strong>Reason:</strong> %s</p>`, html.EscapeString(n.Reason))
	}
	return fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
  <h2>Hello %s,</h2>
  <p>After reviewing your application for <strong>%s</strong>, we are
  unable to approve it at this time.</p>
  %s
  <p>You are welcome to address the issues above and apply again.</p>
  <p>— The Marketplace Team</p>
</div>`, html.EscapeString(n.Username), html.EscapeString(n.BusinessName), reason)
}
