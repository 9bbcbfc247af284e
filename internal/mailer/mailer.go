package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/slmontgomery/bugtracking/internal/config"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
)

// Mailer delivers invitation emails. The core treats delivery as a
// blocking call; failures are logged, never propagated as request errors.
type Mailer interface {
	SendInvitation(inv *team.Invitation, t *team.Team, inviterName string, resent bool) error
}

// New picks the delivery backend from configuration: SMTP when a host is
// configured, the log backend otherwise.
func New() Mailer {
	if config.SmtpHost == "" {
		return NewLogMailer()
	}
	return NewSMTPMailer()
}

type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) SendInvitation(inv *team.Invitation, t *team.Team, inviterName string, resent bool) error {
	subject := fmt.Sprintf("Invitation to join %s", t.Title)
	link := fmt.Sprintf("%s/teams/%s/accept-invitation?invitation=%s", config.BaseURL, t.Slug, inv.ID)

	html := fmt.Sprintf(
		`<p>%s has invited you to join the team <strong>%s</strong>.</p>`+
			`<p>%s</p>`+
			`<p><a href="%s">Accept the invitation</a></p>`,
		inviterName, t.Title, inv.Message, link,
	)
	if resent {
		html += `<p>This invitation email was resent at the inviter's request.</p>`
	}

	msg := "From: " + config.SmtpFrom + "\r\n" +
		"To: " + inv.InviteeEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		html

	addr := config.SmtpHost + ":" + config.SmtpPort

	var auth smtp.Auth
	if config.SmtpUser != "" {
		auth = smtp.PlainAuth("", config.SmtpUser, config.SmtpPass, config.SmtpHost)
	}

	if err := smtp.SendMail(addr, auth, config.SmtpFrom, []string{inv.InviteeEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// LogMailer is the delivery backend when no SMTP host is configured;
// invitations still resolve, the email just lands in the log.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendInvitation(inv *team.Invitation, t *team.Team, inviterName string, resent bool) error {
	log.Printf("invitation email to %s for team %s (resent=%v)", inv.InviteeEmail, t.Slug, resent)
	return nil
}
