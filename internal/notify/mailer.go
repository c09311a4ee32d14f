// Package notify sends best-effort notification mail. Delivery failures
// are logged and never surface to HTTP responses.
package notify

import (
	"fmt"

	"ngo_portal/config"
	"ngo_portal/internal/logger"

	"gopkg.in/gomail.v2"
)

// Mailer wraps an SMTP dialer. A nil Mailer (or one built from an empty
// SMTP host) silently drops every send, so callers never branch.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

// NewMailer builds a mailer from the server configuration. Returns nil
// when SMTP is not configured.
func NewMailer(cfg *config.Configuration) *Mailer {
	if cfg == nil || cfg.SMTP_Host == "" {
		return nil
	}
	return &Mailer{
		host:     cfg.SMTP_Host,
		port:     cfg.SMTP_Port,
		user:     cfg.SMTP_User,
		password: cfg.SMTP_Password,
		from:     cfg.SMTP_From,
	}
}

// SendAsync delivers one HTML mail in the background.
func (m *Mailer) SendAsync(to, subject, htmlBody string) {
	if m == nil || to == "" {
		return
	}
	go func() {
		if err := m.send(to, subject, htmlBody); err != nil {
			logger.GetAppLogger().WithError(err).
				WithField("to", to).Warn("Notification mail failed")
		}
	}()
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return dialer.DialAndSend(msg)
}

// SendDonationReceipt acknowledges a donation with its receipt number.
func (m *Mailer) SendDonationReceipt(to, donorName, receiptNumber string, amount float64, currency string) {
	subject := fmt.Sprintf("Donation receipt %s", receiptNumber)
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Thank you for your generous donation of %.2f %s.</p>
<p>Your receipt number is <b>%s</b>. Please keep it for your records.</p>
<p>Seva Sankalp Foundation</p>`,
		donorName, amount, currency, receiptNumber)
	m.SendAsync(to, subject, body)
}

// SendVolunteerApproval tells an applicant their application was approved.
func (m *Mailer) SendVolunteerApproval(to, name string) {
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Your volunteer application has been approved. Our team will reach out with next steps.</p>
<p>Seva Sankalp Foundation</p>`,
		name)
	m.SendAsync(to, "Volunteer application approved", body)
}
