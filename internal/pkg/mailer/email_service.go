// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendDueReminder(toEmail, text, date, timeOfDay string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendDueReminder(toEmail, text, date, timeOfDay string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Reminder: %s", text))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>⏰ Reminder</h2>
			<p><strong>%s</strong></p>
			<p>Scheduled for %s at %s.</p>
			<p>You asked LifeMind to remind you about this.</p>
		</div>
	`, text, date, timeOfDay)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send reminder to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Reminder sent to %s\n", toEmail)
	return nil
}
