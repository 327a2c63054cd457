// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendProfileSummary(toEmail, userName string, answers map[string]string) error
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

func (s *emailService) SendProfileSummary(toEmail, userName string, answers map[string]string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Learning Profile Is Ready")

	rows := ""
	for question, answer := range answers {
		rows += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border-bottom: 1px solid #eee; font-weight: bold;">%s</td>
				<td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
			</tr>
		`, html.EscapeString(question), html.EscapeString(answer))
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s, your learning profile is complete!</h2>
			<p>Here is a summary of what you told us:</p>
			<table style="border-collapse: collapse; width: 100%%;">%s</table>
			<p>You can now ask the assistant for a personalized learning path.</p>
		</div>
	`, html.EscapeString(userName), rows)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send profile summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Profile summary sent to %s\n", toEmail)
	return nil
}
