package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type IEmailService interface {
	SendContactMessage(msg *model.ContactMessage) error
}

type emailService struct {
	dialer       *gomail.Dialer
	senderEmail  string
	supportEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail, supportEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:       d,
		senderEmail:  senderEmail,
		supportEmail: supportEmail,
	}
}

// SendContactMessage forwards a contact-form submission to the support inbox.
func (s *emailService) SendContactMessage(msg *model.ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.supportEmail)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", msg.Subject))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New contact message</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p><strong>Subject:</strong> %s</p>
			<hr/>
			<p>%s</p>
		</div>
	`, html.EscapeString(msg.Name), html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject), html.EscapeString(msg.Body))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}
