// Package mailer отправляет письма с QR-кодами.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message письмо для отправки.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Sender доставляет письмо или возвращает ошибку доставки.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// dialer часть gomail.Dialer, нужная SMTPSender.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender отправляет письма через SMTP (gomail).
type SMTPSender struct {
	from   string
	dialer dialer
}

// NewSMTPSender создаёт отправителя с авторизацией user/pass на host:port.
func NewSMTPSender(host string, port int, user, pass string) *SMTPSender {
	return &SMTPSender{from: user, dialer: gomail.NewDialer(host, port, user, pass)}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// LogSender ничего не отправляет, только пишет письмо в лог.
// Используется, когда SMTP не настроен.
type LogSender struct {
	Logger *zap.SugaredLogger
}

func (s LogSender) Send(_ context.Context, msg Message) error {
	s.Logger.Infow("mail not configured, message logged instead",
		"to", msg.To,
		"subject", msg.Subject,
		"body_size", len(msg.HTMLBody),
	)
	return nil
}

const sharedSubject = "Shared QR Code"

var sharedTmpl = template.Must(template.New("shared").Parse(`<h2>QR Code Shared with You</h2>
<p>Here is the QR code that was shared with you:</p>
<img src="{{.Image}}" alt="QR Code" />
<p>Text content: {{.Text}}</p>
`))

// SharedQRMessage собирает письмо с встроенным изображением и подписью.
// Текст экранируется; src принимается только как data URI изображения.
func SharedQRMessage(to, imageURL, text string) (Message, error) {
	if !strings.HasPrefix(imageURL, "data:image/") {
		return Message{}, fmt.Errorf("image must be a data uri")
	}
	var buf bytes.Buffer
	err := sharedTmpl.Execute(&buf, struct {
		Image template.URL
		Text  string
	}{Image: template.URL(imageURL), Text: text})
	if err != nil {
		return Message{}, fmt.Errorf("render shared qr body: %w", err)
	}
	return Message{To: to, Subject: sharedSubject, HTMLBody: buf.String()}, nil
}
