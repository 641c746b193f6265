package utils

import "gopkg.in/gomail.v2"

// SMTPSettings carries the dialer credentials for SendEmail.
type SMTPSettings struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func NewHTMLMessage(from, to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return m
}

func SendEmail(message *gomail.Message, settings SMTPSettings) error {
	d := gomail.NewDialer(settings.Host, settings.Port, settings.Sender, settings.Password)

	return d.DialAndSend(message)
}
