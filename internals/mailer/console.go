package mailer

import "log"

// consoleMailer: fallback saat SENDGRID_API_KEY kosong. Dipakai juga di test.
type consoleMailer struct{}

var _ Mailer = (*consoleMailer)(nil)

func NewConsoleMailer() Mailer {
	return &consoleMailer{}
}

func (consoleMailer) Send(msg Message) {
	log.Printf("[MAILER] (console) to=%s subject=%q", msg.To, msg.Subject)
}
