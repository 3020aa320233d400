package mailer

import (
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"hafalanku_backend/internals/configs"
)

var (
	sgHost     = "https://api.sendgrid.com"
	sgEndpoint = "/v3/mail/send"
)

type sendgridMailer struct {
	key  string
	from *sgmail.Email
}

var _ Mailer = (*sendgridMailer)(nil)

// New memilih implementasi: SendGrid jika API key ada, kalau tidak fallback
// ke console (dev/test).
func New() Mailer {
	if configs.SendgridAPIKey == "" {
		return NewConsoleMailer()
	}
	return &sendgridMailer{
		key:  configs.SendgridAPIKey,
		from: sgmail.NewEmail(configs.EmailFromName, configs.EmailFrom),
	}
}

// Send kirim satu pesan secara async. Error hanya dicatat; pengirim tidak
// pernah tahu (dan tidak perlu tahu) hasil delivery.
func (m *sendgridMailer) Send(msg Message) {
	go func() {
		if msg.To == "" {
			return
		}

		p := sgmail.NewPersonalization()
		p.Subject = msg.Subject
		p.AddTos(sgmail.NewEmail(msg.ToName, msg.To))

		v3 := sgmail.NewV3Mail()
		v3.SetFrom(m.from)
		v3.AddPersonalizations(p)
		v3.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))

		req := sendgrid.GetRequest(m.key, sgEndpoint, sgHost)
		req.Method = http.MethodPost
		req.Body = sgmail.GetRequestBody(v3)

		res, err := sendgrid.API(req)
		if err != nil {
			log.Printf("[MAILER ERROR] kirim ke %s gagal: %v", msg.To, err)
		} else if res.StatusCode >= http.StatusBadRequest {
			log.Printf("[MAILER ERROR] kirim ke %s - status: %d - body: %s", msg.To, res.StatusCode, res.Body)
		}
	}()
}
