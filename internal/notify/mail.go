package notify

import (
	"bytes"
	"context"
	"html/template"
	"sync"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"

	"github.com/artesyoficios/studio/internal/booking"
	"github.com/artesyoficios/studio/internal/config"
)

const smtpsPort = 465

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family:Arial,sans-serif;line-height:1.5;color:#222">
  <h2>¡Reserva confirmada!</h2>
  <p>Hola {{.Name}}, tu reserva está confirmada.</p>
  <p><strong>Taller:</strong> {{.Workshop}}</p>
  <p><strong>Fecha:</strong> {{.Date}}</p>
  <p><strong>Ubicación:</strong> {{.Location}}</p>
  {{- if .MapLink}}
  <p><a href="{{.MapLink}}">Cómo llegar</a></p>
  {{- end}}
  <p>Gracias por ser parte de {{.Studio}}.</p>
</div>
`))

// Subject is the subject line of the confirmation email.
func Subject(c booking.Confirmation) string {
	return "Tu reserva está confirmada: " + c.Workshop.Title
}

// RenderHTML renders the confirmation email body.
func RenderHTML(studio string, c booking.Confirmation) (string, error) {
	var buf bytes.Buffer

	err := confirmationTmpl.Execute(&buf, struct {
		Name, Workshop, Date, Location, Studio, MapLink string
	}{
		Name:     c.Reservation.Name,
		Workshop: c.Workshop.Title,
		Date:     c.Date(),
		Location: c.Location(),
		Studio:   studio,
		MapLink:  c.MapLink(),
	})
	if err != nil {
		return "", errors.Wrap(err, "render confirmation")
	}

	return buf.String(), nil
}

// Mailer sends confirmations by SMTP.
type Mailer struct {
	client *mail.Client
	from   string
	studio string

	// the client keeps per-connection state
	mu sync.Mutex
}

// NewMailer builds a Mailer. No connection is made until the first delivery.
func NewMailer(cfg config.Mail, studio string) (*Mailer, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}

	if cfg.Port == smtpsPort {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	}

	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "smtp client")
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &Mailer{client: client, from: from, studio: studio}, nil
}

// Message builds the confirmation email.
func (m *Mailer) Message(c booking.Confirmation) (*mail.Msg, error) {
	if c.Reservation.Email == "" {
		return nil, errNoRecipient
	}

	body, err := RenderHTML(m.studio, c)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()

	if err := msg.From(m.from); err != nil {
		return nil, errors.Wrap(err, "sender")
	}

	if err := msg.To(c.Reservation.Email); err != nil {
		return nil, errors.Wrap(err, "recipient")
	}

	msg.Subject(Subject(c))
	msg.SetBodyString(mail.TypeTextHTML, body)

	return msg, nil
}

// Notify implements booking.Notifier.
func (m *Mailer) Notify(ctx context.Context, c booking.Confirmation) error {
	msg, err := m.Message(c)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	return nil
}
