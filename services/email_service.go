package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"github.com/muskiz/beach-handball/config"
	"github.com/muskiz/beach-handball/models"
)

// Notifier сообщает организаторам о событиях регистрации.
type Notifier interface {
	TeamRegistered(ctx context.Context, team models.Team) error
}

const teamRegisteredTemplate = `<h2>Nuevo equipo inscrito</h2>
<p><strong>{{.Team.Name}}</strong> ({{.Team.City}}) se ha inscrito en la categoría <strong>{{.Team.Division}}</strong>.</p>
<p>Cuota: {{.Team.Fee}} € - estado del pago: {{.Team.PaymentStatus}}</p>
<p>Jugadores inscritos: {{len .Team.Players}}</p>
{{if .AdminURL}}<p><a href="{{.AdminURL}}">Abrir panel de administración</a></p>{{end}}`

var teamRegisteredTmpl = template.Must(template.New("team_registered").Parse(teamRegisteredTemplate))

type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// NewNotifier возвращает отправку по SMTP, если она настроена, иначе только логирует.
func NewNotifier(cfg *config.Config, logger *slog.Logger) Notifier {
	if cfg != nil && cfg.SMTPEnabled() {
		return NewEmailService(cfg)
	}
	return &logNotifier{logger: logger}
}

func (s *EmailService) TeamRegistered(ctx context.Context, team models.Team) error {
	data := struct {
		Team     models.Team
		AdminURL string
	}{Team: team}
	if s.cfg.PublicURL != "" {
		data.AdminURL = s.cfg.PublicURL + "/admin"
	}

	var body bytes.Buffer
	if err := teamRegisteredTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("ошибка выполнения шаблона письма: %w", err)
	}
	subject := fmt.Sprintf("Nuevo equipo: %s (%s)", team.Name, team.Division)
	return s.SendEmail(ctx, s.cfg.NotifyTo, subject, body.String())
}

func (s *EmailService) SendEmail(ctx context.Context, to []string, subject string, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}
	msg := []byte("To: " + strings.Join(to, ", ") + "\r\n" +
		"From: " + s.cfg.SMTPFrom + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	tlsconfig := &tls.Config{ServerName: s.cfg.SMTPHost}

	var dialer net.Dialer
	var client *smtp.Client
	if s.cfg.SMTPPort == 465 {
		// Прямое TLS-соединение (обычно порт 465)
		conn, err := (&tls.Dialer{NetDialer: &dialer, Config: tlsconfig}).DialContext(ctx, "tcp", addr)
		if err != nil {
			return fmt.Errorf("ошибка TLS соединения: %w", err)
		}
		client, err = smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			conn.Close()
			return fmt.Errorf("ошибка создания SMTP клиента: %w", err)
		}
	} else {
		// STARTTLS (обычно порт 587)
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return fmt.Errorf("ошибка соединения SMTP: %w", err)
		}
		client, err = smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			conn.Close()
			return fmt.Errorf("ошибка создания SMTP клиента: %w", err)
		}
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("ошибка команды STARTTLS: %w", err)
		}
	}
	defer client.Quit()

	if s.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("ошибка аутентификации SMTP: %w", err)
		}
	}

	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("ошибка MAIL FROM: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("ошибка RCPT TO: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("ошибка команды DATA: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("ошибка записи сообщения: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия DATA: %w", err)
	}
	return nil
}

type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) TeamRegistered(ctx context.Context, team models.Team) error {
	if n.logger != nil {
		n.logger.InfoContext(ctx, "team registered (smtp not configured, notice logged only)",
			slog.String("team_id", team.ID),
			slog.String("team", team.Name),
			slog.String("division", string(team.Division)),
		)
	}
	return nil
}
