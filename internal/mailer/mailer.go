// Package mailer implements the send_email tool over authenticated SMTP submission.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/textproto"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/ironsheep/roku-tools/internal/tools"
)

// Timeout bounds one SMTP session.
const Timeout = 30 * time.Second

// ErrCredentialsMissing is returned when the account or app password is not configured.
var ErrCredentialsMissing = errors.New("mailer: credentials not configured")

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

// SMTPSender submits messages with STARTTLS and PLAIN auth.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// Send dials, authenticates and delivers msg in one session.
func (s *SMTPSender) Send(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(s.Host,
		mail.WithPort(s.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.Username),
		mail.WithPassword(s.Password),
		mail.WithTimeout(s.Timeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// Mailer is the send_email handler.
type Mailer struct {
	Account  string
	Password string
	Sender   Sender
	Logger   *slog.Logger
}

// New returns a Mailer for the given account. A nil sender submits through host:port.
func New(account, password, host string, port int, sender Sender, logger *slog.Logger) *Mailer {
	if sender == nil {
		sender = &SMTPSender{Host: host, Port: port, Username: account, Password: password, Timeout: Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{Account: account, Password: password, Sender: sender, Logger: logger}
}

// Args are the arguments of send_email.
type Args struct {
	ToEmail string `json:"to_email" jsonschema:"Recipient email address"`
	Subject string `json:"subject" jsonschema:"Email subject line"`
	Message string `json:"message" jsonschema:"Email body content"`
	CCEmail string `json:"cc_email,omitempty" jsonschema:"Optional CC email address"`
}

// Compose builds the message: plain text with an escaped HTML alternative.
func Compose(from string, a Args) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := msg.To(a.ToEmail); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if a.CCEmail != "" {
		if err := msg.Cc(a.CCEmail); err != nil {
			return nil, fmt.Errorf("cc: %w", err)
		}
	}
	msg.Subject(a.Subject)
	msg.SetBodyString(mail.TypeTextPlain, a.Message)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(a.Message))
	return msg, nil
}

func htmlBody(text string) string {
	escaped := html.EscapeString(text)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>\n") + "</p>"
}

// Handle is the send_email handler.
func (m *Mailer) Handle(ctx context.Context, a Args) tools.Result {
	if m.Account == "" || m.Password == "" {
		m.Logger.Error("mail credentials not configured")
		return tools.Fail(tools.KindConfig, ErrCredentialsMissing, "Email sending failed: Gmail credentials not configured.")
	}

	msg, err := Compose(m.Account, a)
	if err != nil {
		m.Logger.Error("compose email", "to", a.ToEmail, "err", err)
		return tools.Fail(tools.KindInternal, err, fmt.Sprintf("An error occurred while sending email: %v", err))
	}

	if err := m.Sender.Send(ctx, msg); err != nil {
		if IsAuthError(err) {
			m.Logger.Error("smtp authentication failed", "account", m.Account, "err", err)
			return tools.Fail(tools.KindConfig, err, "Email sending failed: Authentication error. Please check your Gmail credentials.")
		}
		m.Logger.Error("smtp error", "to", a.ToEmail, "err", err)
		kind := tools.Classify(err)
		if kind == tools.KindInternal {
			kind = tools.KindNetwork
		}
		return tools.Fail(kind, err, fmt.Sprintf("Email sending failed: SMTP error - %v", err))
	}

	m.Logger.Info("email sent", "to", a.ToEmail, "cc", a.CCEmail)
	return tools.OK("Email sent successfully to " + a.ToEmail)
}

// IsAuthError reports whether err is an SMTP authentication rejection.
func IsAuthError(err error) bool {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535:
			return true
		}
	}
	return strings.Contains(err.Error(), "SMTP AUTH failed")
}
