package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stay-booking/internal/pkg/config"

	gomail "github.com/wneessen/go-mail"
)

type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

func NewSender(cfg config.MailConfig) (Sender, error) {
	if cfg.Driver == config.MailDriverSMTP {
		return NewSMTPSender(cfg)
	}
	return NewLogSender(slog.Default()), nil
}

// SMTPSender delivers one message per dial. go-mail encodes headers and
// aborts the SMTP dialogue when ctx is done.
type SMTPSender struct {
	from string
	send func(ctx context.Context, msgs ...*gomail.Msg) error
}

func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to configure smtp client: %w", err)
	}
	return &SMTPSender{
		from: cfg.From,
		send: client.DialAndSendWithContext,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := s.compose(msg)
	if err != nil {
		return err
	}
	if err := s.send(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

func (s *SMTPSender) compose(msg Message) (*gomail.Msg, error) {
	if strings.TrimSpace(msg.To) == "" {
		return nil, fmt.Errorf("mail recipient is empty")
	}
	if strings.ContainsAny(msg.To, "\r\n") {
		return nil, fmt.Errorf("mail recipient contains a line break")
	}

	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", s.from, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	m.Subject(headerValue(msg.Subject))
	m.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)
	return m, nil
}

// headerValue folds every run of whitespace, CR and LF included, into one space.
func headerValue(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "mail not delivered (log driver)",
		"to", msg.To,
		"subject", headerValue(msg.Subject),
		"body_bytes", len(msg.HTMLBody))
	return nil
}
