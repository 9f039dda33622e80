package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"blackeagles/internal/model"
	"blackeagles/pkg/logger"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

type Message struct {
	To      []string
	From    string
	Subject string
	HTML    string
	ReplyTo string
}

type Result struct {
	MessageID string
	SentAt    time.Time
}

type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// ResendSender delivers through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) (Result, error) {
	from := msg.From
	if from == "" {
		from = s.from
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		logger.WithComponent("mailer").Error("resend send failed", zap.Strings("to", msg.To), zap.Error(err))
		return Result{}, fmt.Errorf("resend send failed: %w", err)
	}

	logger.WithComponent("mailer").Info("mail sent", zap.String("message_id", sent.Id), zap.Strings("to", msg.To))
	return Result{MessageID: sent.Id, SentAt: time.Now()}, nil
}

// NoopSender logs instead of delivering. Used when no API key is configured.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) Send(_ context.Context, msg Message) (Result, error) {
	logger.WithComponent("mailer").Info("noop mail", zap.Strings("to", msg.To), zap.String("subject", msg.Subject))
	return Result{
		MessageID: fmt.Sprintf("noop-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}

// InquiryMessage builds the admin notification for a new inquiry.
func InquiryMessage(n *model.InquiryNotification, to string) Message {
	var subject, contactLabel string
	switch n.Type {
	case model.InquiryDonate:
		subject = "[Virtual Black Eagles] 새 후원 메시지"
		contactLabel = "금액"
	default:
		subject = "[Virtual Black Eagles] 새 문의 메시지"
		contactLabel = "이메일"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>이름:</strong> %s</p>", html.EscapeString(n.Name))
	fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>", contactLabel, html.EscapeString(n.Email))
	fmt.Fprintf(&b, "<p><strong>메시지:</strong><br>%s</p>",
		strings.ReplaceAll(html.EscapeString(n.Message), "\n", "<br>"))
	fmt.Fprintf(&b, "<p><small>#%d · %s</small></p>", n.InquiryID, n.CreatedAt.Format(time.RFC3339))

	msg := Message{
		To:      []string{to},
		Subject: subject,
		HTML:    b.String(),
	}
	if n.Type == model.InquiryContact && strings.Contains(n.Email, "@") {
		msg.ReplyTo = n.Email
	}
	return msg
}
