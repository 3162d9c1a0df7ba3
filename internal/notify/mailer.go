package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"

	"order-amendment-service/internal/config"
	"order-amendment-service/internal/entities"
)

// Mailer delivers amendment failure notifications to the shop
// administrator. Sending is best effort: a failed mail is logged and
// dropped, it never propagates back into the reconciliation flow.
type Mailer struct {
	logger *slog.Logger
	cfg    config.SMTP

	// send is swappable for tests.
	send func(addr, from string, to []string, msg []byte) error
}

func NewMailer(logger *slog.Logger, cfg config.SMTP) *Mailer {
	return &Mailer{
		logger: logger.With(slog.String("service", "notify")),
		cfg:    cfg,
		send: func(addr, from string, to []string, msg []byte) error {
			return smtp.SendMail(addr, nil, from, to, msg)
		},
	}
}

// AdminFailure mails the administrator about a refund error on the given
// order, linking to the order's audit page.
func (m *Mailer) AdminFailure(ctx context.Context, order entities.Order, message string) {
	subject := fmt.Sprintf("Error on refund for order %d", order.ID)
	body := fmt.Sprintf(
		"There was an error while refunding the order: %s\r\nPlease check the order notes for all information: %s/%d",
		message, m.cfg.OrderAdminURL, order.ID,
	)

	msg := []byte(
		"From: " + m.cfg.From + "\r\n" +
			"To: " + m.cfg.AdminEmail + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"\r\n" +
			body + "\r\n",
	)

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, m.cfg.From, []string{m.cfg.AdminEmail}, msg); err != nil {
		m.logger.ErrorContext(ctx, "failed to send admin notification",
			slog.Int64("order_id", order.ID), slog.Any("error", err))
	}
}
