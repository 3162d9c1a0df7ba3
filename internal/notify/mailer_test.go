package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"order-amendment-service/internal/config"
	"order-amendment-service/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestMailer_AdminFailure(t *testing.T) {
	cfg := config.SMTP{
		Host:          "mail.local",
		Port:          25,
		From:          "noreply@shop.example",
		AdminEmail:    "admin@shop.example",
		OrderAdminURL: "https://shop.example/admin/orders",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("builds subject and audit link", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte

		m := NewMailer(logger, cfg)
		m.send = func(addr, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		}

		m.AdminFailure(context.Background(), entities.Order{ID: 42}, "gateway refused")

		assert.Equal(t, "mail.local:25", gotAddr)
		assert.Equal(t, "noreply@shop.example", gotFrom)
		assert.Equal(t, []string{"admin@shop.example"}, gotTo)
		assert.Contains(t, string(gotMsg), "Subject: Error on refund for order 42")
		assert.Contains(t, string(gotMsg), "gateway refused")
		assert.Contains(t, string(gotMsg), "https://shop.example/admin/orders/42")
	})

	t.Run("send failure is swallowed", func(t *testing.T) {
		m := NewMailer(logger, cfg)
		m.send = func(addr, from string, to []string, msg []byte) error {
			return errors.New("connection refused")
		}

		// должен только залогировать, не паниковать и ничего не возвращать
		m.AdminFailure(context.Background(), entities.Order{ID: 42}, "boom")
	})
}
