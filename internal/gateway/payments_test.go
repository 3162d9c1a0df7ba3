package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"order-amendment-service/internal/config"
	"order-amendment-service/internal/entities"
	"order-amendment-service/internal/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Refund(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{
			name:   "success",
			status: http.StatusCreated,
			body:   `{}`,
		},
		{
			name:        "structured gateway error",
			status:      http.StatusUnprocessableEntity,
			body:        `{"code":"insufficient_funds","message":"captured amount already released"}`,
			wantErr:     entities.ErrGatewayRefund,
			wantMessage: "captured amount already released",
		},
		{
			name:    "opaque server error",
			status:  http.StatusInternalServerError,
			body:    `boom`,
			wantErr: entities.ErrGatewayRefund,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/refunds", r.URL.Path)
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := gateway.NewClient(config.Gateway{URL: srv.URL, Timeout: time.Second})

			err := client.Refund(context.Background(), 42, decimal.NewFromInt(35))

			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantMessage != "" {
				assert.Contains(t, err.Error(), tc.wantMessage)
			}
		})
	}
}
