package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"order-amendment-service/internal/entities"
	"order-amendment-service/internal/handler"
	mocks "order-amendment-service/internal/handler/mocks"
	"order-amendment-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (chi.Router, *mocks.MockEditFlow, *mocks.MockCartFlow) {
	t.Helper()

	edits := mocks.NewMockEditFlow(t)
	carts := mocks.NewMockCartFlow(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, edits, carts)

	r := chi.NewRouter()
	h.Init(r)
	return r, edits, carts
}

func doRequest(t *testing.T, r chi.Router, method, target, sessionID, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr.Result()
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 11, 55, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(edits *mocks.MockEditFlow)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			target: "/orders?customer_id=7",
			mockBehavior: func(edits *mocks.MockEditFlow) {
				edits.EXPECT().ListOrders(mock.Anything, int64(7)).Return([]service.OrderSummary{
					{
						Order: entities.Order{
							ID:        42,
							Status:    "processing",
							CreatedAt: createdAt,
							Total:     decimal.NewFromInt(105),
						},
						Editable:    true,
						SecondsLeft: 600,
						EditToken:   "tok-42",
					},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"edit_token":"tok-42"`,
		},
		{
			name:         "missing customer id",
			target:       "/orders",
			mockBehavior: func(_ *mocks.MockEditFlow) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid customer_id"`,
		},
		{
			name:   "internal error",
			target: "/orders?customer_id=7",
			mockBehavior: func(edits *mocks.MockEditFlow) {
				edits.EXPECT().ListOrders(mock.Anything, int64(7)).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, edits, _ := newRouter(t)
			tc.mockBehavior(edits)

			res := doRequest(t, r, http.MethodGet, tc.target, "", "")
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_BeginEdit(t *testing.T) {
	const token = "25fb27c0-3d62-4d29-8c1c-42c5f9f0b292"
	validBody := `{"customer_id":7,"token":"` + token + `"}`

	testCases := []struct {
		name         string
		sessionID    string
		body         string
		mockBehavior func(edits *mocks.MockEditFlow)
		wantStatus   int
	}{
		{
			name:      "success",
			sessionID: "sess",
			body:      validBody,
			mockBehavior: func(edits *mocks.MockEditFlow) {
				edits.EXPECT().BeginEdit(mock.Anything, "sess", int64(7), int64(42), token).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "missing session id",
			body:         validBody,
			mockBehavior: func(_ *mocks.MockEditFlow) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "invalid token format",
			sessionID:    "sess",
			body:         `{"customer_id":7,"token":"not-a-uuid"}`,
			mockBehavior: func(_ *mocks.MockEditFlow) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:      "token rejected",
			sessionID: "sess",
			body:      validBody,
			mockBehavior: func(edits *mocks.MockEditFlow) {
				edits.EXPECT().BeginEdit(mock.Anything, "sess", int64(7), int64(42), token).
					Return(entities.ErrInvalidToken).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:      "order not found",
			sessionID: "sess",
			body:      validBody,
			mockBehavior: func(edits *mocks.MockEditFlow) {
				edits.EXPECT().BeginEdit(mock.Anything, "sess", int64(7), int64(42), token).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "not eligible",
			sessionID: "sess",
			body:      validBody,
			mockBehavior: func(edits *mocks.MockEditFlow) {
				edits.EXPECT().BeginEdit(mock.Anything, "sess", int64(7), int64(42), token).
					Return(entities.ErrNotEligible).Once()
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, edits, _ := newRouter(t)
			tc.mockBehavior(edits)

			res := doRequest(t, r, http.MethodPost, "/orders/42/edit", tc.sessionID, tc.body)
			defer res.Body.Close()

			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}

func TestHTTPHandler_EditSession(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		r, edits, _ := newRouter(t)
		edits.EXPECT().Overview(mock.Anything, "sess").Return(service.EditOverview{
			OrderID:     42,
			Credit:      decimal.NewFromInt(105),
			SecondsLeft: 600,
			Conditions:  "shipping may change",
		}, nil).Once()

		res := doRequest(t, r, http.MethodGet, "/edit-session", "sess", "")
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, string(body), `"credit":"105.00"`)
		assert.Contains(t, string(body), `"seconds_left":600`)
	})

	t.Run("no active session", func(t *testing.T) {
		r, edits, _ := newRouter(t)
		edits.EXPECT().Overview(mock.Anything, "sess").
			Return(service.EditOverview{}, entities.ErrNoEditSession).Once()

		res := doRequest(t, r, http.MethodGet, "/edit-session", "sess", "")
		defer res.Body.Close()

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("missing session id", func(t *testing.T) {
		r, _, _ := newRouter(t)

		res := doRequest(t, r, http.MethodGet, "/edit-session", "", "")
		defer res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_CancelEdit(t *testing.T) {
	r, edits, _ := newRouter(t)
	edits.EXPECT().EndEdit("sess").Return().Once()

	res := doRequest(t, r, http.MethodDelete, "/edit-session", "sess", "")
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestHTTPHandler_CartRecalculated(t *testing.T) {
	t.Run("credit applied", func(t *testing.T) {
		r, _, carts := newRouter(t)
		carts.EXPECT().OnCartRecalculated(mock.Anything, "sess", mock.MatchedBy(func(cart entities.Cart) bool {
			return cart.Total.Equal(decimal.NewFromInt(70)) && len(cart.Fees) == 0
		})).Return(service.CartAdjustment{
			Cart: entities.Cart{
				Total: decimal.NewFromInt(70),
				Fees: []entities.FeeLine{
					{Name: entities.CreditFeeName, Amount: decimal.NewFromInt(-105)},
				},
			},
			RefundPreview: decimal.NewFromInt(35),
		}, nil).Once()

		res := doRequest(t, r, http.MethodPost, "/cart/recalculated", "sess", `{"total":"70"}`)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, string(body), `"name":"Credit"`)
		assert.Contains(t, string(body), `"amount":"-105.00"`)
		assert.Contains(t, string(body), `"payable":"0.00"`)
		assert.Contains(t, string(body), `"refund_preview":"35.00"`)
	})

	t.Run("malformed amount", func(t *testing.T) {
		r, _, _ := newRouter(t)

		res := doRequest(t, r, http.MethodPost, "/cart/recalculated", "sess", `{"total":"seventy"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("adjuster failure", func(t *testing.T) {
		r, _, carts := newRouter(t)
		carts.EXPECT().OnCartRecalculated(mock.Anything, "sess", mock.Anything).
			Return(service.CartAdjustment{}, errors.New("db error")).Once()

		res := doRequest(t, r, http.MethodPost, "/cart/recalculated", "sess", `{"total":"70"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})
}
