package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"order-amendment-service/internal/entities"
	"order-amendment-service/internal/service"
	"order-amendment-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const sessionHeader = "X-Session-ID"

type EditFlow interface {
	ListOrders(ctx context.Context, customerID int64) ([]service.OrderSummary, error)
	BeginEdit(ctx context.Context, sessionID string, customerID, orderID int64, token string) error
	Overview(ctx context.Context, sessionID string) (service.EditOverview, error)
	EndEdit(sessionID string)
}

type CartFlow interface {
	OnCartRecalculated(ctx context.Context, sessionID string, cart entities.Cart) (service.CartAdjustment, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	edits    EditFlow
	carts    CartFlow
}

func NewHTTPHandler(logger *slog.Logger, edits EditFlow, carts CartFlow) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		edits:    edits,
		carts:    carts,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/orders", h.ListOrders)
	r.Post("/orders/{order_id}/edit", h.BeginEdit)
	r.Get("/edit-session", h.EditSession)
	r.Delete("/edit-session", h.CancelEdit)
	r.Post("/cart/recalculated", h.CartRecalculated)
}

// ListOrders возвращает заказы покупателя.
// @Summary      Заказы покупателя
// @Description  Список заказов с признаком редактируемости и одноразовым токеном для каждого редактируемого заказа
// @Tags         orders
// @Param        customer_id  query     int  true  "Идентификатор покупателя"
// @Success      200  {object}  OrderList
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, err := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 64)
	if err != nil || customerID <= 0 {
		utils.WriteError(w, "invalid customer_id", http.StatusBadRequest)
		return
	}

	summaries, err := h.edits.ListOrders(ctx, customerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.Int64("customer_id", customerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		listOrdersTotal.WithLabelValues("error").Inc()
		return
	}

	orders := make([]Order, 0, len(summaries))
	for _, summary := range summaries {
		orders = append(orders, SummaryEntityToJSON(summary))
	}

	listOrdersTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderList{Orders: orders}, http.StatusOK)
}

// BeginEdit открывает сессию редактирования заказа.
// @Summary      Начать редактирование заказа
// @Description  Проверяет одноразовый токен и права покупателя, после чего привязывает заказ к сессии
// @Tags         edit
// @Accept       json
// @Param        order_id      path      int               true  "Идентификатор заказа"
// @Param        X-Session-ID  header    string            true  "Идентификатор сессии посетителя"
// @Param        input         body      BeginEditRequest  true  "Токен и покупатель"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недействительный токен"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ нельзя редактировать"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/edit [post]
func (h *HTTPHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.Header.Get(sessionHeader)
	if sessionID == "" {
		utils.WriteError(w, "missing session id", http.StatusBadRequest)
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		utils.WriteError(w, "invalid order_id", http.StatusBadRequest)
		return
	}

	var req BeginEditRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err = h.edits.BeginEdit(ctx, sessionID, req.CustomerID, orderID, req.Token)

	switch {
	case errors.Is(err, entities.ErrInvalidToken):
		editsRejected.WithLabelValues("invalid_token").Inc()
		utils.WriteError(w, "invalid or already used edit token", http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound):
		editsRejected.WithLabelValues("not_found").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNotEligible):
		editsRejected.WithLabelValues("not_eligible").Inc()
		utils.WriteError(w, "order can no longer be edited", http.StatusConflict)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to begin edit", slog.Any("error", err), slog.Int64("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		editsStarted.Inc()
		w.WriteHeader(http.StatusNoContent)
	}
}

// EditSession возвращает контекст активной сессии редактирования.
// @Summary      Активная сессия редактирования
// @Description  Кредит, оставшееся время и условия редактирования для текущей сессии
// @Tags         edit
// @Param        X-Session-ID  header    string  true  "Идентификатор сессии посетителя"
// @Success      200  {object}  EditSession
// @Failure      400  {object}  utils.ErrorResponse "Нет идентификатора сессии"
// @Failure      404  {object}  utils.ErrorResponse "Нет активной сессии редактирования"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /edit-session [get]
func (h *HTTPHandler) EditSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.Header.Get(sessionHeader)
	if sessionID == "" {
		utils.WriteError(w, "missing session id", http.StatusBadRequest)
		return
	}

	overview, err := h.edits.Overview(ctx, sessionID)

	if errors.Is(err, entities.ErrNoEditSession) {
		utils.WriteError(w, "no active edit session", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get edit session", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OverviewEntityToJSON(overview), http.StatusOK)
}

// CancelEdit снимает заказ с редактирования.
// @Summary      Отменить редактирование
// @Description  Снимает привязку заказа к сессии, корзина теряет кредит на следующем пересчёте
// @Tags         edit
// @Param        X-Session-ID  header  string  true  "Идентификатор сессии посетителя"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Нет идентификатора сессии"
// @Router       /edit-session [delete]
func (h *HTTPHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(sessionHeader)
	if sessionID == "" {
		utils.WriteError(w, "missing session id", http.StatusBadRequest)
		return
	}

	h.edits.EndEdit(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// CartRecalculated применяет кредит редактирования к корзине.
// @Summary      Пересчёт корзины
// @Description  Принимает снимок корзины и возвращает её с единственной строкой кредита и предпросмотром возврата
// @Tags         cart
// @Accept       json
// @Param        X-Session-ID  header    string  true  "Идентификатор сессии посетителя"
// @Param        input         body      Cart    true  "Снимок корзины"
// @Success      200  {object}  CartAdjustment
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/recalculated [post]
func (h *HTTPHandler) CartRecalculated(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.Header.Get(sessionHeader)
	if sessionID == "" {
		utils.WriteError(w, "missing session id", http.StatusBadRequest)
		return
	}

	var req Cart
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := CartJSONToEntity(req)
	if err != nil {
		utils.WriteError(w, "invalid monetary amount", http.StatusBadRequest)
		return
	}

	adjustment, err := h.carts.OnCartRecalculated(ctx, sessionID, cart)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to adjust cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if _, ok := adjustment.Cart.CreditFee(); ok {
		creditsApplied.Inc()
	}

	utils.WriteJSON(w, AdjustmentEntityToJSON(adjustment), http.StatusOK)
}
