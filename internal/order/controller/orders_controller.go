package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"soeta/internal/domain"
	"soeta/internal/dto"
	apperrors "soeta/internal/errors"
)

type SubmitOrderUseCase interface {
	Create(ctx context.Context, req dto.SubmitOrderRequest) (*dto.OrderDTO, error)
	Update(ctx context.Context, orderID uint, req dto.SubmitOrderRequest) (*dto.OrderDTO, error)
}

type ListOrdersUseCase interface {
	List(ctx context.Context, query string) (*dto.ListOrdersResponse, error)
}

type DeleteOrderUseCase interface {
	Delete(ctx context.Context, orderID uint) error
}

type OrdersController struct {
	submitUC SubmitOrderUseCase
	listUC   ListOrdersUseCase
	deleteUC DeleteOrderUseCase
	logger   *zap.Logger
}

func NewOrdersController(
	submitUC SubmitOrderUseCase,
	listUC ListOrdersUseCase,
	deleteUC DeleteOrderUseCase,
	logger *zap.Logger,
) *OrdersController {
	return &OrdersController{
		submitUC: submitUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

func (c *OrdersController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateSubmitRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.submitUC.Create(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.SubmitOrderResponse{
		TraceID:   traceID,
		Order:     *order,
		Timestamp: time.Now().UTC(),
	})
}

func (c *OrdersController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.listUC.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrdersController) HandleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, logger)
	if !ok {
		return
	}

	var req dto.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateSubmitRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.submitUC.Update(r.Context(), orderID, req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.SubmitOrderResponse{
		TraceID:   traceID,
		Order:     *order,
		Timestamp: time.Now().UTC(),
	})
}

func (c *OrdersController) HandleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, logger)
	if !ok {
		return
	}

	if err := c.deleteUC.Delete(r.Context(), orderID); err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *OrdersController) parseOrderID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", orderIDStr))
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(orderID), true
}

func (c *OrdersController) validateSubmitRequest(req dto.SubmitOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.FullName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "fullName",
			Message: "fullName is required",
		})
	}

	total := 0
	for size, qty := range req.Quantities {
		if !domain.IsValidSize(domain.Size(size)) {
			details = append(details, apperrors.ValidationDetail{
				Field:   "quantities." + size,
				Message: "size must be one of S, M, L, XL, XXL, XXXL",
			})
			continue
		}

		if qty < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "quantities." + size,
				Message: "quantity must not be negative",
			})
			continue
		}

		total += qty
	}

	if len(details) == 0 && total == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantities",
			Message: "order must contain at least one item",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrdersController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "NAME_TAKEN", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *OrdersController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, errorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrdersController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrdersController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
