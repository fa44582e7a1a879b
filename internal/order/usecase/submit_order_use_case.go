package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"soeta/internal/domain"
	"soeta/internal/dto"
	apperrors "soeta/internal/errors"
)

type SubmissionService interface {
	CreateOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) (uint, error)
	ReplaceOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) error
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	ExistsByName(ctx context.Context, fullName string) (bool, error)
}

// SubmitOrderUseCase turns a submitted form into the persisted order
// plus item set, in two modes: Create for the intake flow and Update
// for the management flow's edit. Both refuse to touch the store when
// the requested total is zero.
type SubmitOrderUseCase struct {
	orderRepo     OrderRepository
	submissionSvc SubmissionService
	logger        *zap.Logger
}

func NewSubmitOrderUseCase(
	orderRepo OrderRepository,
	submissionSvc SubmissionService,
	logger *zap.Logger,
) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		orderRepo:     orderRepo,
		submissionSvc: submissionSvc,
		logger:        logger,
	}
}

func (uc *SubmitOrderUseCase) Create(ctx context.Context, req dto.SubmitOrderRequest) (*dto.OrderDTO, error) {
	order, quantities, err := buildSubmission(req)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order submission started", zap.String("fullName", order.FullName), zap.Int("totalItems", quantities.Total()))

	// Pre-check for a friendlier conflict message; the UNIQUE index on
	// fullName still catches two racing submissions.
	exists, err := uc.orderRepo.ExistsByName(ctx, order.FullName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("full name already used for another order")
	}

	items := quantities.Items(0, sleeveTypeFrom(req))

	orderID, err := uc.submissionSvc.CreateOrder(ctx, order, items)
	if err != nil {
		return nil, err
	}

	created, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	created.Items = items

	result := toOrderDTO(*created)
	return &result, nil
}

func (uc *SubmitOrderUseCase) Update(ctx context.Context, orderID uint, req dto.SubmitOrderRequest) (*dto.OrderDTO, error) {
	order, quantities, err := buildSubmission(req)
	if err != nil {
		return nil, err
	}

	existing, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order edit started", zap.Uint("orderId", orderID), zap.String("fullName", order.FullName), zap.Int("totalItems", quantities.Total()))

	order.ID = orderID
	order.CreatedAt = existing.CreatedAt
	items := quantities.Items(orderID, sleeveTypeFrom(req))

	if err := uc.submissionSvc.ReplaceOrder(ctx, order, items); err != nil {
		return nil, err
	}

	order.Items = items
	result := toOrderDTO(order)
	return &result, nil
}

// buildSubmission maps the request to a domain order and quantity
// mapping, enforcing the required name and the nonzero-total guard
// before any store access.
func buildSubmission(req dto.SubmitOrderRequest) (domain.Order, domain.SizeQuantities, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return domain.Order{}, domain.SizeQuantities{}, apperrors.NewValidationError(
			"validation failed",
			apperrors.ValidationDetail{Field: "fullName", Message: "fullName is required"},
		)
	}

	counts := make(map[domain.Size]int, len(req.Quantities))
	for size, qty := range req.Quantities {
		counts[domain.Size(size)] = qty
	}
	quantities := domain.SizeQuantitiesFrom(counts)

	if quantities.Total() == 0 {
		return domain.Order{}, domain.SizeQuantities{}, apperrors.NewValidationError(
			"validation failed",
			apperrors.ValidationDetail{Field: "quantities", Message: "order must contain at least one item"},
		)
	}

	return domain.Order{
		FullName: fullName,
		Phone:    optionalField(req.Phone),
		Address:  optionalField(req.Address),
		Note:     optionalField(req.Note),
	}, quantities, nil
}

func sleeveTypeFrom(req dto.SubmitOrderRequest) string {
	sleeveType := strings.TrimSpace(req.SleeveType)
	if sleeveType == "" {
		return domain.SleeveShort
	}
	return sleeveType
}

// optionalField stores blank submissions as NULL rather than empty text.
func optionalField(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
