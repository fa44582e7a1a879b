package usecase

import (
	"context"

	"soeta/internal/domain"
	"soeta/internal/dto"
)

type OrdersService interface {
	GetOrdersWithItems(ctx context.Context) ([]domain.Order, error)
}

type ListOrdersUseCase struct {
	service OrdersService
}

func NewListOrdersUseCase(service OrdersService) *ListOrdersUseCase {
	return &ListOrdersUseCase{service: service}
}

// List returns the order collection filtered by the search query plus
// the summary rollup. The rollup always covers the full collection,
// not the filtered subset.
func (uc *ListOrdersUseCase) List(ctx context.Context, query string) (*dto.ListOrdersResponse, error) {
	orders, err := uc.service.GetOrdersWithItems(ctx)
	if err != nil {
		return nil, err
	}

	summary := domain.Summarize(orders)
	filtered := domain.FilterByName(orders, query)

	orderDTOs := make([]dto.OrderDTO, 0, len(filtered))
	for _, order := range filtered {
		orderDTOs = append(orderDTOs, toOrderDTO(order))
	}

	sizeCounts := make(map[string]int, len(summary.SizeCounts))
	for size, count := range summary.SizeCounts {
		sizeCounts[string(size)] = count
	}

	return &dto.ListOrdersResponse{
		Orders: orderDTOs,
		Summary: dto.SummaryDTO{
			TotalOrders: summary.TotalOrders,
			TotalItems:  summary.TotalItems,
			SizeCounts:  sizeCounts,
		},
	}, nil
}

func toOrderDTO(order domain.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemDTO{
			ID:         item.ID,
			Size:       string(item.Size),
			SleeveType: item.SleeveType,
			Quantity:   item.Quantity,
		})
	}

	return dto.OrderDTO{
		ID:        order.ID,
		FullName:  order.FullName,
		Phone:     order.Phone,
		Address:   order.Address,
		Note:      order.Note,
		CreatedAt: order.CreatedAt,
		Items:     items,
	}
}
