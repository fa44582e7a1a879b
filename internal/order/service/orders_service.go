package service

import (
	"context"

	"soeta/internal/domain"
)

type OrderReader interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type OrderItemReader interface {
	FindAll(ctx context.Context) ([]domain.OrderItem, error)
}

type OrdersService struct {
	orderRepo OrderReader
	itemRepo  OrderItemReader
}

func NewOrdersService(orderRepo OrderReader, itemRepo OrderItemReader) *OrdersService {
	return &OrdersService{orderRepo: orderRepo, itemRepo: itemRepo}
}

// GetOrdersWithItems loads the full collection, newest order first,
// with each order's items attached.
func (s *OrdersService) GetOrdersWithItems(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uint][]domain.OrderItem, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}

	return orders, nil
}
