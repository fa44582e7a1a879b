package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soeta/internal/domain"
)

type mockOrdersService struct {
	GetOrdersWithItemsFunc func(ctx context.Context) ([]domain.Order, error)
}

func (m *mockOrdersService) GetOrdersWithItems(ctx context.Context) ([]domain.Order, error) {
	return m.GetOrdersWithItemsFunc(ctx)
}

func twoOrders() []domain.Order {
	return []domain.Order{
		{ID: 2, FullName: "Siti Aminah", Items: []domain.OrderItem{
			{ID: 3, OrderID: 2, Size: domain.SizeS, Quantity: 1},
		}},
		{ID: 1, FullName: "Budi Santoso", Items: []domain.OrderItem{
			{ID: 1, OrderID: 1, Size: domain.SizeS, Quantity: 2},
			{ID: 2, OrderID: 1, Size: domain.SizeM, Quantity: 1},
		}},
	}
}

func TestList_SummaryAndOrders(t *testing.T) {
	svc := &mockOrdersService{
		GetOrdersWithItemsFunc: func(ctx context.Context) ([]domain.Order, error) {
			return twoOrders(), nil
		},
	}
	uc := NewListOrdersUseCase(svc)

	resp, err := uc.List(context.Background(), "")
	require.NoError(t, err)

	assert.Len(t, resp.Orders, 2)
	assert.Equal(t, "Siti Aminah", resp.Orders[0].FullName)
	assert.Equal(t, "Budi Santoso", resp.Orders[1].FullName)

	assert.Equal(t, 2, resp.Summary.TotalOrders)
	assert.Equal(t, 4, resp.Summary.TotalItems)
	assert.Equal(t, 3, resp.Summary.SizeCounts["S"])
	assert.Equal(t, 1, resp.Summary.SizeCounts["M"])
	assert.Equal(t, 0, resp.Summary.SizeCounts["L"])
	assert.Equal(t, 0, resp.Summary.SizeCounts["XXXL"])
}

func TestList_QueryFiltersOrdersButNotSummary(t *testing.T) {
	svc := &mockOrdersService{
		GetOrdersWithItemsFunc: func(ctx context.Context) ([]domain.Order, error) {
			return twoOrders(), nil
		},
	}
	uc := NewListOrdersUseCase(svc)

	resp, err := uc.List(context.Background(), "bud")
	require.NoError(t, err)

	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "Budi Santoso", resp.Orders[0].FullName)

	// The rollup still covers the whole collection.
	assert.Equal(t, 2, resp.Summary.TotalOrders)
	assert.Equal(t, 4, resp.Summary.TotalItems)
}

func TestList_EmptyCollection(t *testing.T) {
	svc := &mockOrdersService{
		GetOrdersWithItemsFunc: func(ctx context.Context) ([]domain.Order, error) {
			return nil, nil
		},
	}
	uc := NewListOrdersUseCase(svc)

	resp, err := uc.List(context.Background(), "")
	require.NoError(t, err)

	assert.NotNil(t, resp.Orders)
	assert.Empty(t, resp.Orders)
	assert.Equal(t, 0, resp.Summary.TotalOrders)
	assert.Equal(t, 0, resp.Summary.SizeCounts["S"])
}
