package domain

import "time"

type Order struct {
	ID        uint
	FullName  string
	Phone     *string
	Address   *string
	Note      *string
	CreatedAt time.Time
	Items     []OrderItem
}

// TotalQuantity sums the quantities of all items on the order.
func (o Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
