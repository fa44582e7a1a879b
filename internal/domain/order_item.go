package domain

import "time"

type OrderItem struct {
	ID         uint
	OrderID    uint
	Size       Size
	SleeveType string
	Quantity   int
	CreatedAt  time.Time
}
