package dto

import "time"

type OrderDTO struct {
	ID        uint           `json:"id"`
	FullName  string         `json:"fullName"`
	Phone     *string        `json:"phone"`
	Address   *string        `json:"address"`
	Note      *string        `json:"note"`
	CreatedAt time.Time      `json:"createdAt"`
	Items     []OrderItemDTO `json:"items"`
}

type OrderItemDTO struct {
	ID         uint   `json:"id"`
	Size       string `json:"size"`
	SleeveType string `json:"sleeveType"`
	Quantity   int    `json:"quantity"`
}

type SubmitOrderResponse struct {
	TraceID   string    `json:"traceId"`
	Order     OrderDTO  `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}
