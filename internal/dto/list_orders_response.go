package dto

type ListOrdersResponse struct {
	Orders  []OrderDTO `json:"orders"`
	Summary SummaryDTO `json:"summary"`
}

type SummaryDTO struct {
	TotalOrders int            `json:"totalOrders"`
	TotalItems  int            `json:"totalItems"`
	SizeCounts  map[string]int `json:"sizeCounts"`
}
