package domain

import "strings"

// FilterByName returns the orders whose submitter name contains the
// query as a case-insensitive substring. An empty or whitespace-only
// query returns the input unchanged, in its original order.
func FilterByName(orders []Order, query string) []Order {
	query = strings.TrimSpace(query)
	if query == "" {
		return orders
	}

	query = strings.ToLower(query)
	filtered := make([]Order, 0, len(orders))
	for _, order := range orders {
		if strings.Contains(strings.ToLower(order.FullName), query) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
