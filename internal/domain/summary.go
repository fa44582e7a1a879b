package domain

// Summary is the rollup shown on the management page.
type Summary struct {
	TotalOrders int
	TotalItems  int
	SizeCounts  map[Size]int
}

// Summarize computes the rollup over the full order collection. Every
// size in the enumeration reports a count, 0 when no item contributes.
// The accumulation is commutative, so iteration order does not matter.
func Summarize(orders []Order) Summary {
	sizeCounts := make(map[Size]int, len(AllSizes()))
	for _, size := range AllSizes() {
		sizeCounts[size] = 0
	}

	totalItems := 0
	for _, order := range orders {
		for _, item := range order.Items {
			sizeCounts[item.Size] += item.Quantity
			totalItems += item.Quantity
		}
	}

	return Summary{
		TotalOrders: len(orders),
		TotalItems:  totalItems,
		SizeCounts:  sizeCounts,
	}
}
