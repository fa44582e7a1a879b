package domain

// SizeQuantities maps every garment size to a requested quantity. The
// zero value is not usable; NewSizeQuantities seeds every size with 0
// so lookups never miss. Mutating methods return a new value and leave
// the receiver untouched.
type SizeQuantities struct {
	counts map[Size]int
}

func NewSizeQuantities() SizeQuantities {
	counts := make(map[Size]int, len(AllSizes()))
	for _, size := range AllSizes() {
		counts[size] = 0
	}
	return SizeQuantities{counts: counts}
}

// SizeQuantitiesFrom builds a quantity mapping from the given counts.
// Unknown sizes are dropped and negative counts are clamped to 0.
func SizeQuantitiesFrom(counts map[Size]int) SizeQuantities {
	sq := NewSizeQuantities()
	for size, qty := range counts {
		if !IsValidSize(size) {
			continue
		}
		if qty < 0 {
			qty = 0
		}
		sq.counts[size] = qty
	}
	return sq
}

func (sq SizeQuantities) clone() SizeQuantities {
	counts := make(map[Size]int, len(sq.counts))
	for size, qty := range sq.counts {
		counts[size] = qty
	}
	return SizeQuantities{counts: counts}
}

// Increment returns a copy with the given size's quantity raised by 1.
// Unknown sizes are ignored.
func (sq SizeQuantities) Increment(size Size) SizeQuantities {
	if !IsValidSize(size) {
		return sq
	}
	next := sq.clone()
	next.counts[size]++
	return next
}

// Decrement returns a copy with the given size's quantity lowered by 1,
// floored at 0. Decrementing a zero quantity is a no-op.
func (sq SizeQuantities) Decrement(size Size) SizeQuantities {
	if !IsValidSize(size) || sq.counts[size] == 0 {
		return sq
	}
	next := sq.clone()
	next.counts[size]--
	return next
}

func (sq SizeQuantities) Quantity(size Size) int {
	return sq.counts[size]
}

// Total is the sum of quantities across all sizes.
func (sq SizeQuantities) Total() int {
	total := 0
	for _, qty := range sq.counts {
		total += qty
	}
	return total
}

// Items builds the order item set for persistence: one item per size
// with a positive quantity, in enumeration order. Zero-quantity sizes
// never produce an item.
func (sq SizeQuantities) Items(orderID uint, sleeveType string) []OrderItem {
	var items []OrderItem
	for _, size := range AllSizes() {
		qty := sq.counts[size]
		if qty == 0 {
			continue
		}
		items = append(items, OrderItem{
			OrderID:    orderID,
			Size:       size,
			SleeveType: sleeveType,
			Quantity:   qty,
		})
	}
	return items
}
