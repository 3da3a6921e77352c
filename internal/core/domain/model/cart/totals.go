package cart

// Subtotal sums price multiplied by quantity over the given line items.
func Subtotal(items []*LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// TotalItemCount sums the quantities over the given line items.
func TotalItemCount(items []*LineItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity()
	}
	return count
}
