package domain

// ShoppingListItem is one aggregated row of a shopping list: the total amount
// of an ingredient across every recipe in the cart.
type ShoppingListItem struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}
