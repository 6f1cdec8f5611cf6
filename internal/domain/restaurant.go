package domain

// Restaurant is one group of input rows: the header row decoded into
// Capacity and Inventory, followed by its orders in row order.
type Restaurant struct {
	ID        string
	Capacity  Capacity
	Inventory *Inventory
	Orders    []*Order
}
