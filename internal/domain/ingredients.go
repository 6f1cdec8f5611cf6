package domain

import (
	"errors"
	"fmt"
)

// Ingredients counts each of the five stock kinds a kitchen tracks.
// It is used both for stock on hand and for the demand of an order.
type Ingredients struct {
	Patties  int
	Lettuce  int
	Tomatoes int
	Veggies  int
	Bacon    int
}

// Covers reports whether every count in i is at least the matching count in need.
func (i Ingredients) Covers(need Ingredients) bool {
	return need.Patties <= i.Patties &&
		need.Lettuce <= i.Lettuce &&
		need.Tomatoes <= i.Tomatoes &&
		need.Veggies <= i.Veggies &&
		need.Bacon <= i.Bacon
}

func (i Ingredients) sub(o Ingredients) Ingredients {
	return Ingredients{
		Patties:  i.Patties - o.Patties,
		Lettuce:  i.Lettuce - o.Lettuce,
		Tomatoes: i.Tomatoes - o.Tomatoes,
		Veggies:  i.Veggies - o.Veggies,
		Bacon:    i.Bacon - o.Bacon,
	}
}

// Inventory is the mutable stock of one restaurant during a run.
// Only the admission pass for that restaurant mutates it.
type Inventory struct {
	Stock Ingredients
}

// ParseInventory builds an Inventory from the five stock fields of a header row
// (patties, lettuce, tomatoes, veggies, bacon). firstColumn is the 1-based
// column of fields[0], used for error reporting.
func ParseInventory(fields []string, firstColumn int) (*Inventory, error) {
	if len(fields) < 5 {
		return nil, &FormatError{
			Column: firstColumn + len(fields),
			Reason: fmt.Sprintf("inventory needs 5 fields, got %d", len(fields)),
		}
	}

	vals, err := parseCounts(fields[:5], firstColumn)
	if err != nil {
		return nil, err
	}

	return &Inventory{Stock: Ingredients{
		Patties:  vals[0],
		Lettuce:  vals[1],
		Tomatoes: vals[2],
		Veggies:  vals[3],
		Bacon:    vals[4],
	}}, nil
}

// CanFulfill reports whether the remaining stock covers need.
func (inv *Inventory) CanFulfill(need Ingredients) bool {
	return inv.Stock.Covers(need)
}

// Consume deducts need from the stock. Stock never goes negative: if need is
// not covered the inventory is left untouched and an error is returned.
func (inv *Inventory) Consume(need Ingredients) error {
	if inv == nil {
		return errors.New("consume inventory: inventory is nil")
	}
	if !inv.CanFulfill(need) {
		return fmt.Errorf("consume inventory: need %+v exceeds stock %+v", need, inv.Stock)
	}
	inv.Stock = inv.Stock.sub(need)
	return nil
}

func (inv *Inventory) String() string {
	s := inv.Stock
	return fmt.Sprintf("#patties, #lettuce, #tomatoes, #veggies, #bacon:\n %d, %d, %d, %d, %d",
		s.Patties, s.Lettuce, s.Tomatoes, s.Veggies, s.Bacon)
}
