package services

import (
	"testing"

	"kitchen-order-service/internal/domain"
)

func newOrder(t *testing.T, capacity domain.Capacity, index string, codes ...string) *domain.Order {
	t.Helper()
	o, err := domain.NewOrder(capacity, "R1", "2020-12-08 19:15:31", index, codes)
	if err != nil {
		t.Fatalf("new order %s: %v", index, err)
	}
	return o
}

// unit times 5, 2 and 1: eight minutes per burger.
var smallKitchen = domain.Capacity{
	Cooking:   domain.Station{Capacity: 1, UnitTime: 5},
	Assembly:  domain.Station{Capacity: 1, UnitTime: 2},
	Packaging: domain.Station{Capacity: 1, UnitTime: 1},
}

func TestAdmitOrdersRejectsMissingIngredient(t *testing.T) {
	inv := &domain.Inventory{Stock: domain.Ingredients{Patties: 2, Lettuce: 2}}
	orders := []*domain.Order{
		newOrder(t, smallKitchen, "O1", "PL"),
		newOrder(t, smallKitchen, "O2", "PLT"),
	}

	res := AdmitOrders(inv, orders, DefaultCeilingMinutes)

	if len(res.Decisions) != 2 {
		t.Fatalf("decisions = %d, want 2", len(res.Decisions))
	}
	if res.Decisions[0].Order.Index != 1 || res.Decisions[0].Status != domain.StatusAccepted {
		t.Fatalf("first decision = O%d %s, want O1 ACCEPTED", res.Decisions[0].Order.Index, res.Decisions[0].Status)
	}
	if res.Decisions[1].Order.Index != 2 || res.Decisions[1].Status != domain.StatusRejected {
		t.Fatalf("second decision = O%d %s, want O2 REJECTED", res.Decisions[1].Order.Index, res.Decisions[1].Status)
	}

	want := domain.Ingredients{Patties: 1, Lettuce: 1}
	if res.Remaining != want {
		t.Fatalf("remaining = %+v, want %+v", res.Remaining, want)
	}
	if inv.Stock != want {
		t.Fatalf("inventory = %+v, want %+v", inv.Stock, want)
	}
}

func TestAdmitOrdersCeilingIsInclusive(t *testing.T) {
	plenty := domain.Ingredients{Patties: 10, Lettuce: 10, Tomatoes: 10, Veggies: 10, Bacon: 10}

	// 20 minutes per burger.
	atCeiling := domain.Capacity{
		Cooking:   domain.Station{Capacity: 1, UnitTime: 10},
		Assembly:  domain.Station{Capacity: 1, UnitTime: 6},
		Packaging: domain.Station{Capacity: 1, UnitTime: 4},
	}
	overCeiling := atCeiling
	overCeiling.Packaging.UnitTime = 5

	o20 := newOrder(t, atCeiling, "O1", "PL")
	o21 := newOrder(t, overCeiling, "O2", "PL")
	if o20.TotalTime != 20 || o21.TotalTime != 21 {
		t.Fatalf("total times = %d/%d, want 20/21", o20.TotalTime, o21.TotalTime)
	}

	res := AdmitOrders(&domain.Inventory{Stock: plenty}, []*domain.Order{o21, o20}, DefaultCeilingMinutes)

	if res.Decisions[0].Order != o20 || res.Decisions[0].Status != domain.StatusAccepted {
		t.Fatalf("20 minute order: got %s, want ACCEPTED first", res.Decisions[0].Status)
	}
	if res.Decisions[1].Order != o21 || res.Decisions[1].Status != domain.StatusRejected {
		t.Fatalf("21 minute order: got %s, want REJECTED", res.Decisions[1].Status)
	}
}

func TestAdmitOrdersSortsStablyByTotalTime(t *testing.T) {
	inv := &domain.Inventory{Stock: domain.Ingredients{Patties: 100, Lettuce: 100}}
	orders := []*domain.Order{
		newOrder(t, smallKitchen, "O1", "L", "L"),
		newOrder(t, smallKitchen, "O2", "L"),
		newOrder(t, smallKitchen, "O3", "L", "L", "L"),
		newOrder(t, smallKitchen, "O4", "L"),
	}

	res := AdmitOrders(inv, orders, DefaultCeilingMinutes)

	want := []int{2, 4, 1, 3}
	for i, d := range res.Decisions {
		if d.Order.Index != want[i] {
			t.Fatalf("position %d = O%d, want O%d", i, d.Order.Index, want[i])
		}
	}
	// The input slice keeps row order.
	if orders[0].Index != 1 || orders[2].Index != 3 {
		t.Fatal("input orders were reordered")
	}
	// 24 minutes is over the ceiling.
	if res.Decisions[3].Status != domain.StatusRejected {
		t.Fatalf("O3 status = %s, want REJECTED", res.Decisions[3].Status)
	}
}

func TestAdmitOrdersNoBacktracking(t *testing.T) {
	// O1 takes the only patty, so O2 is rejected and its bacon stays in stock.
	inv := &domain.Inventory{Stock: domain.Ingredients{Patties: 1, Bacon: 1}}
	orders := []*domain.Order{
		newOrder(t, smallKitchen, "O1", "P"),
		newOrder(t, smallKitchen, "O2", "PB"),
	}

	res := AdmitOrders(inv, orders, DefaultCeilingMinutes)

	if res.Decisions[0].Status != domain.StatusAccepted || res.Decisions[1].Status != domain.StatusRejected {
		t.Fatalf("statuses = %s/%s, want ACCEPTED/REJECTED", res.Decisions[0].Status, res.Decisions[1].Status)
	}
	if res.Remaining.Bacon != 1 {
		t.Fatalf("bacon = %d, want 1 left", res.Remaining.Bacon)
	}
}

func TestAdmitOrdersEmpty(t *testing.T) {
	inv := &domain.Inventory{Stock: domain.Ingredients{Patties: 3}}
	res := AdmitOrders(inv, nil, DefaultCeilingMinutes)

	if len(res.Decisions) != 0 {
		t.Fatalf("decisions = %d, want 0", len(res.Decisions))
	}
	if res.Remaining.Patties != 3 {
		t.Fatalf("patties = %d, want 3", res.Remaining.Patties)
	}
}
