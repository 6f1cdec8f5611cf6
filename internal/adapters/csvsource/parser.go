package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"kitchen-order-service/internal/domain"
)

// Parse reads a headerless CSV table and decodes it into restaurant groups.
//
// Rows are grouped by their first column. Groups keep the order in which
// their id first appears and rows keep file order within a group. The first
// row of a group is its header; every later row is an order.
func Parse(r io.Reader) ([]*domain.Restaurant, error) {
	groups, err := readGroups(r)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Restaurant, 0, len(groups))
	for _, g := range groups {
		rest, err := decodeGroup(g)
		if err != nil {
			return nil, fmt.Errorf("parse orders: restaurant %q: %w", g.ID, err)
		}
		out = append(out, rest)
	}
	return out, nil
}

func readGroups(r io.Reader) ([]*group, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	byID := make(map[string]*group)
	var ordered []*group

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &domain.FormatError{Row: pe.Line, Column: pe.Column, Reason: "malformed csv", Err: pe.Err}
			}
			return nil, fmt.Errorf("parse orders: read csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		fields := trimTrailing(rec)
		if len(fields) == 0 {
			continue
		}

		id := strings.TrimSpace(fields[0])
		if id == "" {
			return nil, &domain.FormatError{Row: line, Column: 1, Reason: "missing restaurant id"}
		}

		g, ok := byID[id]
		if !ok {
			g = &group{ID: id, Header: row{Kind: headerRow, Line: line, Fields: fields}}
			byID[id] = g
			ordered = append(ordered, g)
			continue
		}
		g.Orders = append(g.Orders, row{Kind: orderRow, Line: line, Fields: fields})
	}

	return ordered, nil
}

func decodeGroup(g *group) (*domain.Restaurant, error) {
	capacity, inv, err := decodeHeader(g.Header)
	if err != nil {
		return nil, err
	}

	rest := &domain.Restaurant{
		ID:        g.ID,
		Capacity:  capacity,
		Inventory: inv,
		Orders:    make([]*domain.Order, 0, len(g.Orders)),
	}

	for _, r := range g.Orders {
		o, err := decodeOrder(r, g.ID, capacity)
		if err != nil {
			return nil, err
		}
		rest.Orders = append(rest.Orders, o)
	}

	return rest, nil
}

func decodeHeader(r row) (domain.Capacity, *domain.Inventory, error) {
	if len(r.Fields) < headerColumns {
		return domain.Capacity{}, nil, &domain.FormatError{
			Row:    r.Line,
			Column: len(r.Fields) + 1,
			Reason: fmt.Sprintf("header row needs %d columns, got %d", headerColumns, len(r.Fields)),
		}
	}
	if len(r.Fields) > headerColumns {
		return domain.Capacity{}, nil, &domain.FormatError{
			Row:    r.Line,
			Column: headerColumns + 1,
			Value:  r.Fields[headerColumns],
			Reason: "unexpected value after inventory fields",
		}
	}

	capacity, err := domain.ParseCapacity(r.Fields[1:7], 2)
	if err != nil {
		return domain.Capacity{}, nil, domain.AtRow(err, r.Line)
	}

	inv, err := domain.ParseInventory(r.Fields[7:12], 8)
	if err != nil {
		return domain.Capacity{}, nil, domain.AtRow(err, r.Line)
	}

	return capacity, inv, nil
}

func decodeOrder(r row, restaurantID string, capacity domain.Capacity) (*domain.Order, error) {
	if len(r.Fields) < minOrderColumns {
		return nil, &domain.FormatError{
			Row:    r.Line,
			Column: len(r.Fields) + 1,
			Reason: fmt.Sprintf("order row needs at least %d columns, got %d", minOrderColumns, len(r.Fields)),
		}
	}

	// Empty cells between codes are holes in a ragged table, not burgers.
	codes := make([]string, 0, len(r.Fields)-3)
	for _, f := range r.Fields[3:] {
		if c := strings.TrimSpace(f); c != "" {
			codes = append(codes, c)
		}
	}

	o, err := domain.NewOrder(capacity, restaurantID, strings.TrimSpace(r.Fields[1]), r.Fields[2], codes)
	if err != nil {
		var fe *domain.FormatError
		// Index errors point at the index column; overflow belongs to the whole row.
		if errors.As(err, &fe) && fe.Column == 0 && !errors.Is(err, domain.ErrTimeOverflow) {
			fe.Column = 3
		}
		return nil, domain.AtRow(err, r.Line)
	}
	return o, nil
}
