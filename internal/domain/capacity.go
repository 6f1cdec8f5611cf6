package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Station is one production step: how many units it handles and
// how many minutes each burger spends in it.
type Station struct {
	Capacity int
	UnitTime int
}

// Capacity holds the fixed throughput of a restaurant's three stations.
// It is never modified after parsing.
type Capacity struct {
	Cooking   Station
	Assembly  Station
	Packaging Station
}

// ParseCapacity builds a Capacity from the six capacity fields of a header row,
// in the order cooking, assembly, packaging (count then unit time each).
func ParseCapacity(fields []string, firstColumn int) (Capacity, error) {
	if len(fields) < 6 {
		return Capacity{}, &FormatError{
			Column: firstColumn + len(fields),
			Reason: fmt.Sprintf("capacity needs 6 fields, got %d", len(fields)),
		}
	}

	vals, err := parseCounts(fields[:6], firstColumn)
	if err != nil {
		return Capacity{}, err
	}

	return Capacity{
		Cooking:   Station{Capacity: vals[0], UnitTime: vals[1]},
		Assembly:  Station{Capacity: vals[2], UnitTime: vals[3]},
		Packaging: Station{Capacity: vals[4], UnitTime: vals[5]},
	}, nil
}

func (c Capacity) String() string {
	return fmt.Sprintf("Cooking capacity, cooking time, assembly capacity, assembly time, packing capacity, packaging time:\n %d-%d, %d-%d, %d-%d",
		c.Cooking.Capacity, c.Cooking.UnitTime,
		c.Assembly.Capacity, c.Assembly.UnitTime,
		c.Packaging.Capacity, c.Packaging.UnitTime)
}

// parseCounts parses non-negative integers, reporting the offending column.
func parseCounts(fields []string, firstColumn int) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v := strings.TrimSpace(f)
		if v == "" {
			return nil, &FormatError{Column: firstColumn + i, Reason: "missing numeric value"}
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &FormatError{Column: firstColumn + i, Value: v, Reason: "not an integer", Err: err}
		}
		if n < 0 {
			return nil, &FormatError{Column: firstColumn + i, Value: v, Reason: "must not be negative"}
		}
		out[i] = n
	}
	return out, nil
}
