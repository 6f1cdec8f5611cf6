package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Marker letters inside a composition code. Every burger has one patty
// regardless of its code.
const (
	MarkerLettuce = 'L'
	MarkerTomato  = 'T'
	MarkerVeggie  = 'V'
	MarkerBacon   = 'B'
)

var digitRun = regexp.MustCompile(`\d+`)

// ParseOrderIndex returns the first run of digits in token ("O12" -> 12).
func ParseOrderIndex(token string) (int, error) {
	m := digitRun.FindString(token)
	if m == "" {
		return 0, &FormatError{Value: token, Reason: "invalid order index", Err: ErrNoOrderIndex}
	}
	idx, err := strconv.Atoi(m)
	if err != nil {
		return 0, &FormatError{Value: token, Reason: "invalid order index", Err: err}
	}
	return idx, nil
}

// Order is a single customer order. It is read-only once built by NewOrder.
type Order struct {
	RestaurantID string
	Date         string
	Index        int
	Burgers      []string
	Demand       Ingredients

	CookingTime   int
	AssemblyTime  int
	PackagingTime int
	TotalTime     int
}

// NewOrder derives ingredient demand and station times for one order row.
func NewOrder(capacity Capacity, restaurantID, date, indexToken string, burgers []string) (*Order, error) {
	idx, err := ParseOrderIndex(indexToken)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(burgers))
	copy(codes, burgers)

	o := &Order{
		RestaurantID: restaurantID,
		Date:         date,
		Index:        idx,
		Burgers:      codes,
	}

	for _, code := range codes {
		o.Demand.Patties++
		o.Demand.Lettuce += presence(code, MarkerLettuce)
		o.Demand.Tomatoes += presence(code, MarkerTomato)
		o.Demand.Veggies += presence(code, MarkerVeggie)
		o.Demand.Bacon += presence(code, MarkerBacon)
	}

	n := len(codes)
	var ok1, ok2, ok3, ok4, ok5 bool
	o.CookingTime, ok1 = mulTime(n, capacity.Cooking.UnitTime)
	o.AssemblyTime, ok2 = mulTime(n, capacity.Assembly.UnitTime)
	o.PackagingTime, ok3 = mulTime(n, capacity.Packaging.UnitTime)
	sub, ok4 := addTime(o.CookingTime, o.AssemblyTime)
	o.TotalTime, ok5 = addTime(sub, o.PackagingTime)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return nil, &FormatError{
			Value:  indexToken,
			Reason: fmt.Sprintf("processing time for %d burgers overflows", n),
			Err:    ErrTimeOverflow,
		}
	}

	return o, nil
}

// mulTime multiplies two non-negative times, reporting false on overflow.
func mulTime(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// addTime adds two non-negative times, reporting false on overflow.
func addTime(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// NumBurgers is the number of composition codes in the order.
func (o *Order) NumBurgers() int { return len(o.Burgers) }

func (o *Order) String() string {
	return fmt.Sprintf("Order: %s:%d -> %s at %s", o.RestaurantID, o.Index, strings.Join(o.Burgers, " "), o.Date)
}

func presence(code string, marker rune) int {
	if strings.ContainsRune(code, marker) {
		return 1
	}
	return 0
}
