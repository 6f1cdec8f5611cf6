package csvsource

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kitchen-order-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSourceGroupsByRestaurant(t *testing.T) {
	rests, err := NewFileSource("testdata/orders.csv").LoadRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, rests, 2)

	r1, r2 := rests[0], rests[1]
	assert.Equal(t, "R1", r1.ID)
	assert.Equal(t, "R2", r2.ID)

	assert.Equal(t, domain.Station{Capacity: 4, UnitTime: 5}, r1.Capacity.Cooking)
	assert.Equal(t, domain.Station{Capacity: 3, UnitTime: 4}, r1.Capacity.Assembly)
	assert.Equal(t, domain.Station{Capacity: 2, UnitTime: 3}, r1.Capacity.Packaging)
	assert.Equal(t, domain.Ingredients{Patties: 8, Lettuce: 8, Tomatoes: 8, Veggies: 8, Bacon: 8}, r1.Inventory.Stock)

	indexes := func(r *domain.Restaurant) []int {
		out := make([]int, 0, len(r.Orders))
		for _, o := range r.Orders {
			out = append(out, o.Index)
		}
		return out
	}
	assert.Equal(t, []int{1, 2, 3, 4}, indexes(r1))
	assert.Equal(t, []int{1, 2}, indexes(r2))

	assert.Equal(t, []string{"BLT", "LT", "VLT"}, r1.Orders[0].Burgers)
	assert.Equal(t, "2020-12-08 19:15:31", r1.Orders[0].Date)
	assert.Equal(t, 36, r1.Orders[0].TotalTime)
	assert.Equal(t, 8, r2.Orders[0].TotalTime)
}

func TestParseIgnoresEmptyCells(t *testing.T) {
	in := "R1,1,1,1,1,1,1,5,5,5,5,5,,\n" +
		"R1,d,O1,PL,,BT,,\n"

	rests, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rests, 1)
	require.Len(t, rests[0].Orders, 1)
	assert.Equal(t, []string{"PL", "BT"}, rests[0].Orders[0].Burgers)
}

func TestParseRestaurantWithoutOrders(t *testing.T) {
	rests, err := Parse(strings.NewReader("R9,1,1,1,1,1,1,0,0,0,0,0\n"))
	require.NoError(t, err)
	require.Len(t, rests, 1)
	assert.Empty(t, rests[0].Orders)
}

func TestParseFormatErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		row  int
	}{
		{"short header", "R1,1,1,1\n", 1},
		{"non numeric capacity", "R1,1,x,1,1,1,1,0,0,0,0,0\n", 1},
		{"extra header value", "R1,1,1,1,1,1,1,0,0,0,0,0,9\n", 1},
		{"short order", "R1,1,1,1,1,1,1,0,0,0,0,0\nR1,d,O1\n", 2},
		{"order without codes", "R1,1,1,1,1,1,1,0,0,0,0,0\nR1,d,O1,,\n", 2},
		{"order index without digits", "R1,1,1,1,1,1,1,0,0,0,0,0\nR1,d,Ox,PL\n", 2},
		{"missing restaurant id", ",1,1,1,1,1,1,0,0,0,0,0\n", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			require.Error(t, err)

			var fe *domain.FormatError
			require.True(t, errors.As(err, &fe), "want FormatError, got %v", err)
			assert.Equal(t, tc.row, fe.Row)
		})
	}
}

func TestParseRejectsOverflowingTimes(t *testing.T) {
	in := "R1,1,4611686018427387904,1,0,1,0,5,5,5,5,5\n" +
		"R1,d,O1,PL,PL\n"

	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)

	var fe *domain.FormatError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, domain.ErrTimeOverflow)
	assert.Equal(t, 2, fe.Row)
	assert.Equal(t, 0, fe.Column)
}

func TestReadGroupsTagsRows(t *testing.T) {
	in := "A,1,1,1,1,1,1,0,0,0,0,0\nB,1,1,1,1,1,1,0,0,0,0,0\nA,d,O1,L\n"

	groups, err := readGroups(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, headerRow, groups[0].Header.Kind)
	assert.Equal(t, 1, groups[0].Header.Line)
	require.Len(t, groups[0].Orders, 1)
	assert.Equal(t, orderRow, groups[0].Orders[0].Kind)
	assert.Equal(t, 3, groups[0].Orders[0].Line)
	assert.Empty(t, groups[1].Orders)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource("testdata/does-not-exist.csv").LoadRestaurants(context.Background())
	assert.Error(t, err)
}
