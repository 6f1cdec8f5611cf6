package csvsource

import "strings"

// Column counts for the two row shapes.
const (
	headerColumns   = 12 // id + 6 capacity + 5 inventory
	minOrderColumns = 4  // id + date + order index + one burger code
)

// rowKind tags a raw row by its position inside a restaurant group.
type rowKind int

const (
	headerRow rowKind = iota
	orderRow
)

// row is one raw CSV line. Line is 1-based within the file.
type row struct {
	Kind   rowKind
	Line   int
	Fields []string
}

// group is every row sharing one restaurant id, in file order.
type group struct {
	ID     string
	Header row
	Orders []row
}

// trimTrailing drops empty cells at the end of a record; they are padding.
func trimTrailing(fields []string) []string {
	n := len(fields)
	for n > 0 && strings.TrimSpace(fields[n-1]) == "" {
		n--
	}
	return fields[:n]
}
