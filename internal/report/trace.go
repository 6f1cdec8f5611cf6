package report

import (
	"fmt"
	"io"
	"strings"

	"kitchen-order-service/internal/domain"
	"kitchen-order-service/internal/services"
)

// WriteTrace writes the human-readable diagnostics for one restaurant group:
// capacity and starting stock, the order count, each order as read, and the
// total times in processing order.
func WriteTrace(w io.Writer, g services.GroupResult) error {
	r := g.Restaurant
	start := domain.Inventory{Stock: g.InitialStock}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n\n", r.Capacity, &start)
	fmt.Fprintf(&b, "Number of orders for %s is %d\n", r.ID, len(r.Orders))
	for _, o := range r.Orders {
		fmt.Fprintf(&b, "Processing %s\n", o)
	}

	times := make([]string, 0, len(g.Admission.Decisions))
	for _, d := range g.Admission.Decisions {
		times = append(times, fmt.Sprintf("%dmin", d.Order.TotalTime))
	}
	fmt.Fprintln(&b, strings.Join(times, " "))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write trace %q: %w", r.ID, err)
	}
	return nil
}

// WriteRun writes the trace of every group followed by the Outputs block.
func WriteRun(w io.Writer, results []services.GroupResult) error {
	for _, g := range results {
		if err := WriteTrace(w, g); err != nil {
			return err
		}
	}
	return WriteOutputs(w, results)
}
