package report

import (
	"fmt"
	"io"

	"kitchen-order-service/internal/domain"
	"kitchen-order-service/internal/services"
)

// StatusLine renders a decision as "<restaurant_id>,O<index>,<STATUS>,<total_time>".
// Fields are not escaped.
func StatusLine(d domain.Decision) string {
	return fmt.Sprintf("%s,O%d,%s,%d", d.Order.RestaurantID, d.Order.Index, d.Status, d.Order.TotalTime)
}

// StatusLines returns every status line of a run: groups in first-seen order,
// decisions in processing order within a group.
func StatusLines(results []services.GroupResult) []string {
	var out []string
	for _, g := range results {
		for _, d := range g.Admission.Decisions {
			out = append(out, StatusLine(d))
		}
	}
	return out
}

// WriteOutputs writes the "Outputs:" block.
func WriteOutputs(w io.Writer, results []services.GroupResult) error {
	if _, err := fmt.Fprintln(w, "\nOutputs:"); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}
	for _, line := range StatusLines(results) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write outputs: %w", err)
		}
	}
	return nil
}
