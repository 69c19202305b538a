package catalog

import "fmt"

// FormatCount renders a service count for display: "999+" below a thousand,
// "1.5k+" from there on.
func FormatCount(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d+", n)
	}
	return fmt.Sprintf("%.1fk+", float64(n)/1000)
}
