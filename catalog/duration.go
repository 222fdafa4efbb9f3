package catalog

import "fmt"

// FormatDuration renders a play length in whole seconds as the catalog's
// display format: "M.SS", or "H.MM.SS" once the length reaches an hour.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d.%02d.%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d.%02d", minutes, secs)
}
