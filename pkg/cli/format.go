package cli

import "fmt"

// FormatDuration formats seconds to a human readable string
func FormatDuration(secs float64) string {
	if secs < 1 {
		return fmt.Sprintf("%dms", int(secs*1000))
	}
	if secs < 60 {
		return fmt.Sprintf("%.1fs", secs)
	}
	mins := int(secs / 60)
	secs -= float64(mins * 60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// FormatShape formats matrix dimensions as "rows×cols".
func FormatShape(rows, cols int) string {
	return fmt.Sprintf("%d×%d", rows, cols)
}
