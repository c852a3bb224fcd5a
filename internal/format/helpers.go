package format

import "fmt"

// FmtHours formats a model time in hours, e.g. "12.500h".
func FmtHours(v float64) string {
	return fmt.Sprintf("%.3fh", v)
}

// FmtSpan formats an inferred run span. Nil endpoints (an empty run)
// render as a dash.
func FmtSpan(start, end *float64) string {
	if start == nil || end == nil {
		return "-"
	}
	return FmtHours(*start) + " .. " + FmtHours(*end)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
