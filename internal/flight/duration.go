package flight

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDurationMinutes converts an ISO-8601 duration of the PT<h>H<m>M shape
// ("PT2H15M", "PT45M", "PT3H") into total minutes. A missing hour or minute
// component counts as zero; malformed input degrades to 0 rather than
// failing, so one bad field never blocks a result set.
func ParseDurationMinutes(text string) int {
	rest, ok := strings.CutPrefix(text, "PT")
	if !ok {
		return 0
	}

	hours := 0
	minutes := 0

	if i := strings.IndexByte(rest, 'H'); i >= 0 {
		n, err := strconv.Atoi(rest[:i])
		if err != nil {
			return 0
		}
		hours = n
		rest = rest[i+1:]
	}

	if i := strings.IndexByte(rest, 'M'); i >= 0 {
		n, err := strconv.Atoi(rest[:i])
		if err != nil {
			return 0
		}
		minutes = n
	}

	if hours < 0 || minutes < 0 {
		return 0
	}

	return hours*60 + minutes
}

// FormatDurationLabel renders minutes for display: "0m", "45m", "3h",
// "2h 15m".
func FormatDurationLabel(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
