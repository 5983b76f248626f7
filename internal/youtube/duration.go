package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// NormalizeDuration converts an ISO-8601 duration of the form PT[nH][nM][nS]
// into the display form used throughout the catalog: "H:MM:SS" when hours are
// present, "M:SS" when only minutes are, and "0:SS" otherwise. Components of
// 60 or more carry into the next unit, so PT90S becomes "1:30". Input that
// does not match the grammar normalizes to "0:00". Never fails.
func NormalizeDuration(iso string) string {
	m := isoDurationPattern.FindStringSubmatch(iso)
	if m == nil {
		return "0:00"
	}

	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))

	minutes += seconds / 60
	seconds %= 60
	hours += minutes / 60
	minutes %= 60

	switch {
	case m[1] != "" || hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	case m[2] != "" || minutes > 0:
		return fmt.Sprintf("%d:%02d", minutes, seconds)
	default:
		return fmt.Sprintf("0:%02d", seconds)
	}
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
