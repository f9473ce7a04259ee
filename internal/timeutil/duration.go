package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ZeroDuration is the canonical zero value for pause-duration cells.
const ZeroDuration = "00:00:00"

// ParseDuration converts an HH:MM:SS string to whole seconds. Duration cells
// are best-effort audit data, so empty or malformed input yields zero rather
// than an error.
func ParseDuration(text string) int {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 3 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 {
		return 0
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil || s < 0 {
		return 0
	}
	return h*3600 + m*60 + s
}

// FormatDuration renders whole seconds as zero-padded HH:MM:SS. Hours are
// unbounded, not wrapped at 24. Negative input renders as zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// SumDurations adds two HH:MM:SS strings, tolerating malformed operands as
// zero.
func SumDurations(a, b string) string {
	return FormatDuration(ParseDuration(a) + ParseDuration(b))
}
