package timer

import (
	"fmt"
	"time"
)

func split(d time.Duration) (hours, minutes, seconds int64) {
	total := int64(d / time.Second)
	return total / 3600, total / 60 % 60, total % 60
}

// FormatCoarse renders "07 mins" below an hour and "1:05 hrs" above.
func FormatCoarse(d time.Duration) string {
	if d <= 0 {
		return "0:00:00"
	}
	h, m, _ := split(d)
	if h < 1 {
		return fmt.Sprintf("%02d mins", m)
	}
	return fmt.Sprintf("%d:%02d hrs", h, m)
}

// FormatPrecise renders "7:03" below an hour and "1:05:09" above.
func FormatPrecise(d time.Duration) string {
	if d <= 0 {
		return "0:00"
	}
	h, m, s := split(d)
	if h < 1 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// FormatClock renders hours and minutes, "1:05".
func FormatClock(d time.Duration) string {
	if d <= 0 {
		return "0:00:00"
	}
	h, m, _ := split(d)
	return fmt.Sprintf("%d:%02d", h, m)
}
