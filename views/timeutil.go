package views

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate renders a timestamp as a short calendar date, e.g.
// "Feb 15, 2024".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatRelativeTime renders how long ago t was relative to now:
// under a minute "Just now", under an hour minutes, under a day hours,
// under a week days, and beyond that the calendar date.
func FormatRelativeTime(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	if seconds < 60 {
		return "Just now"
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm ago", seconds/60)
	}
	if seconds < 86400 {
		return fmt.Sprintf("%dh ago", seconds/3600)
	}
	if seconds < 604800 {
		return fmt.Sprintf("%dd ago", seconds/86400)
	}
	return FormatDate(t)
}

// Initials derives up to two uppercase initials from a display name,
// used as the avatar fallback.
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		first := []rune(word)[0]
		initials = append(initials, first)
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}
