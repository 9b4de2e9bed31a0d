package progress

import "time"

// NextStreak applies the streak rule for a completion on today given
// the previous login date. First ever completion starts the streak at
// 1. A gap of exactly one day extends the streak, a longer gap resets
// it to 1, and a second completion on the same day leaves it unchanged.
func NextStreak(current int, lastLogin, today string) int {
	if lastLogin == "" {
		return 1
	}
	switch d := daysApart(lastLogin, today); {
	case d == 1:
		return current + 1
	case d > 1:
		return 1
	default:
		return current
	}
}

// daysApart returns the absolute difference between two ledger dates,
// rounded up to the nearest whole day. Unparseable dates count as a
// multi-day gap so a corrupt lastLoginDate resets rather than extends
// the streak.
func daysApart(a, b string) int {
	ta, errA := time.Parse(DayFormat, a)
	tb, errB := time.Parse(DayFormat, b)
	if errA != nil || errB != nil {
		return 2
	}
	diff := tb.Sub(ta)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}
