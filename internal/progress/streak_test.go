package progress

import "testing"

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		lastLogin string
		today     string
		want      int
	}{
		{"first ever completion", 0, "", "2026-09-01", 1},
		{"consecutive day extends", 4, "2026-08-31", "2026-09-01", 5},
		{"two day gap resets", 4, "2026-08-30", "2026-09-01", 1},
		{"long gap resets", 12, "2026-01-15", "2026-09-01", 1},
		{"same day unchanged", 4, "2026-09-01", "2026-09-01", 4},
		{"month boundary extends", 7, "2026-08-31", "2026-09-01", 8},
		{"year boundary extends", 2, "2025-12-31", "2026-01-01", 3},
		{"corrupt last login resets", 9, "not-a-date", "2026-09-01", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextStreak(tt.current, tt.lastLogin, tt.today)
			if got != tt.want {
				t.Errorf("NextStreak(%d, %q, %q) = %d, want %d",
					tt.current, tt.lastLogin, tt.today, got, tt.want)
			}
		})
	}
}

func TestDaysApart(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2026-09-01", "2026-09-01", 0},
		{"2026-08-31", "2026-09-01", 1},
		{"2026-09-01", "2026-08-31", 1},
		{"2026-08-25", "2026-09-01", 7},
	}
	for _, tt := range tests {
		if got := daysApart(tt.a, tt.b); got != tt.want {
			t.Errorf("daysApart(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
