package schedule_test

import (
	"testing"
	"time"

	"github.com/mina-p1/Open-Bet/pkg/schedule"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"RFC3339 UTC", "2024-01-15T00:00:00Z", true},
		{"RFC3339 with offset", "2024-01-15T19:30:00-05:00", true},
		{"Empty string", "", false},
		{"Garbage", "not-a-time", false},
		{"Date only", "2024-01-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := schedule.ParseInstant(tt.raw)
			if ok != tt.ok {
				t.Errorf("ParseInstant(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
		})
	}
}

func TestDayOf(t *testing.T) {
	tests := []struct {
		name    string
		instant string
		want    string
	}{
		// 4:30 AM UTC is 11:30 PM Eastern the previous day
		{"Late UTC rolls back a day", "2024-01-15T04:30:00Z", "2024-01-14"},
		// 5:00 AM UTC is midnight Eastern, start of the new day
		{"Midnight Eastern boundary", "2024-01-15T05:00:00Z", "2024-01-15"},
		{"Afternoon tip-off", "2024-01-15T19:00:00Z", "2024-01-15"},
		// EDT in summer: 3:30 AM UTC is 11:30 PM Eastern the day before
		{"Daylight saving offset", "2024-07-10T03:30:00Z", "2024-07-09"},
		{"Daylight saving boundary", "2024-07-10T04:00:00Z", "2024-07-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, ok := schedule.ParseInstant(tt.instant)
			if !ok {
				t.Fatalf("failed to parse fixture %q", tt.instant)
			}

			if got := schedule.DayOf(instant); got != tt.want {
				t.Errorf("DayOf(%s) = %s, want %s", tt.instant, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	instant, ok := schedule.ParseInstant("2024-01-15T01:00:00Z")
	if !ok {
		t.Fatal("failed to parse fixture")
	}

	// 1:00 AM UTC is 8:00 PM Eastern Jan 14
	if !schedule.SameDay(instant, "2024-01-14") {
		t.Error("expected instant to fall on 2024-01-14 Eastern")
	}
	if schedule.SameDay(instant, "2024-01-15") {
		t.Error("instant should not fall on its UTC calendar date")
	}
}

func TestSameDayZeroInstant(t *testing.T) {
	if schedule.SameDay(time.Time{}, "0001-01-01") {
		t.Error("zero instant must match no date, not even its formatted value")
	}
	if schedule.SameDay(time.Time{}, "2024-01-15") {
		t.Error("zero instant must match no date")
	}
}

func TestNextPrevDay(t *testing.T) {
	tests := []struct {
		name string
		date string
		next string
		prev string
	}{
		{"Mid month", "2024-01-15", "2024-01-16", "2024-01-14"},
		{"Month rollover", "2024-01-31", "2024-02-01", "2024-01-30"},
		{"Year rollover", "2023-12-31", "2024-01-01", "2023-12-30"},
		{"Leap day", "2024-02-28", "2024-02-29", "2024-02-27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := schedule.NextDay(tt.date)
			if err != nil {
				t.Fatalf("NextDay error: %v", err)
			}
			if next != tt.next {
				t.Errorf("NextDay(%s) = %s, want %s", tt.date, next, tt.next)
			}

			prev, err := schedule.PrevDay(tt.date)
			if err != nil {
				t.Fatalf("PrevDay error: %v", err)
			}
			if prev != tt.prev {
				t.Errorf("PrevDay(%s) = %s, want %s", tt.date, prev, tt.prev)
			}
		})
	}

	t.Run("Invalid date", func(t *testing.T) {
		if _, err := schedule.NextDay("01/15/2024"); err == nil {
			t.Error("expected error for non-ISO date")
		}
	})
}

func TestValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "2023-12-31", "2024-02-29"}
	invalid := []string{"", "2024-1-5", "01/15/2024", "2024-02-30", "tomorrow"}

	for _, d := range valid {
		if !schedule.ValidDate(d) {
			t.Errorf("ValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if schedule.ValidDate(d) {
			t.Errorf("ValidDate(%q) = true, want false", d)
		}
	}
}
