package gym

import (
	"testing"
	"time"
)

func testCycle(start time.Time) Cycle {
	return Cycle{
		CycleNumber:       1,
		StartDate:         start,
		EndDate:           start.AddDate(0, 0, CycleDurationDays),
		Status:            StatusActive,
		TotalSessions:     16,
		CompletedSessions: 4,
		ProgressPercent:   25,
	}
}

func TestEvaluateCycle(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		now               time.Time
		wantStatus        CycleStatus
		wantDaysRemaining int
		wantDaysElapsed   int
	}{
		{
			name:              "freshly started",
			now:               start,
			wantStatus:        StatusActive,
			wantDaysRemaining: 30,
			wantDaysElapsed:   0,
		},
		{
			name:              "mid cycle",
			now:               start.AddDate(0, 0, 10),
			wantStatus:        StatusActive,
			wantDaysRemaining: 20,
			wantDaysElapsed:   10,
		},
		{
			name:              "seven days left warns",
			now:               start.AddDate(0, 0, 23),
			wantStatus:        StatusExpiringSoon,
			wantDaysRemaining: 7,
			wantDaysElapsed:   23,
		},
		{
			name:              "partial days round up",
			now:               start.AddDate(0, 0, 27).Add(-6 * time.Hour),
			wantStatus:        StatusExpiringSoon,
			wantDaysRemaining: 4,
			wantDaysElapsed:   26,
		},
		{
			name:              "past the end date",
			now:               start.AddDate(0, 0, 31),
			wantStatus:        StatusExpired,
			wantDaysRemaining: 0,
			wantDaysElapsed:   31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			check := evaluateCycle(testCycle(start), tt.now)
			if check.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", check.Status, tt.wantStatus)
			}
			if check.DaysRemaining != tt.wantDaysRemaining {
				t.Errorf("days remaining = %d, want %d", check.DaysRemaining, tt.wantDaysRemaining)
			}
			if check.DaysElapsed != tt.wantDaysElapsed {
				t.Errorf("days elapsed = %d, want %d", check.DaysElapsed, tt.wantDaysElapsed)
			}
			if check.Cycle == nil {
				t.Error("cycle missing from check")
			}
			if check.WeekModifier == nil {
				t.Error("week modifier missing from check")
			}
		})
	}
}

func TestCycleProgress(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		now            time.Time
		wantDayPercent int
		wantDaysLeft   int
		wantWeekNumber int
		wantWeekLabel  string
	}{
		{
			name:           "start of cycle",
			now:            start,
			wantDayPercent: 0,
			wantDaysLeft:   30,
			wantWeekNumber: 1,
			wantWeekLabel:  "Adaptación",
		},
		{
			name:           "halfway",
			now:            start.AddDate(0, 0, 15),
			wantDayPercent: 50,
			wantDaysLeft:   15,
			wantWeekNumber: 3,
			wantWeekLabel:  "Sobrecarga",
		},
		{
			name:           "past the end saturates at 100",
			now:            start.AddDate(0, 0, 40),
			wantDayPercent: 100,
			wantDaysLeft:   0,
			wantWeekNumber: 4,
			wantWeekLabel:  "Descarga",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			progress := cycleProgress(testCycle(start), tt.now)
			if progress.DayPercent != tt.wantDayPercent {
				t.Errorf("day percent = %d, want %d", progress.DayPercent, tt.wantDayPercent)
			}
			if progress.DaysLeft != tt.wantDaysLeft {
				t.Errorf("days left = %d, want %d", progress.DaysLeft, tt.wantDaysLeft)
			}
			if progress.WeekNumber != tt.wantWeekNumber {
				t.Errorf("week number = %d, want %d", progress.WeekNumber, tt.wantWeekNumber)
			}
			if progress.WeekLabel != tt.wantWeekLabel {
				t.Errorf("week label = %q, want %q", progress.WeekLabel, tt.wantWeekLabel)
			}
			if progress.Percent != 25 || progress.Completed != 4 || progress.Total != 16 {
				t.Errorf("session counters not carried through: %+v", progress)
			}
		})
	}
}
