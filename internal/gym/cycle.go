package gym

import (
	"math"
	"time"
)

// CycleDurationDays is the length of every training cycle.
const CycleDurationDays = 30

// expiryWarningDays is the remaining-day threshold for the renewal banner.
const expiryWarningDays = 7

const hoursPerDay = 24

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / hoursPerDay))
}

func floorDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / hoursPerDay))
}

// evaluateCycle derives the lifecycle state of a cycle at a given instant.
// The caller guarantees EndDate is set.
func evaluateCycle(cycle Cycle, now time.Time) CycleCheck {
	start := cycle.StartDate
	if start.IsZero() {
		start = now
	}

	daysRemaining := ceilDays(cycle.EndDate.Sub(now))
	daysElapsed := floorDays(now.Sub(start))
	modifier, _ := weekModifierAt(start, now)

	check := CycleCheck{
		Status:        StatusActive,
		Cycle:         &cycle,
		DaysRemaining: daysRemaining,
		DaysElapsed:   daysElapsed,
		WeekModifier:  &modifier,
	}

	switch {
	case now.After(cycle.EndDate):
		check.Status = StatusExpired
		check.DaysRemaining = 0
	case daysRemaining <= expiryWarningDays:
		check.Status = StatusExpiringSoon
	}
	return check
}

// cycleProgress combines calendar progress with the stored session counters.
// DayPercent saturates at 100 once the calendar runs out.
func cycleProgress(cycle Cycle, now time.Time) CycleProgress {
	totalDays := ceilDays(cycle.EndDate.Sub(cycle.StartDate))
	daysElapsed := floorDays(now.Sub(cycle.StartDate))
	daysLeft := ceilDays(cycle.EndDate.Sub(now))
	if daysLeft < 0 {
		daysLeft = 0
	}

	dayPercent := 0
	if totalDays > 0 {
		dayPercent = int(math.Round(float64(daysElapsed) / float64(totalDays) * 100))
	}
	if dayPercent > 100 {
		dayPercent = 100
	}
	if dayPercent < 0 {
		dayPercent = 0
	}

	modifier, weekNumber := weekModifierAt(cycle.StartDate, now)

	return CycleProgress{
		Percent:          cycle.ProgressPercent,
		DayPercent:       dayPercent,
		Completed:        cycle.CompletedSessions,
		Total:            cycle.TotalSessions,
		DaysLeft:         daysLeft,
		DaysElapsed:      daysElapsed,
		WeekNumber:       weekNumber,
		WeekLabel:        modifier.Label,
		SetsMultiplier:   modifier.SetsMultiplier,
		WeightMultiplier: modifier.WeightMultiplier,
	}
}
