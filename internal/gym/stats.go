package gym

import (
	"sort"
	"time"
)

// weekStart returns the start of the calendar week containing t. Weeks start
// on Sunday.
func weekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// weeklyStreak counts consecutive calendar weeks, ending at the current one,
// that contain at least one session. A gap week breaks the streak.
func weeklyStreak(sessions []Session, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	weeks := make(map[string]struct{})
	for _, session := range sessions {
		weeks[weekStart(session.Date).Format("2006-01-02")] = struct{}{}
	}

	sorted := make([]string, 0, len(weeks))
	for week := range weeks {
		sorted = append(sorted, week)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	streak := 0
	check := weekStart(now)
	for _, weekStr := range sorted {
		week, err := time.Parse("2006-01-02", weekStr)
		if err != nil {
			continue
		}
		diff := check.Sub(week).Hours() / hoursPerDay
		if diff < 0 {
			diff = -diff
		}
		if diff > 7 {
			break
		}
		streak++
		check = check.AddDate(0, 0, -7)
	}
	return streak
}

// weekStats aggregates the sessions of the current calendar week.
func weekStats(sessions []Session, now time.Time) WeekStats {
	start := weekStart(now)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	stats := WeekStats{Sessions: 0, TotalVolume: 0, TopExercise: "—"}

	// Insertion order breaks count ties in favor of the first exercise seen.
	counts := make(map[string]int)
	var order []string

	for _, session := range sessions {
		if session.Date.Before(start) {
			continue
		}
		stats.Sessions++
		stats.TotalVolume += session.TotalVolume
		for _, exercise := range session.Exercises {
			name := exercise.Name
			if name == "" {
				name = session.DayName
			}
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	best := 0
	for _, name := range order {
		if counts[name] > best {
			best = counts[name]
			stats.TopExercise = name
		}
	}
	return stats
}

// allTimeStats aggregates the whole history plus the sum of current PR
// weights.
func allTimeStats(sessions []Session, prs map[string]PersonalRecord) AllTimeStats {
	stats := AllTimeStats{Sessions: len(sessions), TotalVolume: 0, PRTotal: 0}
	for _, session := range sessions {
		stats.TotalVolume += session.TotalVolume
	}
	for _, record := range prs {
		stats.PRTotal += record.WeightKg
	}
	return stats
}
