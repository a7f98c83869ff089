package gym

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jmorales/ciclofit/internal/errors"
)

// RestPresets are the selectable rest timer durations in seconds.
var RestPresets = []int{15, 30, 45, 60, 90, 120}

// SetField names a mutable field of a working set.
type SetField string

const (
	SetFieldReps   SetField = "reps"
	SetFieldWeight SetField = "weight"
	SetFieldRPE    SetField = "rpe"
)

// WorkingSet is the in-memory state of one set during a live session.
type WorkingSet struct {
	SetNumber int
	Reps      int
	WeightKg  float64
	Completed bool
	RPE       *float64
}

// ExerciseState is the in-memory state of one exercise during a live
// session. Completed is derived: AND over all set completion flags.
type ExerciseState struct {
	Index     int
	Plan      PlannedExercise
	Catalog   *Exercise
	Sets      []WorkingSet
	Expanded  bool
	Completed bool
}

// SessionTracker holds the working state of one live workout session. It is
// not persisted until FinishSession; abandoning the tracker loses the
// session. Trackers are meant to be driven from a single goroutine.
type SessionTracker struct {
	svc       *Service
	userID    string
	day       Day
	exercises []ExerciseState
	startedAt time.Time
	now       func() time.Time
	finished  bool
	rest      *RestTimer
	onFinish  func(Session)
}

// OpenSession starts a live session for one day of the current cycle's
// routine. Returns ErrNoCycle without a cycle and ErrDayNotFound when dayID
// does not name a day of the routine.
func (s *Service) OpenSession(ctx context.Context, userID, dayID string) (*SessionTracker, error) {
	cycle, err := s.repos.cycles.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(ErrNoCycle, "open session", slog.String("userID", userID))
	}

	dayIndex := slices.IndexFunc(cycle.Routine.Days, func(d Day) bool { return d.ID == dayID })
	if dayIndex < 0 {
		return nil, errors.Wrap(ErrDayNotFound, "open session", slog.String("dayID", dayID))
	}

	return s.newSessionTracker(userID, cycle.Routine.Days[dayIndex]), nil
}

func (s *Service) newSessionTracker(userID string, day Day) *SessionTracker {
	exercises := make([]ExerciseState, 0, len(day.Exercises))
	for idx, plan := range day.Exercises {
		setCount := plan.Sets
		if setCount <= 0 {
			setCount = 3
		}
		sets := make([]WorkingSet, setCount)
		for i := range sets {
			sets[i] = WorkingSet{
				SetNumber: i + 1,
				Reps:      0,
				WeightKg:  plan.WeightKg,
				Completed: false,
				RPE:       nil,
			}
		}

		var catalogEntry *Exercise
		if exercise, ok := FindExercise(plan.ExerciseID); ok {
			catalogEntry = &exercise
		}

		exercises = append(exercises, ExerciseState{
			Index:     idx,
			Plan:      plan,
			Catalog:   catalogEntry,
			Sets:      sets,
			Expanded:  idx == 0,
			Completed: false,
		})
	}

	return &SessionTracker{
		svc:       s,
		userID:    userID,
		day:       day,
		exercises: exercises,
		startedAt: s.now(),
		now:       s.now,
		finished:  false,
		rest:      nil,
		onFinish:  nil,
	}
}

// Day returns the routine day this session is tracking.
func (t *SessionTracker) Day() Day {
	return t.day
}

// Exercises returns a snapshot of the per-exercise working state.
func (t *SessionTracker) Exercises() []ExerciseState {
	snapshot := make([]ExerciseState, len(t.exercises))
	copy(snapshot, t.exercises)
	for i := range snapshot {
		snapshot[i].Sets = slices.Clone(snapshot[i].Sets)
	}
	return snapshot
}

// Elapsed reports the running session clock.
func (t *SessionTracker) Elapsed() time.Duration {
	return t.now().Sub(t.startedAt)
}

// OnFinish registers a callback invoked with the built session record when
// the session finishes, regardless of persistence outcome.
func (t *SessionTracker) OnFinish(callback func(Session)) {
	t.onFinish = callback
}

func (t *SessionTracker) set(exerciseIndex, setIndex int) (*WorkingSet, *ExerciseState, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(t.exercises) {
		return nil, nil, fmt.Errorf("exercise index %d out of range", exerciseIndex)
	}
	exercise := &t.exercises[exerciseIndex]
	if setIndex < 0 || setIndex >= len(exercise.Sets) {
		return nil, nil, fmt.Errorf("set index %d out of range", setIndex)
	}
	return &exercise.Sets[setIndex], exercise, nil
}

// UpdateSet overwrites one field of one set and recomputes the exercise
// completion flag.
func (t *SessionTracker) UpdateSet(exerciseIndex, setIndex int, field SetField, value float64) error {
	workingSet, exercise, err := t.set(exerciseIndex, setIndex)
	if err != nil {
		return err
	}

	switch field {
	case SetFieldReps:
		workingSet.Reps = int(value)
	case SetFieldWeight:
		workingSet.WeightKg = value
	case SetFieldRPE:
		rpe := value
		workingSet.RPE = &rpe
	default:
		return fmt.Errorf("unknown set field %q", field)
	}

	exercise.Completed = allSetsCompleted(exercise.Sets)
	return nil
}

// ToggleSetComplete flips one set's completion flag and recomputes the
// exercise completion flag.
func (t *SessionTracker) ToggleSetComplete(exerciseIndex, setIndex int) error {
	workingSet, exercise, err := t.set(exerciseIndex, setIndex)
	if err != nil {
		return err
	}
	workingSet.Completed = !workingSet.Completed
	exercise.Completed = allSetsCompleted(exercise.Sets)
	return nil
}

// ToggleExpand flips the expanded/collapsed flag of one exercise.
func (t *SessionTracker) ToggleExpand(exerciseIndex int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(t.exercises) {
		return fmt.Errorf("exercise index %d out of range", exerciseIndex)
	}
	t.exercises[exerciseIndex].Expanded = !t.exercises[exerciseIndex].Expanded
	return nil
}

// TotalVolume sums reps×weight over completed sets only.
func (t *SessionTracker) TotalVolume() float64 {
	total := 0.0
	for _, exercise := range t.exercises {
		total += exerciseVolume(exercise.Sets)
	}
	return total
}

// StartRestTimer starts (or restarts) the rest countdown. Does not affect
// the session clock or set editing.
func (t *SessionTracker) StartRestTimer(seconds int) *RestTimer {
	t.rest = newRestTimer(seconds)
	return t.rest
}

// RestTimer returns the active rest timer, or nil.
func (t *SessionTracker) RestTimer() *RestTimer {
	return t.rest
}

// SkipRest discards the active rest timer.
func (t *SessionTracker) SkipRest() {
	t.rest = nil
}

// FinishSession stops the clock, builds the session record and attempts to
// persist it. A persistence failure does not lose the session: the record is
// buffered for a later retry and still returned to the caller.
func (t *SessionTracker) FinishSession(ctx context.Context) (Session, error) {
	if t.finished {
		return Session{}, errors.New("session already finished")
	}
	t.finished = true

	session := t.buildSession()

	if err := t.svc.SaveSession(ctx, t.userID, session); err != nil {
		t.svc.logger.LogAttrs(ctx, slog.LevelWarn, "failed to save session, buffering",
			slog.String("userID", t.userID), errors.SlogError(err))
		t.svc.bufferSession(t.userID, session)
	}

	if t.onFinish != nil {
		t.onFinish(session)
	}
	return session, nil
}

// buildSession converts the working state into the immutable history record.
// Only completed sets survive; a session counts as completed when at least
// half of its exercises are done.
func (t *SessionTracker) buildSession() Session {
	var (
		results            []ExerciseResult
		completedExercises []string
		totalVolume        float64
	)

	for _, exercise := range t.exercises {
		var completedSets []SetResult
		for _, workingSet := range exercise.Sets {
			if !workingSet.Completed {
				continue
			}
			completedSets = append(completedSets, SetResult{
				SetNumber: workingSet.SetNumber,
				Reps:      workingSet.Reps,
				WeightKg:  workingSet.WeightKg,
				Completed: true,
				RPE:       workingSet.RPE,
			})
		}

		volume := exerciseVolume(exercise.Sets)
		totalVolume += volume

		name := exercise.Plan.Name
		if name == "" && exercise.Catalog != nil {
			name = exercise.Catalog.Name
		}

		results = append(results, ExerciseResult{
			ExerciseID:  exercise.Plan.ExerciseID,
			Name:        name,
			Sets:        completedSets,
			TotalVolume: volume,
			Completed:   exercise.Completed,
		})
		if exercise.Completed {
			completedExercises = append(completedExercises, exercise.Plan.ExerciseID)
		}
	}

	return Session{
		Date:               t.now(),
		DayID:              t.day.ID,
		DayName:            t.day.Name,
		Exercises:          results,
		TotalVolume:        totalVolume,
		DurationSeconds:    int(t.Elapsed().Seconds()),
		CompletedExercises: completedExercises,
		Completed:          len(completedExercises)*2 >= len(t.exercises) && len(t.exercises) > 0,
	}
}

func allSetsCompleted(sets []WorkingSet) bool {
	for _, workingSet := range sets {
		if !workingSet.Completed {
			return false
		}
	}
	return true
}

func exerciseVolume(sets []WorkingSet) float64 {
	volume := 0.0
	for _, workingSet := range sets {
		if workingSet.Completed {
			volume += float64(workingSet.Reps) * workingSet.WeightKg
		}
	}
	return volume
}
