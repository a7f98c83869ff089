package gym

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jmorales/ciclofit/internal/docstore"
	"github.com/jmorales/ciclofit/internal/errors"
)

// ErrNoCycle is returned by operations that need an existing cycle.
var ErrNoCycle = errors.NewSentinel("no training cycle")

// ErrDayNotFound is returned when a routine day ID does not exist in the
// current cycle's routine.
var ErrDayNotFound = errors.NewSentinel("routine day not found")

// Service provides the training-cycle business logic: evaluations, routine
// generation, the 30-day cycle lifecycle, session tracking and statistics.
type Service struct {
	repos  *repositoryFactory
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	pending map[string][]Session
}

// NewService creates a gym service backed by the given document store.
func NewService(store docstore.Store, logger *slog.Logger) *Service {
	return &Service{
		repos:   newRepositoryFactory(store, logger),
		logger:  logger,
		now:     time.Now,
		pending: make(map[string][]Session),
	}
}

// WithClock replaces the time source. Tests use this to pin the calendar.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetEvaluation returns the stored evaluation for the user.
func (s *Service) GetEvaluation(ctx context.Context, userID string) (Evaluation, error) {
	return s.repos.evaluations.Get(ctx, userID)
}

// CheckCycleStatus evaluates the user's cycle against the clock. A missing or
// unreadable cycle document yields the no_cycle state instead of an error.
// When a cycle has just crossed its end date the stored status is updated to
// expired opportunistically.
func (s *Service) CheckCycleStatus(ctx context.Context, userID string) (CycleCheck, error) {
	noCycle := CycleCheck{
		Status: StatusNoCycle, Cycle: nil, DaysRemaining: 0, DaysElapsed: 0, WeekModifier: nil,
	}

	cycle, err := s.repos.cycles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return noCycle, nil
		}
		if isMalformedDocument(err) {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "stored cycle is malformed, treating as no cycle",
				slog.String("userID", userID), errors.SlogError(err))
			return noCycle, nil
		}
		return noCycle, fmt.Errorf("check cycle status: %w", err)
	}
	if cycle.EndDate.IsZero() {
		return noCycle, nil
	}

	check := evaluateCycle(cycle, s.now())

	if check.Status == StatusExpired && cycle.Status != StatusExpired {
		if _, err = s.repos.cycles.Update(ctx, userID, func(c *Cycle) (bool, error) {
			c.Status = StatusExpired
			return true, nil
		}); err != nil {
			// The next status check retries the write.
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to persist expired status",
				slog.String("userID", userID), errors.SlogError(err))
		}
	}

	return check, nil
}

// StartNewCycle saves the evaluation, generates a fresh routine and replaces
// the current cycle with a new 30-day one.
func (s *Service) StartNewCycle(ctx context.Context, userID string, eval Evaluation) (Cycle, error) {
	var cycle Cycle

	if err := s.repos.evaluations.Set(ctx, userID, eval); err != nil {
		return cycle, fmt.Errorf("start new cycle: %w", err)
	}

	now := s.now()
	routine := GenerateRoutine(eval, now)

	cycleNumber := 1
	if previous, err := s.repos.cycles.Get(ctx, userID); err == nil {
		cycleNumber = previous.CycleNumber + 1
	}

	cycle = Cycle{
		CycleNumber:       cycleNumber,
		StartDate:         now,
		EndDate:           now.AddDate(0, 0, CycleDurationDays),
		Status:            StatusActive,
		Routine:           routine,
		TotalSessions:     len(routine.Days) * (CycleDurationDays / 7),
		CompletedSessions: 0,
		ProgressPercent:   0,
		Evaluation:        eval,
	}

	if err := s.repos.cycles.Set(ctx, userID, cycle); err != nil {
		return cycle, fmt.Errorf("start new cycle: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "started new cycle",
		slog.String("userID", userID),
		slog.Int("cycleNumber", cycle.CycleNumber),
		slog.String("routine", routine.Name))

	return cycle, nil
}

// RenewCycle starts a fresh cycle from a new evaluation. Same as
// StartNewCycle; the previous routine is discarded.
func (s *Service) RenewCycle(ctx context.Context, userID string, eval Evaluation) (Cycle, error) {
	return s.StartNewCycle(ctx, userID, eval)
}

// ContinueCycle extends the current cycle by another 30 days from now,
// keeping the routine and cycle number.
func (s *Service) ContinueCycle(ctx context.Context, userID string) (Cycle, error) {
	cycle, err := s.repos.cycles.Update(ctx, userID, func(c *Cycle) (bool, error) {
		c.EndDate = s.now().AddDate(0, 0, CycleDurationDays)
		c.Status = StatusActive
		if c.CycleNumber == 0 {
			c.CycleNumber = 1
		}
		return true, nil
	})
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return cycle, errors.Wrap(ErrNoCycle, "continue cycle", slog.String("userID", userID))
		}
		return cycle, fmt.Errorf("continue cycle: %w", err)
	}
	return cycle, nil
}

// GetCycleProgress reports calendar and session progress for the current
// cycle. A missing cycle yields zero progress.
func (s *Service) GetCycleProgress(ctx context.Context, userID string) (CycleProgress, error) {
	var progress CycleProgress

	cycle, err := s.repos.cycles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return progress, nil
		}
		return progress, fmt.Errorf("get cycle progress: %w", err)
	}

	return cycleProgress(cycle, s.now()), nil
}

// SaveSession appends a session to the history and, when the cycle is
// active, bumps its completion counters. The save and the counter bump are
// two writes; a failure in between leaves the counter understated and is
// corrected by the next successful save.
func (s *Service) SaveSession(ctx context.Context, userID string, session Session) error {
	if _, err := s.repos.sessions.Add(ctx, userID, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	cycle, err := s.repos.cycles.Get(ctx, userID)
	if err != nil || cycle.Status != StatusActive {
		return nil
	}

	completed := cycle.CompletedSessions + 1
	total := cycle.TotalSessions
	if total == 0 {
		total = 1
	}
	percent := int(float64(completed)/float64(total)*100 + 0.5)

	if _, err = s.repos.cycles.Update(ctx, userID, func(c *Cycle) (bool, error) {
		c.CompletedSessions = completed
		c.ProgressPercent = percent
		return true, nil
	}); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to bump cycle counters",
			slog.String("userID", userID), errors.SlogError(err))
	}
	return nil
}

// ListSessions returns the full session history, newest first.
func (s *Service) ListSessions(ctx context.Context, userID string) ([]Session, error) {
	return s.repos.sessions.List(ctx, userID)
}

// SessionsOn returns the sessions recorded on the given calendar day.
func (s *Service) SessionsOn(ctx context.Context, userID string, date time.Time) ([]Session, error) {
	sessions, err := s.repos.sessions.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := date.Format("2006-01-02")
	var matched []Session
	for _, session := range sessions {
		if session.Date.Format("2006-01-02") == day {
			matched = append(matched, session)
		}
	}
	return matched, nil
}

// SessionsInMonth returns the sessions recorded in the given month, newest
// first.
func (s *Service) SessionsInMonth(ctx context.Context, userID string, year int, month time.Month) ([]Session, error) {
	sessions, err := s.repos.sessions.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	var matched []Session
	for _, session := range sessions {
		if session.Date.Year() == year && session.Date.Month() == month {
			matched = append(matched, session)
		}
	}
	return matched, nil
}

// UpdatePR records a new best weight for an exercise, appending to the
// record's history. History entries are never removed.
func (s *Service) UpdatePR(ctx context.Context, userID, exerciseID string, weightKg float64) (PersonalRecord, error) {
	today := s.now().Format("2006-01-02")

	record, err := s.repos.prs.Get(ctx, userID, exerciseID)
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		record = PersonalRecord{
			ExerciseID: exerciseID,
			Name:       "",
			WeightKg:   weightKg,
			Date:       today,
			History:    []PRRecord{{WeightKg: weightKg, Date: today}},
		}
	case err != nil:
		return record, fmt.Errorf("update personal record: %w", err)
	default:
		record.History = append(record.History, PRRecord{WeightKg: weightKg, Date: today})
		record.WeightKg = weightKg
		record.Date = today
	}

	if record.Name == "" {
		if exercise, ok := FindExercise(exerciseID); ok {
			record.Name = exercise.Name
		}
	}

	if err = s.repos.prs.Set(ctx, userID, record); err != nil {
		return record, fmt.Errorf("update personal record: %w", err)
	}
	return record, nil
}

// GetStats fetches sessions and personal records in parallel and aggregates
// the streak, week and all-time statistics.
func (s *Service) GetStats(ctx context.Context, userID string) (Stats, error) {
	var (
		sessions []Session
		prs      map[string]PersonalRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = s.repos.sessions.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		prs, err = s.repos.prs.List(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}

	now := s.now()
	return Stats{
		Sessions:    sessions,
		PRs:         prs,
		StreakWeeks: weeklyStreak(sessions, now),
		Week:        weekStats(sessions, now),
		AllTime:     allTimeStats(sessions, prs),
	}, nil
}

// PendingSessions returns sessions that could not be persisted yet.
func (s *Service) PendingSessions(userID string) []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Session(nil), s.pending[userID]...)
}

// FlushPendingSessions retries persisting buffered sessions. Sessions that
// fail again stay in the buffer.
func (s *Service) FlushPendingSessions(ctx context.Context, userID string) error {
	s.mu.Lock()
	buffered := s.pending[userID]
	delete(s.pending, userID)
	s.mu.Unlock()

	var errs []error
	for _, session := range buffered {
		if err := s.SaveSession(ctx, userID, session); err != nil {
			errs = append(errs, err)
			s.bufferSession(userID, session)
		}
	}
	return errors.Join(errs...)
}

// bufferSession keeps a session in memory after a failed save so that
// user-entered data is not lost.
func (s *Service) bufferSession(userID string, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = append(s.pending[userID], session)
}

// isMalformedDocument reports whether err stems from a stored document that
// no longer matches the expected shape.
func isMalformedDocument(err error) bool {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		parseErr  *time.ParseError
	)
	return errors.As(err, &typeErr) || errors.As(err, &syntaxErr) || errors.As(err, &parseErr)
}
