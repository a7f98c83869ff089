package gym

import "time"

// Goal is the training objective picked in the evaluation.
type Goal string

const (
	GoalStrength    Goal = "fuerza"
	GoalHypertrophy Goal = "hipertrofia"
	GoalEndurance   Goal = "resistencia"
	GoalDefinition  Goal = "definicion"
	GoalWellness    Goal = "bienestar"
)

// Experience is the self-reported training level.
type Experience string

const (
	ExperienceBeginner     Experience = "principiante"
	ExperienceIntermediate Experience = "intermedio"
	ExperienceAdvanced     Experience = "avanzado"
)

// EquipmentTier describes the equipment available to the user. Each tier is a
// superset of the previous one.
type EquipmentTier string

const (
	TierBodyweight       EquipmentTier = "cuerpo libre"
	TierDumbbells        EquipmentTier = "mancuernas"
	TierDumbbellsBarbell EquipmentTier = "mancuernas_y_barra"
	TierFullGym          EquipmentTier = "gym_completo"
)

// MovementType classifies how an exercise loads the muscle.
type MovementType string

const (
	MovementCompound  MovementType = "compuesto"
	MovementIsolation MovementType = "aislamiento"
	MovementStatic    MovementType = "estático"
)

// Exercise is a catalog entry. SetsReps and RestSeconds are keyed by goal;
// a missing goal falls back to the generator defaults.
type Exercise struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	NameEn           string            `json:"nameEn"`
	PrimaryMuscles   []string          `json:"musclesPrimary"`
	SecondaryMuscles []string          `json:"musclesSecondary"`
	Equipment        []string          `json:"equipment"`
	Difficulty       Experience        `json:"difficulty"`
	Movement         MovementType      `json:"type"`
	Tips             []string          `json:"tips"`
	SetsReps         map[Goal]string   `json:"setsReps"`
	RestSeconds      map[Goal]int      `json:"rest"`
}

// Evaluation captures the answers that drive routine generation.
type Evaluation struct {
	Goal            Goal          `json:"goal"`
	Experience      Experience    `json:"experience"`
	DaysPerWeek     int           `json:"daysPerWeek"`
	Equipment       EquipmentTier `json:"equipment"`
	SessionMinutes  int           `json:"sessionDuration"`
	PriorityMuscles []string      `json:"priorityMuscles"`
	InjuryNotes     string        `json:"injuryNotes"`
}

// WeekModifier scales volume and load for one week of the cycle.
type WeekModifier struct {
	Week             int     `json:"week"`
	Label            string  `json:"label"`
	SetsMultiplier   float64 `json:"setsMultiplier"`
	WeightMultiplier float64 `json:"weightMultiplier"`
}

// PlannedExercise is one prescribed exercise inside a routine day.
type PlannedExercise struct {
	ExerciseID       string       `json:"exerciseId"`
	Name             string       `json:"name"`
	NameEn           string       `json:"nameEn"`
	Movement         MovementType `json:"type"`
	PrimaryMuscles   []string     `json:"musclesPrimary"`
	SecondaryMuscles []string     `json:"musclesSecondary"`
	Sets             int          `json:"sets"`
	Reps             string       `json:"reps"`
	RestSeconds      int          `json:"rest"`
	WeightKg         float64      `json:"weight"`
	RPE              string       `json:"rpe"`
	Tips             []string     `json:"tips"`
	Equipment        []string     `json:"equipment"`
}

// Day is one training day of the routine.
type Day struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Muscles          []string          `json:"muscles"`
	Exercises        []PlannedExercise `json:"exercises"`
	EstimatedMinutes int               `json:"estimatedDuration"`
	Periodization    []WeekModifier    `json:"periodization"`
}

// Routine is a generated training plan for one cycle.
type Routine struct {
	Name             string         `json:"name"`
	Goal             Goal           `json:"goal"`
	DaysPerWeek      int            `json:"daysPerWeek"`
	Days             []Day          `json:"days"`
	WeeklySchedule   []string       `json:"weeklySchedule"`
	Periodization    []WeekModifier `json:"periodization"`
	GeneratedAt      time.Time      `json:"generatedAt"`
	AlgorithmVersion string         `json:"algorithmVersion"`
}

// CycleStatus is the lifecycle state of a training cycle.
type CycleStatus string

const (
	StatusNoCycle      CycleStatus = "no_cycle"
	StatusActive       CycleStatus = "active"
	StatusExpiringSoon CycleStatus = "expiring_soon"
	StatusExpired      CycleStatus = "expired"
)

// Cycle is the persisted 30-day training cycle.
type Cycle struct {
	CycleNumber       int         `json:"cycleNumber"`
	StartDate         time.Time   `json:"startDate"`
	EndDate           time.Time   `json:"endDate"`
	Status            CycleStatus `json:"status"`
	Routine           Routine     `json:"routine"`
	TotalSessions     int         `json:"totalSessions"`
	CompletedSessions int         `json:"completedSessions"`
	ProgressPercent   int         `json:"progressPercent"`
	Evaluation        Evaluation  `json:"evaluation"`
}

// CycleCheck is the result of evaluating a cycle against the clock.
type CycleCheck struct {
	Status        CycleStatus   `json:"status"`
	Cycle         *Cycle        `json:"cycle,omitempty"`
	DaysRemaining int           `json:"daysRemaining"`
	DaysElapsed   int           `json:"daysElapsed"`
	WeekModifier  *WeekModifier `json:"weekModifier,omitempty"`
}

// CycleProgress combines calendar progress with session completion counters.
type CycleProgress struct {
	Percent          int     `json:"percent"`
	DayPercent       int     `json:"dayPercent"`
	Completed        int     `json:"completed"`
	Total            int     `json:"total"`
	DaysLeft         int     `json:"daysLeft"`
	DaysElapsed      int     `json:"daysElapsed"`
	WeekNumber       int     `json:"weekNumber"`
	WeekLabel        string  `json:"weekLabel"`
	SetsMultiplier   float64 `json:"setsMultiplier"`
	WeightMultiplier float64 `json:"weightMultiplier"`
}

// SetResult is one performed set inside a tracked session.
type SetResult struct {
	SetNumber int      `json:"setNumber"`
	Reps      int      `json:"reps"`
	WeightKg  float64  `json:"weight"`
	Completed bool     `json:"completed"`
	RPE       *float64 `json:"rpe"`
}

// ExerciseResult is the per-exercise part of a finished session. Sets holds
// only the completed sets.
type ExerciseResult struct {
	ExerciseID  string      `json:"exerciseId"`
	Name        string      `json:"name"`
	Sets        []SetResult `json:"sets"`
	TotalVolume float64     `json:"totalVolume"`
	Completed   bool        `json:"completed"`
}

// Session is a persisted workout session.
type Session struct {
	Date               time.Time        `json:"date"`
	DayID              string           `json:"dayId"`
	DayName            string           `json:"dayName"`
	Exercises          []ExerciseResult `json:"exercises"`
	TotalVolume        float64          `json:"totalVolume"`
	DurationSeconds    int              `json:"duration"`
	CompletedExercises []string         `json:"completedExercises"`
	Completed          bool             `json:"completed"`
}

// PRRecord is one historical entry of a personal record.
type PRRecord struct {
	WeightKg float64 `json:"weight"`
	Date     string  `json:"date"`
}

// PersonalRecord is the best lift for one exercise with its history. Dates
// use the YYYY-MM-DD format.
type PersonalRecord struct {
	ExerciseID string     `json:"exerciseId"`
	Name       string     `json:"name"`
	WeightKg   float64    `json:"weight"`
	Date       string     `json:"date"`
	History    []PRRecord `json:"history"`
}

// WeekStats summarises the current calendar week. Weeks start on Sunday.
type WeekStats struct {
	Sessions    int     `json:"sessions"`
	TotalVolume float64 `json:"totalVolume"`
	TopExercise string  `json:"topExercise"`
}

// AllTimeStats summarises the whole training history.
type AllTimeStats struct {
	Sessions    int     `json:"totalSessions"`
	TotalVolume float64 `json:"totalVolume"`
	PRTotal     float64 `json:"prTotal"`
}

// Stats is the aggregated view returned by GetStats.
type Stats struct {
	Sessions    []Session                 `json:"sessions"`
	PRs         map[string]PersonalRecord `json:"prs"`
	StreakWeeks int                       `json:"streakWeeks"`
	Week        WeekStats                 `json:"week"`
	AllTime     AllTimeStats              `json:"allTime"`
}
