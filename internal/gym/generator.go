package gym

import (
	"slices"
	"sort"
	"strings"
	"time"
)

// algorithmVersion tags generated routines so old plans can be migrated.
const algorithmVersion = "2.0"

// splitTemplate is a weekly split with its day structure and schedule.
// Schedule entries are day IDs or "rest".
type splitTemplate struct {
	name     string
	days     []dayTemplate
	schedule []string
}

type dayTemplate struct {
	id      string
	name    string
	muscles []string
}

// splits maps training days per week to a split template. Out-of-range
// values fall back to the 3-day full body split.
var splits = map[int]splitTemplate{
	2: {
		name: "Full Body 2x",
		days: []dayTemplate{
			{id: "FB_A", name: "Full Body A", muscles: []string{"pecho", "espalda", "piernas", "hombros"}},
			{id: "FB_B", name: "Full Body B", muscles: []string{"espalda", "piernas", "pecho", "hombros"}},
		},
		schedule: []string{"A", "rest", "B", "rest", "rest", "rest", "rest"},
	},
	3: {
		name: "Full Body 3x",
		days: []dayTemplate{
			{id: "FB_A", name: "Full Body A", muscles: []string{"pecho", "espalda", "piernas", "hombros", "biceps"}},
			{id: "FB_B", name: "Full Body B", muscles: []string{"piernas", "pecho", "espalda", "hombros", "triceps"}},
			{id: "FB_C", name: "Full Body C", muscles: []string{"espalda", "piernas", "pecho", "hombros", "abdomen"}},
		},
		schedule: []string{"A", "rest", "B", "rest", "C", "rest", "rest"},
	},
	4: {
		name: "Upper / Lower 4x",
		days: []dayTemplate{
			{id: "UPPER_A", name: "Upper A — Pecho/Espalda", muscles: []string{"pecho", "espalda", "hombros", "biceps"}},
			{id: "LOWER_A", name: "Lower A — Cuádriceps", muscles: []string{"piernas", "abdomen"}},
			{id: "UPPER_B", name: "Upper B — Hombros/Brazos", muscles: []string{"hombros", "espalda", "pecho", "triceps"}},
			{id: "LOWER_B", name: "Lower B — Isquio/Glúteos", muscles: []string{"piernas", "abdomen"}},
		},
		schedule: []string{"UPPER_A", "LOWER_A", "rest", "UPPER_B", "LOWER_B", "rest", "rest"},
	},
	5: {
		name: "Push / Pull / Legs + Upper / Lower",
		days: []dayTemplate{
			{id: "PUSH", name: "Push — Pecho/Hombros/Tríceps", muscles: []string{"pecho", "hombros", "triceps"}},
			{id: "PULL", name: "Pull — Espalda/Bíceps", muscles: []string{"espalda", "biceps"}},
			{id: "LEGS", name: "Legs — Piernas/Glúteos", muscles: []string{"piernas", "abdomen"}},
			{id: "UPPER", name: "Upper — Hombros/Brazos", muscles: []string{"hombros", "biceps", "triceps", "abdomen"}},
			{id: "LOWER", name: "Lower — Piernas completo", muscles: []string{"piernas", "abdomen"}},
		},
		schedule: []string{"PUSH", "PULL", "LEGS", "rest", "UPPER", "LOWER", "rest"},
	},
	6: {
		name: "Push / Pull / Legs 2x (PPL)",
		days: []dayTemplate{
			{id: "PUSH_A", name: "Push A — Énfasis Pecho", muscles: []string{"pecho", "hombros", "triceps"}},
			{id: "PULL_A", name: "Pull A — Énfasis Espalda", muscles: []string{"espalda", "biceps"}},
			{id: "LEGS_A", name: "Legs A — Énfasis Cuádriceps", muscles: []string{"piernas", "abdomen"}},
			{id: "PUSH_B", name: "Push B — Énfasis Hombros", muscles: []string{"hombros", "pecho", "triceps"}},
			{id: "PULL_B", name: "Pull B — Énfasis Dorsal", muscles: []string{"espalda", "biceps"}},
			{id: "LEGS_B", name: "Legs B — Énfasis Isquiotibiales", muscles: []string{"piernas", "abdomen"}},
		},
		schedule: []string{"PUSH_A", "PULL_A", "LEGS_A", "rest", "PUSH_B", "PULL_B", "LEGS_B"},
	},
}

type repParams struct {
	reps        string
	rpe         string
	restSeconds int
}

// repRanges maps goal to prescription defaults. Unknown goals fall back to
// hypertrophy.
var repRanges = map[Goal]repParams{
	GoalStrength:    {reps: "3-5", rpe: "8-9", restSeconds: 180},
	GoalHypertrophy: {reps: "8-12", rpe: "7-8", restSeconds: 90},
	GoalEndurance:   {reps: "15-20", rpe: "6-7", restSeconds: 45},
	GoalDefinition:  {reps: "12-15", rpe: "7-8", restSeconds: 60},
	GoalWellness:    {reps: "10-15", rpe: "6-7", restSeconds: 60},
}

// exercisesPerSession maps session duration in minutes to the exercise-count
// budget per day. Unlisted durations get defaultExerciseBudget.
var exercisesPerSession = map[int]int{30: 4, 45: 5, 60: 7, 90: 9}

const defaultExerciseBudget = 6

// weekModifiers is the fixed 4-week periodization wave of a cycle.
var weekModifiers = [4]WeekModifier{
	{Week: 1, Label: "Adaptación", SetsMultiplier: 0.80, WeightMultiplier: 0.90},
	{Week: 2, Label: "Carga", SetsMultiplier: 1.00, WeightMultiplier: 0.95},
	{Week: 3, Label: "Sobrecarga", SetsMultiplier: 1.15, WeightMultiplier: 1.00},
	{Week: 4, Label: "Descarga", SetsMultiplier: 0.60, WeightMultiplier: 0.80},
}

// WeekModifiers returns the 4-week periodization table.
func WeekModifiers() []WeekModifier {
	return slices.Clone(weekModifiers[:])
}

// equipmentTiers maps each tier to the full set of equipment tags it makes
// available. Each tier is a superset of the previous one. Unknown tiers are
// treated as a full gym.
var equipmentTiers = map[EquipmentTier][]string{
	TierBodyweight: {"cuerpo libre"},
	TierDumbbells:  {"cuerpo libre", "mancuernas"},
	TierDumbbellsBarbell: {
		"cuerpo libre", "mancuernas", "barra", "banco", "barra EZ", "barra de dominadas", "paralelas", "rack",
	},
	TierFullGym: {
		"cuerpo libre", "mancuernas", "barra", "banco", "barra EZ", "barra de dominadas", "paralelas", "rack",
		"polea", "máquina", "gym", "banco inclinado", "disco", "rueda abdominal",
	},
}

// starterWeightGroups lists the starter weight table keys in match order.
var starterWeightGroups = []string{"pecho", "espalda", "piernas", "hombros", "biceps", "triceps", "abdomen"}

var starterWeights = map[Experience]map[string]float64{
	ExperienceBeginner: {
		"pecho": 20, "espalda": 25, "piernas": 40, "hombros": 10, "biceps": 8, "triceps": 10, "abdomen": 0,
	},
	ExperienceIntermediate: {
		"pecho": 60, "espalda": 70, "piernas": 80, "hombros": 30, "biceps": 20, "triceps": 25, "abdomen": 0,
	},
	ExperienceAdvanced: {
		"pecho": 100, "espalda": 120, "piernas": 140, "hombros": 60, "biceps": 35, "triceps": 45, "abdomen": 10,
	},
}

const defaultStarterWeightKg = 20.0

type volumeParams struct {
	repParams        repParams
	exerciseBudget   int
	setsPerCompound  int
	setsPerIsolation int
}

// selectSplit picks the split template for the requested training frequency,
// falling back to the 3-day full body split for out-of-range values.
func selectSplit(daysPerWeek int) splitTemplate {
	if split, ok := splits[daysPerWeek]; ok {
		return split
	}
	return splits[3]
}

// calculateVolume derives per-session volume parameters from the evaluation.
// Every unknown input degrades to a default instead of failing.
func calculateVolume(eval Evaluation) volumeParams {
	params, ok := repRanges[eval.Goal]
	if !ok {
		params = repRanges[GoalHypertrophy]
	}

	budget, ok := exercisesPerSession[eval.SessionMinutes]
	if !ok {
		budget = defaultExerciseBudget
	}

	setsPerCompound := 4
	switch eval.Goal {
	case GoalStrength:
		setsPerCompound = 5
	case GoalEndurance:
		setsPerCompound = 3
	}

	return volumeParams{
		repParams:        params,
		exerciseBudget:   budget,
		setsPerCompound:  setsPerCompound,
		setsPerIsolation: 3,
	}
}

// scoreExercise rates how well an exercise fits the user: compounds score
// higher, difficulty close to the user's experience scores higher, a concrete
// prescription for the goal and priority muscles add bonuses.
func scoreExercise(exercise Exercise, experience Experience, goal Goal, isPriority bool) int {
	score := 0
	if exercise.Movement == MovementCompound {
		score += 30
	}

	difficultyTiers := map[Experience]int{
		ExperienceBeginner:     1,
		ExperienceIntermediate: 2,
		ExperienceAdvanced:     3,
	}
	exerciseTier, ok := difficultyTiers[exercise.Difficulty]
	if !ok {
		exerciseTier = 2
	}
	userTier, ok := difficultyTiers[experience]
	if !ok {
		userTier = 2
	}
	distance := exerciseTier - userTier
	if distance < 0 {
		distance = -distance
	}
	score += (3 - distance) * 10

	if prescription, ok := exercise.SetsReps[goal]; ok && prescription != "N/A" {
		score += 20
	}
	if isPriority {
		score += 15
	}
	return score
}

// equipmentAvailable reports whether every required tag is available in the
// user's equipment tier. Unknown tiers count as a full gym.
func equipmentAvailable(required []string, tier EquipmentTier) bool {
	available, ok := equipmentTiers[tier]
	if !ok {
		available = equipmentTiers[TierFullGym]
	}
	for _, tag := range required {
		if !slices.Contains(available, tag) {
			return false
		}
	}
	return true
}

// suggestedWeight picks a starting weight by matching the exercise's first
// primary muscle against the starter weight table. Unmatched muscles use the
// "pecho" entry, unknown experience tiers use a flat default.
func suggestedWeight(exercise Exercise, experience Experience) float64 {
	primary := ""
	if len(exercise.PrimaryMuscles) > 0 {
		primary = strings.ToLower(exercise.PrimaryMuscles[0])
	}

	group := "pecho"
	for _, candidate := range starterWeightGroups {
		if strings.Contains(primary, candidate) {
			group = candidate
			break
		}
	}

	weights, ok := starterWeights[experience]
	if !ok {
		return defaultStarterWeightKg
	}
	return weights[group]
}

// buildDay fills a day template with scored exercises and truncates to the
// session budget.
func buildDay(template dayTemplate, eval Evaluation, volume volumeParams) Day {
	var selected []PlannedExercise

	for idx, muscle := range template.muscles {
		isPriority := slices.Contains(eval.PriorityMuscles, muscle)

		var available []Exercise
		for _, exercise := range catalog[muscle] {
			if equipmentAvailable(exercise.Equipment, eval.Equipment) {
				available = append(available, exercise)
			}
		}
		if len(available) == 0 {
			continue
		}

		// Stable sort keeps catalog order for equal scores.
		sort.SliceStable(available, func(i, j int) bool {
			return scoreExercise(available[i], eval.Experience, eval.Goal, isPriority) >
				scoreExercise(available[j], eval.Experience, eval.Goal, isPriority)
		})

		// Priority muscles in the first two template slots get a second exercise.
		take := 1
		if isPriority && idx < 2 {
			take = 2
		}
		if take > len(available) {
			take = len(available)
		}

		for _, exercise := range available[:take] {
			sets := volume.setsPerIsolation
			if exercise.Movement == MovementCompound {
				sets = volume.setsPerCompound
			}
			selected = append(selected, PlannedExercise{
				ExerciseID:       exercise.ID,
				Name:             exercise.Name,
				NameEn:           exercise.NameEn,
				Movement:         exercise.Movement,
				PrimaryMuscles:   exercise.PrimaryMuscles,
				SecondaryMuscles: exercise.SecondaryMuscles,
				Sets:             sets,
				Reps:             volume.repParams.reps,
				RestSeconds:      volume.repParams.restSeconds,
				WeightKg:         suggestedWeight(exercise, eval.Experience),
				RPE:              volume.repParams.rpe,
				Tips:             exercise.Tips,
				Equipment:        exercise.Equipment,
			})
		}
	}

	if len(selected) > volume.exerciseBudget {
		selected = selected[:volume.exerciseBudget]
	}

	return Day{
		ID:               template.id,
		Name:             template.name,
		Muscles:          slices.Clone(template.muscles),
		Exercises:        selected,
		EstimatedMinutes: eval.SessionMinutes,
		Periodization:    WeekModifiers(),
	}
}

// orderExercises sorts a day's exercises compound first, then isolation,
// then static holds, keeping selection order within each class.
func orderExercises(exercises []PlannedExercise) []PlannedExercise {
	order := map[MovementType]int{
		MovementCompound:  0,
		MovementIsolation: 1,
		MovementStatic:    2,
	}
	rank := func(movement MovementType) int {
		if r, ok := order[movement]; ok {
			return r
		}
		return 1
	}
	ordered := slices.Clone(exercises)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rank(ordered[i].Movement) < rank(ordered[j].Movement)
	})
	return ordered
}

// GenerateRoutine builds a complete routine for one 30-day cycle from the
// user's evaluation. The result is deterministic apart from GeneratedAt.
func GenerateRoutine(eval Evaluation, now time.Time) Routine {
	split := selectSplit(eval.DaysPerWeek)
	volume := calculateVolume(eval)

	days := make([]Day, 0, len(split.days))
	for _, template := range split.days {
		day := buildDay(template, eval, volume)
		day.Exercises = orderExercises(day.Exercises)
		days = append(days, day)
	}

	return Routine{
		Name:             split.name,
		Goal:             eval.Goal,
		DaysPerWeek:      eval.DaysPerWeek,
		Days:             days,
		WeeklySchedule:   slices.Clone(split.schedule),
		Periodization:    WeekModifiers(),
		GeneratedAt:      now,
		AlgorithmVersion: algorithmVersion,
	}
}

// weekModifierAt returns the periodization modifier in effect at now for a
// cycle started at start, clamped to the first and last week.
func weekModifierAt(start, now time.Time) (WeekModifier, int) {
	daysDiff := int(now.Sub(start).Hours() / 24)
	weekIndex := daysDiff / 7
	if weekIndex < 0 {
		weekIndex = 0
	}
	if weekIndex > 3 {
		weekIndex = 3
	}
	return weekModifiers[weekIndex], weekIndex + 1
}
