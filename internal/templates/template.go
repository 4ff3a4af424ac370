package templates

import "time"

const (
	defaultSets = 3
	defaultReps = 10
)

type Template struct {
	ID          int       `json:"id"`
	UserID      int       `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`

	Exercises []TemplateExercise `json:"exercises"`
}

type TemplateExercise struct {
	ID           int    `json:"id"`
	TemplateID   int    `json:"templateId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName,omitempty"`
	MuscleGroup  string `json:"muscleGroup,omitempty"`
	Position     int    `json:"position"`
	DefaultSets  int    `json:"defaultSets"`
	DefaultReps  int    `json:"defaultReps"`
}

// Performance is the most recent logged set scheme for an exercise,
// used to pre-fill template exercises with real numbers.
type Performance struct {
	Sets     int       `json:"sets"`
	Reps     int       `json:"reps"`
	WeightKg *float64  `json:"weightKg,omitempty"`
	Date     time.Time `json:"date"`
}
