package exercises

import (
	"strings"
	"time"
)

const (
	ExerciseTypeStrength = "strength"
	ExerciseTypeCardio   = "cardio"
)

func ValidExerciseType(t string) bool {
	return t == ExerciseTypeStrength || t == ExerciseTypeCardio
}

// MuscleGroups is the canonical muscle group list. An exercise can target
// several of them, stored comma-separated in a single column.
var MuscleGroups = []string{
	"Chest",
	"Back",
	"Shoulders",
	"Biceps",
	"Triceps",
	"Forearms",
	"Core",
	"Quadriceps",
	"Hamstrings",
	"Glutes",
	"Calves",
	"Cardio",
}

func ValidMuscleGroup(group string) bool {
	for _, mg := range MuscleGroups {
		if mg == group {
			return true
		}
	}
	return false
}

type Exercise struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	MuscleGroup  string    `json:"muscleGroup,omitempty"`
	ExerciseType string    `json:"exerciseType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MuscleGroupsList splits the comma-separated muscle group column.
func (e Exercise) MuscleGroupsList() []string {
	if e.MuscleGroup == "" {
		return nil
	}
	parts := strings.Split(e.MuscleGroup, ",")
	groups := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			groups = append(groups, trimmed)
		}
	}
	return groups
}

// PrimaryMuscleGroup is the first listed group, or empty.
func (e Exercise) PrimaryMuscleGroup() string {
	groups := e.MuscleGroupsList()
	if len(groups) == 0 {
		return ""
	}
	return groups[0]
}

func (e Exercise) HasMuscleGroup(group string) bool {
	for _, mg := range e.MuscleGroupsList() {
		if mg == group {
			return true
		}
	}
	return false
}

// JoinMuscleGroups builds the stored column value from a group list.
func JoinMuscleGroups(groups []string) string {
	cleaned := make([]string, 0, len(groups))
	for _, g := range groups {
		if trimmed := strings.TrimSpace(g); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ", ")
}
