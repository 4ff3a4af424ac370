package records

import "time"

const (
	RecordType1RM      = "1RM"
	RecordTypeRepMax   = "rep_max"
	RecordTypeVolume   = "volume"
	RecordTypeDistance = "distance"
	RecordTypePace     = "pace"
)

func ValidRecordType(t string) bool {
	switch t {
	case RecordType1RM, RecordTypeRepMax, RecordTypeVolume, RecordTypeDistance, RecordTypePace:
		return true
	}
	return false
}

type PersonalRecord struct {
	ID           int       `json:"id"`
	UserID       int       `json:"-"`
	ExerciseID   int       `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName,omitempty"`
	RecordType   string    `json:"recordType"`
	Value        float64   `json:"value"`
	DateAchieved time.Time `json:"dateAchieved"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TimelineEntry struct {
	Date     time.Time `json:"date"`
	Exercise string    `json:"exercise"`
	Type     string    `json:"type"`
	Value    float64   `json:"value"`
}
