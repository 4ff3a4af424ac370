package workouts

import "time"

const (
	SessionTypeStrength = "strength"
	SessionTypeRunning  = "running"
	SessionTypeOther    = "other"
)

func ValidSessionType(t string) bool {
	return t == SessionTypeStrength || t == SessionTypeRunning || t == SessionTypeOther
}

const (
	RunTypeEasy     = "easy"
	RunTypeTempo    = "tempo"
	RunTypeInterval = "interval"
	RunTypeLong     = "long"
	RunTypeOther    = "other"
)

func ValidRunType(t string) bool {
	switch t {
	case RunTypeEasy, RunTypeTempo, RunTypeInterval, RunTypeLong, RunTypeOther:
		return true
	}
	return false
}

type Session struct {
	ID              int       `json:"id"`
	UserID          int       `json:"-"`
	SessionDate     time.Time `json:"sessionDate"`
	Type            string    `json:"type"`
	DurationMinutes *int      `json:"durationMinutes,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`

	StrengthLogs []StrengthLog `json:"strengthLogs,omitempty"`
	RunningLogs  []RunningLog  `json:"runningLogs,omitempty"`
}

type StrengthLog struct {
	ID           int       `json:"id"`
	SessionID    int       `json:"sessionId"`
	ExerciseID   int       `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName,omitempty"`
	MuscleGroup  string    `json:"muscleGroup,omitempty"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	WeightKg     *float64  `json:"weightKg,omitempty"`
	RPE          *int      `json:"rpe,omitempty"`
	RestSeconds  *int      `json:"restSeconds,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TotalVolume is sets x reps x weight, with bodyweight (nil weight) counting as zero.
func (sl StrengthLog) TotalVolume() float64 {
	return Volume(sl.Sets, sl.Reps, sl.WeightKg)
}

type RunningLog struct {
	ID                  int       `json:"id"`
	SessionID           int       `json:"sessionId"`
	RunType             string    `json:"runType"`
	DistanceKm          float64   `json:"distanceKm"`
	DurationMinutes     *int      `json:"durationMinutes,omitempty"`
	AvgPacePerKm        *float64  `json:"avgPacePerKm,omitempty"`
	ElevationGainMeters *int      `json:"elevationGainMeters,omitempty"`
	AvgHeartRate        *int      `json:"avgHeartRate,omitempty"`
	MaxHeartRate        *int      `json:"maxHeartRate,omitempty"`
	PerceivedEffort     *int      `json:"perceivedEffort,omitempty"`
	Weather             string    `json:"weather,omitempty"`
	RouteNotes          string    `json:"routeNotes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// TRIMP returns the training impulse score for this run, nil when the
// required inputs are missing.
func (rl RunningLog) TRIMP() *float64 {
	return TRIMPScore(rl.DurationMinutes, rl.AvgHeartRate, rl.MaxHeartRate)
}
