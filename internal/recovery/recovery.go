package recovery

import (
	"math"
	"time"
)

type Log struct {
	ID              int       `json:"id"`
	UserID          int       `json:"-"`
	LogDate         time.Time `json:"logDate"`
	SleepQuality    *int      `json:"sleepQuality,omitempty"`
	EnergyLevel     *int      `json:"energyLevel,omitempty"`
	MuscleSoreness  *int      `json:"muscleSoreness,omitempty"`
	MotivationScore *int      `json:"motivationScore,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// OverallScore averages the recovery metrics, with soreness inverted since
// lower soreness is better. Metrics left empty are skipped; all empty
// yields nil. Rounded half-up to one decimal.
func (l Log) OverallScore() *float64 {
	return OverallScore(l.SleepQuality, l.EnergyLevel, l.MuscleSoreness, l.MotivationScore)
}

func OverallScore(sleep, energy, soreness, motivation *int) *float64 {
	sum, count := 0, 0
	for _, m := range []*int{sleep, energy, motivation} {
		if m != nil {
			sum += *m
			count++
		}
	}
	if soreness != nil {
		sum += 10 - *soreness
		count++
	}
	if count == 0 {
		return nil
	}

	score := math.Floor(float64(sum)/float64(count)*10+0.5) / 10
	return &score
}

func validScore(s *int) bool {
	return s == nil || (*s >= 1 && *s <= 10)
}

// ValidScores checks that every provided metric is within 1..10.
func (l Log) ValidScores() bool {
	return validScore(l.SleepQuality) &&
		validScore(l.EnergyLevel) &&
		validScore(l.MuscleSoreness) &&
		validScore(l.MotivationScore)
}
