package workouts

import (
	"math"
	"time"
)

// restingHeartRate is the assumed resting heart rate used by the TRIMP formula.
const restingHeartRate = 60

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// EstimateOneRepMax estimates the one rep max using the Epley formula.
// A single rep is its own max; non-positive inputs yield 0.
func EstimateOneRepMax(weightKg float64, reps int) float64 {
	if reps == 1 {
		return weightKg
	}
	if reps <= 0 || weightKg <= 0 {
		return 0
	}
	return round2(weightKg * (1 + float64(reps)/30))
}

// TRIMPScore calculates the Banister training impulse for a run.
// Returns nil when any of the inputs is missing, and 0 when the max heart
// rate does not exceed the assumed resting rate.
func TRIMPScore(durationMinutes, avgHeartRate, maxHeartRate *int) *float64 {
	if durationMinutes == nil || avgHeartRate == nil || maxHeartRate == nil {
		return nil
	}

	if *maxHeartRate <= restingHeartRate {
		zero := 0.0
		return &zero
	}

	ratio := float64(*avgHeartRate-restingHeartRate) / float64(*maxHeartRate-restingHeartRate)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	trimp := round2(float64(*durationMinutes) * ratio * 0.64 * math.Exp(1.92*ratio))
	return &trimp
}

// Volume is sets x reps x weight. Bodyweight work (nil weight) counts as zero.
func Volume(sets, reps int, weightKg *float64) float64 {
	if weightKg == nil {
		return 0
	}
	return float64(sets) * float64(reps) * *weightKg
}

// PaceMinPerKm derives the average pace from duration and distance.
// Returns nil for non-positive distance.
func PaceMinPerKm(durationMinutes int, distanceKm float64) *float64 {
	if distanceKm <= 0 {
		return nil
	}
	pace := round2(float64(durationMinutes) / distanceKm)
	return &pace
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the ISO week start (Monday) of the given date.
func WeekStart(d time.Time) time.Time {
	d = DateOnly(d)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

// IsSpike reports whether the current value is a volume spike relative to
// the previous one, given a percentage threshold. A jump from zero to any
// positive volume always counts as a spike.
func IsSpike(current, previous, thresholdPct float64) bool {
	if previous == 0 {
		return current > 0
	}
	return (current-previous)/previous*100 >= thresholdPct
}

// PercentChange returns the relative change in percent, rounded to one
// decimal. Zero previous values branch explicitly instead of dividing.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1((current - previous) / previous * 100)
}

// ConsecutiveDayStreak walks backwards from today over the set of workout
// dates. A rest day is bridged only once the streak is established (at
// least two active days); two consecutive days without a workout end the
// walk. Bounded at a year. The keys of sessionDates must be
// date-normalized (see DateOnly).
func ConsecutiveDayStreak(sessionDates map[time.Time]bool, today time.Time) int {
	if len(sessionDates) == 0 {
		return 0
	}

	streak := 0
	checkDate := DateOnly(today)

	for {
		if sessionDates[checkDate] {
			streak++
			checkDate = checkDate.AddDate(0, 0, -1)
		} else {
			if streak < 2 {
				break
			}
			// allow one rest day
			checkDate = checkDate.AddDate(0, 0, -1)
			if !sessionDates[checkDate] {
				break
			}
		}

		if streak > 365 {
			break
		}
	}

	return streak
}
