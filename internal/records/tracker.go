package records

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"github.com/fitkeep/fitkeep/internal/workouts"
)

type recordsChecker interface {
	CheckAndUpdate(ctx context.Context, userID, exerciseID int, recordType string, value float64, dateAchieved time.Time) (bool, error)
}

// Tracker derives record candidates from logged sets and stores the ones
// that beat the current best.
type Tracker struct {
	repo recordsChecker
}

func NewTracker(repo recordsChecker) *Tracker {
	return &Tracker{repo: repo}
}

// CheckStrengthLog checks a logged set against the estimated one rep max
// and heaviest weight records. Reports true when the set produced a new
// one rep max record.
func (t *Tracker) CheckStrengthLog(
	ctx context.Context,
	userID, exerciseID int,
	weightKg float64,
	reps int,
	date time.Time,
) (bool, error) {
	estimated := workouts.EstimateOneRepMax(weightKg, reps)
	if estimated <= 0 {
		return false, nil
	}

	is1RMRecord, oneRMErr := t.repo.CheckAndUpdate(ctx, userID, exerciseID, RecordType1RM, estimated, date)

	var repMaxErr error
	if weightKg > 0 {
		_, repMaxErr = t.repo.CheckAndUpdate(ctx, userID, exerciseID, RecordTypeRepMax, weightKg, date)
	}

	return is1RMRecord, multierr.Combine(oneRMErr, repMaxErr)
}
