package templates

import (
	"context"

	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/internal/workouts"
)

type prefillerRepo interface {
	Get(ctx context.Context, userID, id int) (*Template, error)
	LastPerformances(ctx context.Context, userID int, exerciseIDs []int) (map[int]Performance, error)
}

// Prefiller turns a template into ready-to-save strength logs. Template
// targets are used as a fallback, the user's last logged numbers for
// each exercise win when present.
type Prefiller struct {
	repo prefillerRepo
}

func NewPrefiller(repo prefillerRepo) *Prefiller {
	return &Prefiller{repo: repo}
}

func (p *Prefiller) PrefillLogs(ctx context.Context, userID, templateID int) (_ []workouts.StrengthLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "templates.prefiller.prefillLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	template, err := p.repo.Get(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}

	exerciseIDs := make([]int, 0, len(template.Exercises))
	for _, te := range template.Exercises {
		exerciseIDs = append(exerciseIDs, te.ExerciseID)
	}

	performances, err := p.repo.LastPerformances(ctx, userID, exerciseIDs)
	if err != nil {
		return nil, err
	}

	logs := make([]workouts.StrengthLog, 0, len(template.Exercises))
	for _, te := range template.Exercises {
		strengthLog := workouts.StrengthLog{
			ExerciseID:   te.ExerciseID,
			ExerciseName: te.ExerciseName,
			MuscleGroup:  te.MuscleGroup,
			Sets:         te.DefaultSets,
			Reps:         te.DefaultReps,
		}
		if last, ok := performances[te.ExerciseID]; ok {
			strengthLog.Sets = last.Sets
			strengthLog.Reps = last.Reps
			strengthLog.WeightKg = last.WeightKg
		}
		logs = append(logs, strengthLog)
	}

	return logs, nil
}
