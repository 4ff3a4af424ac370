package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/pkg"
)

var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseExists       = errors.New("exercise with this name already exists")
	ErrSubstitutionExists   = errors.New("substitution already exists")
	ErrSelfSubstitution     = errors.New("exercise cannot substitute itself")
	ErrSubstitutionNotFound = errors.New("substitution not found")
)

type ListParams struct {
	MuscleGroup  string
	ExerciseType string
	Search       string
}

type HistoryEntry struct {
	Date     time.Time `json:"date"`
	Sets     int       `json:"sets"`
	Reps     int       `json:"reps"`
	WeightKg *float64  `json:"weightKg,omitempty"`
	RPE      *int      `json:"rpe,omitempty"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM exercises WHERE lower(name) = lower($1))`,
		exercise.Name,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check exercise name: %w", err)
	}
	if exists {
		return nil, ErrExerciseExists
	}

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	if err := r.db.QueryRow(ctx,
		`INSERT INTO exercises (name, description, muscle_group, exercise_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		exercise.Name, exercise.Description, exercise.MuscleGroup,
		exercise.ExerciseType, exercise.CreatedAt,
	).Scan(&exercise.ID); err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	var exercise Exercise
	err = r.db.QueryRow(ctx,
		`SELECT id, name, description, muscle_group, exercise_type, created_at
		FROM exercises WHERE id = $1`,
		id,
	).Scan(
		&exercise.ID, &exercise.Name, &exercise.Description,
		&exercise.MuscleGroup, &exercise.ExerciseType, &exercise.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	return &exercise, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, muscle_group, exercise_type, created_at
		FROM exercises
		WHERE
			($1::text = '' OR muscle_group ILIKE '%' || $1 || '%') AND
			($2::text = '' OR exercise_type = $2) AND
			($3::text = '' OR name ILIKE '%' || $3 || '%')
		ORDER BY muscle_group, name`,
		params.MuscleGroup, params.ExerciseType, params.Search,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID, &exercise.Name, &exercise.Description,
			&exercise.MuscleGroup, &exercise.ExerciseType, &exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return exercises, nil
}

func (r *Repo) Update(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))

	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM exercises WHERE lower(name) = lower($1) AND id != $2)`,
		exercise.Name, exercise.ID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check exercise name: %w", err)
	}
	if exists {
		return ErrExerciseExists
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE exercises
		SET name = $1, description = $2, muscle_group = $3, exercise_type = $4
		WHERE id = $5`,
		exercise.Name, exercise.Description, exercise.MuscleGroup,
		exercise.ExerciseType, exercise.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

// AddSubstitution stores the substitution pair in both directions, in a
// single transaction.
func (r *Repo) AddSubstitution(ctx context.Context, exerciseID, substituteID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.addSubstitution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("exercise.id", exerciseID),
		attribute.Int("substitute.id", substituteID),
	)

	if exerciseID == substituteID {
		return ErrSelfSubstitution
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, pair := range [][2]int{{exerciseID, substituteID}, {substituteID, exerciseID}} {
		if _, err = tx.Exec(ctx,
			`INSERT INTO exercise_substitution (exercise_id, substitute_id) VALUES ($1, $2)`,
			pair[0], pair[1],
		); err != nil {
			if pkg.IsUniqueViolationError(err) {
				err = ErrSubstitutionExists
				return err
			}
			if pkg.IsForeignKeyViolationError(err) {
				err = ErrExerciseNotFound
				return err
			}
			return fmt.Errorf("insert substitution: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RemoveSubstitution deletes the pair in both directions.
func (r *Repo) RemoveSubstitution(ctx context.Context, exerciseID, substituteID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.removeSubstitution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM exercise_substitution
		WHERE (exercise_id = $1 AND substitute_id = $2)
			OR (exercise_id = $2 AND substitute_id = $1)`,
		exerciseID, substituteID,
	)
	if err != nil {
		return fmt.Errorf("delete substitution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubstitutionNotFound
	}

	return nil
}

func (r *Repo) ListSubstitutes(ctx context.Context, exerciseID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listSubstitutes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.name, e.description, e.muscle_group, e.exercise_type, e.created_at
		FROM exercise_substitution s
		JOIN exercises e ON e.id = s.substitute_id
		WHERE s.exercise_id = $1
		ORDER BY e.name`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("list substitutes: %w", err)
	}
	defer rows.Close()

	substitutes := make([]Exercise, 0)
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID, &exercise.Name, &exercise.Description,
			&exercise.MuscleGroup, &exercise.ExerciseType, &exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan substitute: %w", err)
		}
		substitutes = append(substitutes, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return substitutes, nil
}

// History returns the user's most recent strength logs for an exercise.
func (r *Repo) History(ctx context.Context, userID, exerciseID, limit int) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT ws.session_date, sl.sets, sl.reps, sl.weight_kg, sl.rpe
		FROM strength_log sl
		JOIN workout_session ws ON ws.id = sl.session_id
		WHERE ws.user_id = $1 AND sl.exercise_id = $2
		ORDER BY ws.session_date DESC, sl.id DESC
		LIMIT $3`,
		userID, exerciseID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}
	defer rows.Close()

	history := make([]HistoryEntry, 0)
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.Date, &entry.Sets, &entry.Reps, &entry.WeightKg, &entry.RPE); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return history, nil
}

// BestLift returns the weight and reps of the user's best set for an
// exercise, ranked by estimated one rep max. Found is false when the user
// has no weighted sets for it.
func (r *Repo) BestLift(ctx context.Context, userID, exerciseID int) (weightKg float64, reps int, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.bestLift")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	err = r.db.QueryRow(ctx,
		`SELECT sl.weight_kg, sl.reps
		FROM strength_log sl
		JOIN workout_session ws ON ws.id = sl.session_id
		WHERE ws.user_id = $1 AND sl.exercise_id = $2 AND sl.weight_kg IS NOT NULL
		ORDER BY sl.weight_kg * (1 + sl.reps / 30.0) DESC
		LIMIT 1`,
		userID, exerciseID,
	).Scan(&weightKg, &reps)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, fmt.Errorf("best lift: %w", err)
	}

	return weightKg, reps, true, nil
}
