package templates

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
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateExists   = errors.New("template with that name already exists")
	ErrExerciseNotFound = errors.New("exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", template.UserID))

	var exists bool
	if err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM workout_template WHERE user_id = $1 AND LOWER(name) = LOWER($2))`,
		template.UserID, template.Name,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check template name: %w", err)
	}
	if exists {
		return nil, ErrTemplateExists
	}

	if template.CreatedAt.IsZero() {
		template.CreatedAt = time.Now()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = tx.QueryRow(ctx,
		`INSERT INTO workout_template (user_id, name, description, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		template.UserID, template.Name, template.Description, template.CreatedAt,
	).Scan(&template.ID); err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}

	if err = insertTemplateExercises(ctx, tx, template.ID, template.Exercises); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return r.Get(ctx, template.UserID, template.ID)
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	var template Template
	if err = r.db.QueryRow(ctx,
		`SELECT id, user_id, name, description, created_at
		FROM workout_template
		WHERE user_id = $1 AND id = $2`,
		userID, id,
	).Scan(
		&template.ID, &template.UserID, &template.Name,
		&template.Description, &template.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	template.Exercises, err = r.templateExercises(ctx, template.ID)
	if err != nil {
		return nil, err
	}

	return &template, nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, description, created_at
		FROM workout_template
		WHERE user_id = $1
		ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := make([]Template, 0)
	for rows.Next() {
		var t Template
		if err = rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range templates {
		templates[i].Exercises, err = r.templateExercises(ctx, templates[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return templates, nil
}

// Update replaces the template's name, description and full exercise list.
func (r *Repo) Update(ctx context.Context, template *Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", template.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE workout_template SET name = $1, description = $2
		WHERE user_id = $3 AND id = $4`,
		template.Name, template.Description, template.UserID, template.ID,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrTemplateNotFound
		return err
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM workout_template_exercise WHERE template_id = $1`,
		template.ID,
	); err != nil {
		return fmt.Errorf("clear template exercises: %w", err)
	}

	if err = insertTemplateExercises(ctx, tx, template.ID, template.Exercises); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx,
		`DELETE FROM workout_template_exercise
		WHERE template_id IN (SELECT id FROM workout_template WHERE user_id = $1 AND id = $2)`,
		userID, id,
	); err != nil {
		return fmt.Errorf("delete template exercises: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM workout_template WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrTemplateNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// LastPerformances returns the most recent logged set scheme per exercise,
// taken from any of the user's sessions.
func (r *Repo) LastPerformances(ctx context.Context, userID int, exerciseIDs []int) (_ map[int]Performance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.lastPerformances")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if len(exerciseIDs) == 0 {
		return map[int]Performance{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (sl.exercise_id)
			sl.exercise_id, sl.sets, sl.reps, sl.weight_kg, ws.session_date
		FROM strength_log sl
		JOIN workout_session ws ON ws.id = sl.session_id
		WHERE ws.user_id = $1 AND sl.exercise_id = ANY($2)
		ORDER BY sl.exercise_id, sl.id DESC`,
		userID, exerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("last performances: %w", err)
	}
	defer rows.Close()

	performances := make(map[int]Performance)
	for rows.Next() {
		var exerciseID int
		var p Performance
		if err = rows.Scan(&exerciseID, &p.Sets, &p.Reps, &p.WeightKg, &p.Date); err != nil {
			return nil, fmt.Errorf("scan performance: %w", err)
		}
		performances[exerciseID] = p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return performances, nil
}

func (r *Repo) templateExercises(ctx context.Context, templateID int) ([]TemplateExercise, error) {
	rows, err := r.db.Query(ctx,
		`SELECT te.id, te.template_id, te.exercise_id, e.name, e.muscle_group,
			te.position, te.default_sets, te.default_reps
		FROM workout_template_exercise te
		JOIN exercises e ON e.id = te.exercise_id
		WHERE te.template_id = $1
		ORDER BY te.position`,
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("template exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]TemplateExercise, 0)
	for rows.Next() {
		var te TemplateExercise
		if err := rows.Scan(
			&te.ID, &te.TemplateID, &te.ExerciseID, &te.ExerciseName,
			&te.MuscleGroup, &te.Position, &te.DefaultSets, &te.DefaultReps,
		); err != nil {
			return nil, fmt.Errorf("scan template exercise: %w", err)
		}
		exercises = append(exercises, te)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return exercises, nil
}

func insertTemplateExercises(ctx context.Context, tx pgx.Tx, templateID int, exercises []TemplateExercise) error {
	for i, te := range exercises {
		sets, reps := te.DefaultSets, te.DefaultReps
		if sets <= 0 {
			sets = defaultSets
		}
		if reps <= 0 {
			reps = defaultReps
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO workout_template_exercise
				(template_id, exercise_id, position, default_sets, default_reps)
			VALUES ($1, $2, $3, $4, $5)`,
			templateID, te.ExerciseID, i, sets, reps,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return ErrExerciseNotFound
			}
			return fmt.Errorf("insert template exercise: %w", err)
		}
	}
	return nil
}
