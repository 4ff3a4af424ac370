package recovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
)

var ErrLogNotFound = errors.New("recovery log not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Upsert inserts the log, or updates the existing one for the same user
// and date.
func (r *Repo) Upsert(ctx context.Context, recoveryLog Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", recoveryLog.UserID))

	if recoveryLog.CreatedAt.IsZero() {
		recoveryLog.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO recovery_log
			(user_id, log_date, sleep_quality, energy_level, muscle_soreness, motivation_score, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, log_date) DO UPDATE SET
			sleep_quality = EXCLUDED.sleep_quality,
			energy_level = EXCLUDED.energy_level,
			muscle_soreness = EXCLUDED.muscle_soreness,
			motivation_score = EXCLUDED.motivation_score,
			notes = EXCLUDED.notes
		RETURNING id, created_at`,
		recoveryLog.UserID, recoveryLog.LogDate,
		recoveryLog.SleepQuality, recoveryLog.EnergyLevel,
		recoveryLog.MuscleSoreness, recoveryLog.MotivationScore,
		recoveryLog.Notes, recoveryLog.CreatedAt,
	).Scan(&recoveryLog.ID, &recoveryLog.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert recovery log: %w", err)
	}

	return &recoveryLog, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var recoveryLog Log
	err = r.db.QueryRow(ctx,
		`SELECT id, user_id, log_date, sleep_quality, energy_level, muscle_soreness, motivation_score, notes, created_at
		FROM recovery_log WHERE user_id = $1 AND id = $2`,
		userID, id,
	).Scan(
		&recoveryLog.ID, &recoveryLog.UserID, &recoveryLog.LogDate,
		&recoveryLog.SleepQuality, &recoveryLog.EnergyLevel,
		&recoveryLog.MuscleSoreness, &recoveryLog.MotivationScore,
		&recoveryLog.Notes, &recoveryLog.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recovery log: %w", err)
	}

	return &recoveryLog, nil
}

func (r *Repo) List(ctx context.Context, userID, limit int) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if limit <= 0 {
		limit = 14
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, log_date, sleep_quality, energy_level, muscle_soreness, motivation_score, notes, created_at
		FROM recovery_log
		WHERE user_id = $1
		ORDER BY log_date DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list recovery logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// ListSince returns all logs with log_date on or after the given date,
// oldest first.
func (r *Repo) ListSince(ctx context.Context, userID int, since time.Time) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.listSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, log_date, sleep_quality, energy_level, muscle_soreness, motivation_score, notes, created_at
		FROM recovery_log
		WHERE user_id = $1 AND log_date >= $2
		ORDER BY log_date`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("list recovery logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM recovery_log WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("delete recovery log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}

	return nil
}

func scanLogs(rows pgx.Rows) ([]Log, error) {
	logs := make([]Log, 0)
	for rows.Next() {
		var recoveryLog Log
		if err := rows.Scan(
			&recoveryLog.ID, &recoveryLog.UserID, &recoveryLog.LogDate,
			&recoveryLog.SleepQuality, &recoveryLog.EnergyLevel,
			&recoveryLog.MuscleSoreness, &recoveryLog.MotivationScore,
			&recoveryLog.Notes, &recoveryLog.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recovery log: %w", err)
		}
		logs = append(logs, recoveryLog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return logs, nil
}
