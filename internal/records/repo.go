package records

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// recordLockKey derives the advisory lock key for one user+exercise+type
// record slot.
func recordLockKey(userID, exerciseID int, recordType string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%s", userID, exerciseID, recordType)
	return int64(h.Sum64())
}

// CheckAndUpdate inserts a new personal record row when the value strictly
// beats the current best. The check and insert run under a transaction
// scoped advisory lock, so concurrent submissions of the same record slot
// serialize and at most one wins.
func (r *Repo) CheckAndUpdate(
	ctx context.Context,
	userID, exerciseID int,
	recordType string,
	value float64,
	dateAchieved time.Time,
) (isPR bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.checkAndUpdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("exercise.id", exerciseID),
		attribute.String("record.type", recordType),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock($1)`,
		recordLockKey(userID, exerciseID, recordType),
	); err != nil {
		return false, fmt.Errorf("acquire record lock: %w", err)
	}

	var currentBest float64
	err = tx.QueryRow(ctx,
		`SELECT value FROM personal_record
		WHERE user_id = $1 AND exercise_id = $2 AND record_type = $3
		ORDER BY value DESC
		LIMIT 1`,
		userID, exerciseID, recordType,
	).Scan(&currentBest)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("current record: %w", err)
	}
	hasRecord := err == nil

	if hasRecord && value <= currentBest {
		err = tx.Commit(ctx)
		return false, err
	}

	if _, err = tx.Exec(ctx,
		`INSERT INTO personal_record (user_id, exercise_id, record_type, value, date_achieved, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		userID, exerciseID, recordType, value, dateAchieved,
		fmt.Sprintf("Auto-detected PR: %g", value), time.Now(),
	); err != nil {
		return false, fmt.Errorf("insert record: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit tx: %w", err)
	}

	return true, nil
}

// List returns the user's records, newest first, optionally filtered by
// record type.
func (r *Repo) List(ctx context.Context, userID int, recordType string) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx,
		`SELECT pr.id, pr.user_id, pr.exercise_id, COALESCE(e.name, ''), pr.record_type,
			pr.value, pr.date_achieved, pr.notes, pr.created_at
		FROM personal_record pr
		LEFT JOIN exercises e ON e.id = pr.exercise_id
		WHERE pr.user_id = $1 AND ($2::text = '' OR pr.record_type = $2)
		ORDER BY pr.date_achieved DESC, pr.id DESC`,
		userID, recordType,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// History returns all record rows for one exercise, oldest first.
func (r *Repo) History(ctx context.Context, userID, exerciseID int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(ctx,
		`SELECT pr.id, pr.user_id, pr.exercise_id, COALESCE(e.name, ''), pr.record_type,
			pr.value, pr.date_achieved, pr.notes, pr.created_at
		FROM personal_record pr
		LEFT JOIN exercises e ON e.id = pr.exercise_id
		WHERE pr.user_id = $1 AND pr.exercise_id = $2
		ORDER BY pr.date_achieved, pr.id`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Timeline returns the user's most recent records as flat timeline entries.
func (r *Repo) Timeline(ctx context.Context, userID, limit int) (_ []TimelineEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.timeline")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`SELECT pr.date_achieved, COALESCE(e.name, ''), pr.record_type, pr.value
		FROM personal_record pr
		LEFT JOIN exercises e ON e.id = pr.exercise_id
		WHERE pr.user_id = $1
		ORDER BY pr.date_achieved DESC, pr.id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("record timeline: %w", err)
	}
	defer rows.Close()

	timeline := make([]TimelineEntry, 0)
	for rows.Next() {
		var entry TimelineEntry
		if err := rows.Scan(&entry.Date, &entry.Exercise, &entry.Type, &entry.Value); err != nil {
			return nil, fmt.Errorf("scan timeline entry: %w", err)
		}
		timeline = append(timeline, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return timeline, nil
}

func scanRecords(rows pgx.Rows) ([]PersonalRecord, error) {
	result := make([]PersonalRecord, 0)
	for rows.Next() {
		var record PersonalRecord
		if err := rows.Scan(
			&record.ID, &record.UserID, &record.ExerciseID, &record.ExerciseName,
			&record.RecordType, &record.Value, &record.DateAchieved,
			&record.Notes, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return result, nil
}
