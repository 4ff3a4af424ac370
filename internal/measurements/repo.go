package measurements

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

var ErrMeasurementNotFound = errors.New("body measurement not found")

const measurementColumns = `id, user_id, measurement_date, weight_kg, body_fat_pct,
	chest_cm, waist_cm, hips_cm, left_arm_cm, right_arm_cm,
	left_thigh_cm, right_thigh_cm, left_calf_cm, right_calf_cm,
	neck_cm, shoulders_cm, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, m BodyMeasurement) (_ *BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", m.UserID))

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	if err := r.db.QueryRow(ctx,
		`INSERT INTO body_measurement
			(user_id, measurement_date, weight_kg, body_fat_pct, chest_cm, waist_cm, hips_cm,
			left_arm_cm, right_arm_cm, left_thigh_cm, right_thigh_cm, left_calf_cm, right_calf_cm,
			neck_cm, shoulders_cm, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		m.UserID, m.MeasurementDate, m.WeightKg, m.BodyFatPct, m.ChestCm, m.WaistCm, m.HipsCm,
		m.LeftArmCm, m.RightArmCm, m.LeftThighCm, m.RightThighCm, m.LeftCalfCm, m.RightCalfCm,
		m.NeckCm, m.ShouldersCm, m.Notes, m.CreatedAt,
	).Scan(&m.ID); err != nil {
		return nil, fmt.Errorf("insert measurement: %w", err)
	}

	return &m, nil
}

// List returns the user's measurements, newest first.
func (r *Repo) List(ctx context.Context, userID, limit int) (_ []BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+measurementColumns+`
		FROM body_measurement
		WHERE user_id = $1
		ORDER BY measurement_date DESC, id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	return scanMeasurements(rows)
}

// ListAsc returns all measurements oldest first, for progress charts.
func (r *Repo) ListAsc(ctx context.Context, userID int) (_ []BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.listAsc")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx,
		`SELECT `+measurementColumns+`
		FROM body_measurement
		WHERE user_id = $1
		ORDER BY measurement_date, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	return scanMeasurements(rows)
}

// LatestTwo returns the two most recent measurements, newest first.
func (r *Repo) LatestTwo(ctx context.Context, userID int) (_ []BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.latestTwo")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.List(ctx, userID, 2)
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM body_measurement WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}

	return nil
}

func scanMeasurements(rows pgx.Rows) ([]BodyMeasurement, error) {
	measurements := make([]BodyMeasurement, 0)
	for rows.Next() {
		var m BodyMeasurement
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.MeasurementDate, &m.WeightKg, &m.BodyFatPct,
			&m.ChestCm, &m.WaistCm, &m.HipsCm, &m.LeftArmCm, &m.RightArmCm,
			&m.LeftThighCm, &m.RightThighCm, &m.LeftCalfCm, &m.RightCalfCm,
			&m.NeckCm, &m.ShouldersCm, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return measurements, nil
}
