package workouts

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

var (
	ErrSessionNotFound = errors.New("workout session not found")
)

type ListParams struct {
	Type  string
	From  *time.Time
	To    *time.Time
	Limit int
}

// StrengthEntry is a strength log joined with its session date,
// as consumed by the analyzer.
type StrengthEntry struct {
	StrengthLog
	SessionDate  time.Time `json:"sessionDate"`
	SessionNotes string    `json:"sessionNotes,omitempty"`
}

// RunEntry is a running log joined with its session date.
type RunEntry struct {
	RunningLog
	SessionDate time.Time `json:"sessionDate"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session
				(user_id, session_date, session_type, duration_minutes, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		session.UserID, session.SessionDate, session.Type,
		session.DurationMinutes, session.Notes, session.CreatedAt,
	).Scan(&session.ID); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

func (r *Repo) GetSession(ctx context.Context, userID, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var s Session
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, session_date, session_type, duration_minutes, notes, created_at
			FROM workout_session
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&s.ID, &s.UserID, &s.SessionDate, &s.Type, &s.DurationMinutes, &s.Notes, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if s.StrengthLogs, err = r.sessionStrengthLogs(ctx, s.ID); err != nil {
		return nil, fmt.Errorf("session strength logs: %w", err)
	}
	if s.RunningLogs, err = r.sessionRunningLogs(ctx, s.ID); err != nil {
		return nil, fmt.Errorf("session running logs: %w", err)
	}

	return &s, nil
}

func (r *Repo) ListSessions(ctx context.Context, userID int, params ListParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", params.Type))
	span.SetAttributes(attribute.Int("limit", params.Limit))

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, session_date, session_type, duration_minutes, notes, created_at
			FROM workout_session
			WHERE user_id = $1
				AND ($2::text = '' OR session_type = $2)
				AND ($3::date IS NULL OR session_date >= $3)
				AND ($4::date IS NULL OR session_date <= $4)
			ORDER BY session_date DESC, id DESC
			LIMIT $5;`,
		userID, params.Type, params.From, params.To, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sessions := make([]Session, 0)
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.SessionDate, &s.Type,
			&s.DurationMinutes, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return sessions, nil
}

func (r *Repo) UpdateSession(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", session.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session
			SET session_date = $1, session_type = $2, duration_minutes = $3, notes = $4
			WHERE id = $5 AND user_id = $6;`,
		session.SessionDate, session.Type, session.DurationMinutes, session.Notes,
		session.ID, session.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) DeleteSession(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) AddStrengthLog(ctx context.Context, strengthLog StrengthLog) (_ *StrengthLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addStrengthLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", strengthLog.SessionID))
	span.SetAttributes(attribute.Int("exercise.id", strengthLog.ExerciseID))

	if strengthLog.CreatedAt.IsZero() {
		strengthLog.CreatedAt = time.Now()
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO strength_log
				(session_id, exercise_id, sets, reps, weight_kg, rpe, rest_seconds, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		strengthLog.SessionID, strengthLog.ExerciseID, strengthLog.Sets, strengthLog.Reps,
		strengthLog.WeightKg, strengthLog.RPE, strengthLog.RestSeconds, strengthLog.CreatedAt,
	).Scan(&strengthLog.ID); err != nil {
		return nil, fmt.Errorf("insert strength log: %w", err)
	}

	return &strengthLog, nil
}

func (r *Repo) AddRunningLog(ctx context.Context, runningLog RunningLog) (_ *RunningLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addRunningLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", runningLog.SessionID))

	if runningLog.CreatedAt.IsZero() {
		runningLog.CreatedAt = time.Now()
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO running_log
				(session_id, run_type, distance_km, duration_minutes, avg_pace_per_km,
				 elevation_gain_meters, avg_heart_rate, max_heart_rate, perceived_effort,
				 weather, route_notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id;`,
		runningLog.SessionID, runningLog.RunType, runningLog.DistanceKm, runningLog.DurationMinutes,
		runningLog.AvgPacePerKm, runningLog.ElevationGainMeters, runningLog.AvgHeartRate,
		runningLog.MaxHeartRate, runningLog.PerceivedEffort, runningLog.Weather,
		runningLog.RouteNotes, runningLog.CreatedAt,
	).Scan(&runningLog.ID); err != nil {
		return nil, fmt.Errorf("insert running log: %w", err)
	}

	return &runningLog, nil
}

// StrengthEntries returns a user's strength logs joined with exercise info
// and session dates, newest first. Zero exerciseID means all exercises.
func (r *Repo) StrengthEntries(ctx context.Context, userID int, exerciseID int, from, to *time.Time) (_ []StrengthEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.strengthEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT sl.id, sl.session_id, sl.exercise_id, e.name, e.muscle_group,
				sl.sets, sl.reps, sl.weight_kg, sl.rpe, sl.rest_seconds, sl.created_at,
				ws.session_date, ws.notes
			FROM strength_log sl
			JOIN workout_session ws ON sl.session_id = ws.id
			JOIN exercises e ON sl.exercise_id = e.id
			WHERE ws.user_id = $1
				AND ($2::int = 0 OR sl.exercise_id = $2)
				AND ($3::date IS NULL OR ws.session_date >= $3)
				AND ($4::date IS NULL OR ws.session_date <= $4)
			ORDER BY ws.session_date DESC, sl.id DESC;`,
		userID, exerciseID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	entries := make([]StrengthEntry, 0)
	for rows.Next() {
		var e StrengthEntry
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.ExerciseID, &e.ExerciseName, &e.MuscleGroup,
			&e.Sets, &e.Reps, &e.WeightKg, &e.RPE, &e.RestSeconds, &e.CreatedAt,
			&e.SessionDate, &e.SessionNotes,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return entries, nil
}

// RunEntries returns a user's running logs joined with session dates, newest first.
func (r *Repo) RunEntries(ctx context.Context, userID int, from, to *time.Time) (_ []RunEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.runEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT rl.id, rl.session_id, rl.run_type, rl.distance_km, rl.duration_minutes,
				rl.avg_pace_per_km, rl.elevation_gain_meters, rl.avg_heart_rate,
				rl.max_heart_rate, rl.perceived_effort, rl.weather, rl.route_notes,
				rl.created_at, ws.session_date
			FROM running_log rl
			JOIN workout_session ws ON rl.session_id = ws.id
			WHERE ws.user_id = $1
				AND ($2::date IS NULL OR ws.session_date >= $2)
				AND ($3::date IS NULL OR ws.session_date <= $3)
			ORDER BY ws.session_date DESC, rl.id DESC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	entries := make([]RunEntry, 0)
	for rows.Next() {
		var e RunEntry
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.RunType, &e.DistanceKm, &e.DurationMinutes,
			&e.AvgPacePerKm, &e.ElevationGainMeters, &e.AvgHeartRate,
			&e.MaxHeartRate, &e.PerceivedEffort, &e.Weather, &e.RouteNotes,
			&e.CreatedAt, &e.SessionDate,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return entries, nil
}

// SessionDates returns the distinct workout dates of a user since the given
// date, normalized for streak computation.
func (r *Repo) SessionDates(ctx context.Context, userID int, since time.Time) (_ map[time.Time]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT session_date FROM workout_session
			WHERE user_id = $1 AND session_date >= $2;`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	dates := make(map[time.Time]bool)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates[DateOnly(d)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return dates, nil
}

// SessionCounts returns the user's all-time session count and per-type
// counts since the given date.
func (r *Repo) SessionCounts(ctx context.Context, userID int, since time.Time) (total int, byTypeSince map[string]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionCounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_session WHERE user_id = $1;`,
		userID,
	).Scan(&total); err != nil {
		return 0, nil, fmt.Errorf("count sessions: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT session_type, COUNT(*) FROM workout_session
			WHERE user_id = $1 AND session_date >= $2
			GROUP BY session_type;`,
		userID, since,
	)
	if err != nil {
		return 0, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	byTypeSince = make(map[string]int)
	for rows.Next() {
		var sessionType string
		var count int
		if err := rows.Scan(&sessionType, &count); err != nil {
			return 0, nil, err
		}
		byTypeSince[sessionType] = count
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("rows: %w", err)
	}

	return total, byTypeSince, nil
}

func (r *Repo) sessionStrengthLogs(ctx context.Context, sessionID int) ([]StrengthLog, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT sl.id, sl.session_id, sl.exercise_id, e.name, e.muscle_group,
				sl.sets, sl.reps, sl.weight_kg, sl.rpe, sl.rest_seconds, sl.created_at
			FROM strength_log sl
			JOIN exercises e ON sl.exercise_id = e.id
			WHERE sl.session_id = $1
			ORDER BY sl.id;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]StrengthLog, 0)
	for rows.Next() {
		var l StrengthLog
		if err := rows.Scan(
			&l.ID, &l.SessionID, &l.ExerciseID, &l.ExerciseName, &l.MuscleGroup,
			&l.Sets, &l.Reps, &l.WeightKg, &l.RPE, &l.RestSeconds, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *Repo) sessionRunningLogs(ctx context.Context, sessionID int) ([]RunningLog, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, run_type, distance_km, duration_minutes, avg_pace_per_km,
				elevation_gain_meters, avg_heart_rate, max_heart_rate, perceived_effort,
				weather, route_notes, created_at
			FROM running_log
			WHERE session_id = $1
			ORDER BY id;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]RunningLog, 0)
	for rows.Next() {
		var l RunningLog
		if err := rows.Scan(
			&l.ID, &l.SessionID, &l.RunType, &l.DistanceKm, &l.DurationMinutes,
			&l.AvgPacePerKm, &l.ElevationGainMeters, &l.AvgHeartRate, &l.MaxHeartRate,
			&l.PerceivedEffort, &l.Weather, &l.RouteNotes, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
