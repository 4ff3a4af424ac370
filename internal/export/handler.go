package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/records"
	"github.com/fitkeep/fitkeep/internal/recovery"
	"github.com/fitkeep/fitkeep/internal/telemetry/metrics"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/internal/workouts"
	"github.com/fitkeep/fitkeep/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=export_mocks_test.go -package=export

// exportRecoveryLimit caps an export at roughly three years of daily logs.
const exportRecoveryLimit = 1100

type workoutsRepo interface {
	StrengthEntries(ctx context.Context, userID, exerciseID int, from, to *time.Time) ([]workouts.StrengthEntry, error)
	RunEntries(ctx context.Context, userID int, from, to *time.Time) ([]workouts.RunEntry, error)
}

type recoveryRepo interface {
	List(ctx context.Context, userID, limit int) ([]recovery.Log, error)
}

type recordsRepo interface {
	List(ctx context.Context, userID int, recordType string) ([]records.PersonalRecord, error)
}

type Handler struct {
	workoutsRepo   workoutsRepo
	recoveryRepo   recoveryRepo
	recordsRepo    recordsRepo
	metricsManager *metrics.Manager
}

func NewHandler(
	workoutsRepo workoutsRepo,
	recoveryRepo recoveryRepo,
	recordsRepo recordsRepo,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		workoutsRepo:   workoutsRepo,
		recoveryRepo:   recoveryRepo,
		recordsRepo:    recordsRepo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export.strength")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := handler.workoutsRepo.StrengthEntries(ctx, userID, 0, nil, nil)
	if err != nil {
		log.Errorf("export strength error: %s", err)
		http.Error(w, "failed to export strength data", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writeStrengthRows(writer, entries, true)
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("export strength, write csv error: %s", err)
		http.Error(w, "failed to export strength data", http.StatusInternalServerError)
		return
	}

	handler.serveCSV(w, "strength_data", buf.Bytes())
}

func (handler *Handler) HandleRunning(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export.running")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := handler.workoutsRepo.RunEntries(ctx, userID, nil, nil)
	if err != nil {
		log.Errorf("export running error: %s", err)
		http.Error(w, "failed to export running data", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writeRunningRows(writer, entries, true)
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("export running, write csv error: %s", err)
		http.Error(w, "failed to export running data", http.StatusInternalServerError)
		return
	}

	handler.serveCSV(w, "running_data", buf.Bytes())
}

func (handler *Handler) HandleRecovery(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export.recovery")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	logs, err := handler.recoveryRepo.List(ctx, userID, exportRecoveryLimit)
	if err != nil {
		log.Errorf("export recovery error: %s", err)
		http.Error(w, "failed to export recovery data", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writeRecoveryRows(writer, logs, true)
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("export recovery, write csv error: %s", err)
		http.Error(w, "failed to export recovery data", http.StatusInternalServerError)
		return
	}

	handler.serveCSV(w, "recovery_data", buf.Bytes())
}

func (handler *Handler) HandlePRs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export.prs")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	personalRecords, err := handler.recordsRepo.List(ctx, userID, "")
	if err != nil {
		log.Errorf("export personal records error: %s", err)
		http.Error(w, "failed to export personal records", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writeRecordRows(writer, personalRecords, true)
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("export personal records, write csv error: %s", err)
		http.Error(w, "failed to export personal records", http.StatusInternalServerError)
		return
	}

	handler.serveCSV(w, "personal_records", buf.Bytes())
}

// HandleAll writes all data sets into one CSV, section by section.
func (handler *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export.all")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	strengthEntries, err := handler.workoutsRepo.StrengthEntries(ctx, userID, 0, nil, nil)
	if err != nil {
		log.Errorf("export all, strength error: %s", err)
		http.Error(w, "failed to export data", http.StatusInternalServerError)
		return
	}
	runEntries, err := handler.workoutsRepo.RunEntries(ctx, userID, nil, nil)
	if err != nil {
		log.Errorf("export all, running error: %s", err)
		http.Error(w, "failed to export data", http.StatusInternalServerError)
		return
	}
	recoveryLogs, err := handler.recoveryRepo.List(ctx, userID, exportRecoveryLimit)
	if err != nil {
		log.Errorf("export all, recovery error: %s", err)
		http.Error(w, "failed to export data", http.StatusInternalServerError)
		return
	}
	personalRecords, err := handler.recordsRepo.List(ctx, userID, "")
	if err != nil {
		log.Errorf("export all, records error: %s", err)
		http.Error(w, "failed to export data", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	_ = writer.Write([]string{"=== STRENGTH TRAINING DATA ==="})
	writeStrengthRows(writer, strengthEntries, false)
	_ = writer.Write([]string{})

	_ = writer.Write([]string{"=== RUNNING DATA ==="})
	writeRunningRows(writer, runEntries, false)
	_ = writer.Write([]string{})

	_ = writer.Write([]string{"=== RECOVERY DATA ==="})
	writeRecoveryRows(writer, recoveryLogs, false)
	_ = writer.Write([]string{})

	_ = writer.Write([]string{"=== PERSONAL RECORDS ==="})
	writeRecordRows(writer, personalRecords, false)

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("export all, write csv error: %s", err)
		http.Error(w, "failed to export data", http.StatusInternalServerError)
		return
	}

	handler.serveCSV(w, "fitkeep_export", buf.Bytes())
}

func (handler *Handler) serveCSV(w http.ResponseWriter, prefix string, data []byte) {
	filename := fmt.Sprintf(
		"%s_%s_%s.csv",
		prefix,
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
	)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if handler.metricsManager != nil {
		handler.metricsManager.CounterExportsServed.Inc()
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.CSV, data, http.StatusOK)
}

// full selects the wide column layout used by the single-set exports, the
// combined export keeps the narrower original sections.
func writeStrengthRows(writer *csv.Writer, entries []workouts.StrengthEntry, full bool) {
	if full {
		_ = writer.Write([]string{
			"Date", "Exercise", "Muscle Group", "Sets", "Reps", "Weight (kg)",
			"RPE", "Rest (sec)", "Volume", "Est. 1RM", "Session Notes",
		})
	} else {
		_ = writer.Write([]string{
			"Date", "Exercise", "Muscle Group", "Sets", "Reps", "Weight (kg)",
			"RPE", "Volume", "Est. 1RM",
		})
	}

	for _, entry := range entries {
		estimated1RM := ""
		if entry.WeightKg != nil {
			estimated1RM = formatFloat(workouts.EstimateOneRepMax(*entry.WeightKg, entry.Reps))
		}
		row := []string{
			entry.SessionDate.Format(time.DateOnly),
			entry.ExerciseName,
			entry.MuscleGroup,
			strconv.Itoa(entry.Sets),
			strconv.Itoa(entry.Reps),
			formatFloatPtr(entry.WeightKg),
			formatIntPtr(entry.RPE),
		}
		if full {
			row = append(row, formatIntPtr(entry.RestSeconds))
		}
		row = append(row, formatFloat(entry.TotalVolume()), estimated1RM)
		if full {
			row = append(row, entry.SessionNotes)
		}
		_ = writer.Write(row)
	}
}

func writeRunningRows(writer *csv.Writer, entries []workouts.RunEntry, full bool) {
	if full {
		_ = writer.Write([]string{
			"Date", "Run Type", "Distance (km)", "Duration (min)", "Pace (min/km)",
			"Avg HR", "Max HR", "Elevation (m)", "Perceived Effort", "Weather", "Notes",
		})
	} else {
		_ = writer.Write([]string{
			"Date", "Run Type", "Distance (km)", "Duration (min)", "Pace (min/km)",
			"Avg HR", "Max HR",
		})
	}

	for _, entry := range entries {
		row := []string{
			entry.SessionDate.Format(time.DateOnly),
			entry.RunType,
			formatFloat(entry.DistanceKm),
			formatIntPtr(entry.DurationMinutes),
			formatFloatPtr(entry.AvgPacePerKm),
			formatIntPtr(entry.AvgHeartRate),
			formatIntPtr(entry.MaxHeartRate),
		}
		if full {
			row = append(row,
				formatIntPtr(entry.ElevationGainMeters),
				formatIntPtr(entry.PerceivedEffort),
				entry.Weather,
				entry.RouteNotes,
			)
		}
		_ = writer.Write(row)
	}
}

func writeRecoveryRows(writer *csv.Writer, logs []recovery.Log, full bool) {
	if full {
		_ = writer.Write([]string{
			"Date", "Sleep Quality", "Energy Level", "Muscle Soreness", "Motivation", "Notes",
		})
	} else {
		_ = writer.Write([]string{
			"Date", "Sleep Quality", "Energy Level", "Muscle Soreness", "Motivation",
		})
	}

	for _, recoveryLog := range logs {
		row := []string{
			recoveryLog.LogDate.Format(time.DateOnly),
			formatIntPtr(recoveryLog.SleepQuality),
			formatIntPtr(recoveryLog.EnergyLevel),
			formatIntPtr(recoveryLog.MuscleSoreness),
			formatIntPtr(recoveryLog.MotivationScore),
		}
		if full {
			row = append(row, recoveryLog.Notes)
		}
		_ = writer.Write(row)
	}
}

func writeRecordRows(writer *csv.Writer, personalRecords []records.PersonalRecord, full bool) {
	if full {
		_ = writer.Write([]string{"Date Achieved", "Exercise", "Record Type", "Value", "Notes"})
	} else {
		_ = writer.Write([]string{"Date", "Exercise", "Record Type", "Value"})
	}

	for _, record := range personalRecords {
		exerciseName := record.ExerciseName
		if exerciseName == "" {
			exerciseName = "N/A"
		}
		row := []string{
			record.DateAchieved.Format(time.DateOnly),
			exerciseName,
			record.RecordType,
			formatFloat(record.Value),
		}
		if full {
			row = append(row, record.Notes)
		}
		_ = writer.Write(row)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
