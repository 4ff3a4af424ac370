package workouts

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/pkg"
)

type AnalyticsHandler struct {
	analyzer *Analyzer
}

func NewAnalyticsHandler(analyzer *Analyzer) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyzer: analyzer,
	}
}

func (handler *AnalyticsHandler) HandleStrengthVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.strengthVolume")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weeks := queryInt(r, "weeks", 12)
	volumes, err := handler.analyzer.WeeklyStrengthVolume(ctx, userID, weeks)
	if err != nil {
		log.Errorf("failed to get weekly strength volume: %s", err)
		http.Error(w, "failed to get weekly strength volume", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, volumes, "weekly strength volume")
}

func (handler *AnalyticsHandler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.exerciseProgress")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
		return
	}

	limit := queryInt(r, "limit", 50)
	progress, err := handler.analyzer.ExerciseProgress(ctx, userID, exerciseID, limit)
	if err != nil {
		log.Errorf("failed to get exercise progress [%d]: %s", exerciseID, err)
		http.Error(w, "failed to get exercise progress", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, progress, "exercise progress")
}

func (handler *AnalyticsHandler) HandleRunningProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.runningProgress")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weeks := queryInt(r, "weeks", 12)
	progress, err := handler.analyzer.RunningProgress(ctx, userID, weeks)
	if err != nil {
		log.Errorf("failed to get running progress: %s", err)
		http.Error(w, "failed to get running progress", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, progress, "running progress")
}

func (handler *AnalyticsHandler) HandleRunTypeDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.runTypeDistribution")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	distribution, err := handler.analyzer.RunTypeDistribution(ctx, userID)
	if err != nil {
		log.Errorf("failed to get run type distribution: %s", err)
		http.Error(w, "failed to get run type distribution", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, distribution, "run type distribution")
}

func (handler *AnalyticsHandler) HandleMuscleGroupVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.muscleGroupVolume")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var from, to *time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			http.Error(w, "parse form error, parameter <from>", http.StatusBadRequest)
			return
		}
		from = &parsed
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			http.Error(w, "parse form error, parameter <to>", http.StatusBadRequest)
			return
		}
		to = &parsed
	}

	volumes, err := handler.analyzer.MuscleGroupVolumes(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to get muscle group volumes: %s", err)
		http.Error(w, "failed to get muscle group volumes", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, volumes, "muscle group volumes")
}

func (handler *AnalyticsHandler) HandleWorkoutFrequency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.workoutFrequency")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	frequency, err := handler.analyzer.WorkoutFrequency(ctx, userID)
	if err != nil {
		log.Errorf("failed to get workout frequency: %s", err)
		http.Error(w, "failed to get workout frequency", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, frequency, "workout frequency")
}

func (handler *AnalyticsHandler) HandlePRHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.prHistory")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
		return
	}

	history, err := handler.analyzer.PRHistory(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("failed to get pr history [%d]: %s", exerciseID, err)
		http.Error(w, "failed to get pr history", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, history, "pr history")
}

func (handler *AnalyticsHandler) HandleRunningZones(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.runningZones")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	report, err := handler.analyzer.RunningZones(ctx, userID)
	if err != nil {
		log.Errorf("failed to get running zones: %s", err)
		http.Error(w, "failed to get running zones", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, report, "running zones")
}

func (handler *AnalyticsHandler) HandleWeekComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.weekComparison")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	comparison, err := handler.analyzer.CompareWeeks(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("failed to get week comparison: %s", err)
		http.Error(w, "failed to get week comparison", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, comparison, "week comparison")
}

func (handler *AnalyticsHandler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.heatmap")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weeks := queryInt(r, "weeks", 52)
	heatmap, err := handler.analyzer.Heatmap(ctx, userID, weeks, time.Now())
	if err != nil {
		log.Errorf("failed to get activity heatmap: %s", err)
		http.Error(w, "failed to get activity heatmap", http.StatusInternalServerError)
		return
	}

	writeAnalyticsJSON(w, heatmap, "activity heatmap")
}

func queryInt(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

func writeAnalyticsJSON(w http.ResponseWriter, payload any, what string) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal %s: %s", what, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, http.StatusOK)
}
