package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=recovery_mocks_test.go -package=recovery

type recoveryRepo interface {
	Upsert(ctx context.Context, recoveryLog Log) (*Log, error)
	List(ctx context.Context, userID, limit int) ([]Log, error)
	Delete(ctx context.Context, userID, id int) error
}

type LogWithScore struct {
	Log
	OverallScore *float64 `json:"overallScore,omitempty"`
}

type ListResponse struct {
	Logs          []LogWithScore `json:"logs"`
	WeeklyAverage *WeeklyAverage `json:"weeklyAverage,omitempty"`
}

type DeleteLogResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo     recoveryRepo
	analyzer *Analyzer
}

func NewHandler(repo recoveryRepo, analyzer *Analyzer) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.upsert")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var recoveryLog Log
	if err := json.NewDecoder(r.Body).Decode(&recoveryLog); err != nil {
		log.Tracef("new recovery log, unmarshal json params: %s", err)
		http.Error(w, "log recovery failed", http.StatusBadRequest)
		return
	}

	if !recoveryLog.ValidScores() {
		http.Error(w, "error, scores have to be between 1 and 10", http.StatusBadRequest)
		return
	}
	if recoveryLog.LogDate.IsZero() {
		recoveryLog.LogDate = time.Now()
	}
	recoveryLog.UserID = userID

	saved, err := handler.repo.Upsert(ctx, recoveryLog)
	if err != nil {
		log.Errorf("failed to upsert recovery log for user %d: %s", userID, err)
		http.Error(w, "error, failed to log recovery", http.StatusInternalServerError)
		return
	}

	savedJson, err := json.Marshal(LogWithScore{
		Log:          *saved,
		OverallScore: saved.OverallScore(),
	})
	if err != nil {
		log.Errorf("failed to marshal recovery log: %s", err)
		http.Error(w, "error, failed to log recovery", http.StatusInternalServerError)
		return
	}

	log.Debugf("recovery log saved for user %d: %s", userID, saved.LogDate.Format("2006-01-02"))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := 14
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit (has to be non-zero value)", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	logs, err := handler.repo.List(ctx, userID, limit)
	if err != nil {
		log.Errorf("list recovery logs error: %s", err)
		http.Error(w, "failed to get recovery logs", http.StatusInternalServerError)
		return
	}

	response := ListResponse{
		Logs: make([]LogWithScore, 0, len(logs)),
	}
	for _, l := range logs {
		response.Logs = append(response.Logs, LogWithScore{Log: l, OverallScore: l.OverallScore()})
	}

	weeklyAverage, err := handler.analyzer.WeeklyAverages(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("failed to get weekly recovery averages: %s", err)
	} else {
		response.WeeklyAverage = weeklyAverage
	}

	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("marshal recovery logs error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.delete")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "recovery log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete recovery log %d: %s", id, err)
		http.Error(w, "recovery log not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteLogResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.trends")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weeks := 12
	if weeksStr := r.URL.Query().Get("weeks"); weeksStr != "" {
		parsed, err := strconv.Atoi(weeksStr)
		if err == nil && parsed > 0 {
			weeks = parsed
		}
	}

	trends, err := handler.analyzer.Trends(ctx, userID, weeks, time.Now())
	if err != nil {
		log.Errorf("failed to get recovery trends: %s", err)
		http.Error(w, "failed to get recovery trends", http.StatusInternalServerError)
		return
	}

	trendsJson, err := json.Marshal(trends)
	if err != nil {
		log.Errorf("failed to marshal recovery trends: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trendsJson, http.StatusOK)
}
