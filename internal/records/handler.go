package records

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=records_mocks_test.go -package=records

type recordsRepo interface {
	List(ctx context.Context, userID int, recordType string) ([]PersonalRecord, error)
	History(ctx context.Context, userID, exerciseID int) ([]PersonalRecord, error)
	Timeline(ctx context.Context, userID, limit int) ([]TimelineEntry, error)
}

type Handler struct {
	repo recordsRepo
}

func NewHandler(repo recordsRepo) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	recordType := r.URL.Query().Get("type")
	if recordType != "" && !ValidRecordType(recordType) {
		http.Error(w, "error, invalid record type", http.StatusBadRequest)
		return
	}

	personalRecords, err := handler.repo.List(ctx, userID, recordType)
	if err != nil {
		log.Errorf("list personal records error: %s", err)
		http.Error(w, "failed to get personal records", http.StatusInternalServerError)
		return
	}

	recordsJson, err := json.Marshal(personalRecords)
	if err != nil {
		log.Errorf("marshal personal records error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordsJson, http.StatusOK)
}

func (handler *Handler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.timeline")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit (has to be non-zero value)", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	timeline, err := handler.repo.Timeline(ctx, userID, limit)
	if err != nil {
		log.Errorf("records timeline error: %s", err)
		http.Error(w, "failed to get records timeline", http.StatusInternalServerError)
		return
	}

	timelineJson, err := json.Marshal(timeline)
	if err != nil {
		log.Errorf("marshal records timeline error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, timelineJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.history")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID, err := strconv.Atoi(mux.Vars(r)["exerciseId"])
	if err != nil {
		http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
		return
	}

	history, err := handler.repo.History(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("record history error [%d]: %s", exerciseID, err)
		http.Error(w, "failed to get record history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("marshal record history error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}
