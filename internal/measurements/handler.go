package measurements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=measurements_mocks_test.go -package=measurements

type measurementsRepo interface {
	Add(ctx context.Context, m BodyMeasurement) (*BodyMeasurement, error)
	List(ctx context.Context, userID, limit int) ([]BodyMeasurement, error)
	ListAsc(ctx context.Context, userID int) ([]BodyMeasurement, error)
	LatestTwo(ctx context.Context, userID int) ([]BodyMeasurement, error)
	Delete(ctx context.Context, userID, id int) error
}

type Handler struct {
	repo measurementsRepo
}

func NewHandler(repo measurementsRepo) *Handler {
	return &Handler{repo: repo}
}

// FieldChange is the per-field delta between the two latest measurements.
type FieldChange struct {
	Field    string  `json:"field"`
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`
	Change   float64 `json:"change"`
}

type ComparisonResponse struct {
	Current  *BodyMeasurement `json:"current"`
	Previous *BodyMeasurement `json:"previous"`
	Changes  []FieldChange    `json:"changes"`
}

type ProgressPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type ProgressResponse struct {
	Field  string          `json:"field"`
	Points []ProgressPoint `json:"points"`
}

type DeleteMeasurementResponse struct {
	DeletedID int `json:"deletedId"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var measurement BodyMeasurement
	if err := json.NewDecoder(r.Body).Decode(&measurement); err != nil {
		log.Errorf("add measurement, unmarshal json params: %s", err)
		http.Error(w, "add measurement failed", http.StatusBadRequest)
		return
	}

	measurement.UserID = userID
	if measurement.MeasurementDate.IsZero() {
		measurement.MeasurementDate = time.Now()
	}

	added, err := handler.repo.Add(ctx, measurement)
	if err != nil {
		log.Errorf("add measurement error: %s", err)
		http.Error(w, "failed to add measurement", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added measurement error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit (has to be non-zero value)", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	measurements, err := handler.repo.List(ctx, userID, limit)
	if err != nil {
		log.Errorf("list measurements error: %s", err)
		http.Error(w, "failed to get measurements", http.StatusInternalServerError)
		return
	}

	measurementsJson, err := json.Marshal(measurements)
	if err != nil {
		log.Errorf("marshal measurements error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, measurementsJson, http.StatusOK)
}

func (handler *Handler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.comparison")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	latest, err := handler.repo.LatestTwo(ctx, userID)
	if err != nil {
		log.Errorf("measurements comparison error: %s", err)
		http.Error(w, "failed to get measurements", http.StatusInternalServerError)
		return
	}

	comparison := Compare(latest)

	comparisonJson, err := json.Marshal(comparison)
	if err != nil {
		log.Errorf("marshal measurements comparison error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, comparisonJson, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.progress")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	field := mux.Vars(r)["field"]
	if !ValidField(field) {
		http.Error(w, fmt.Sprintf("error, unknown measurement field: %s", field), http.StatusBadRequest)
		return
	}

	measurements, err := handler.repo.ListAsc(ctx, userID)
	if err != nil {
		log.Errorf("measurement progress error [%s]: %s", field, err)
		http.Error(w, "failed to get measurements", http.StatusInternalServerError)
		return
	}

	points := make([]ProgressPoint, 0)
	for i := range measurements {
		value, _ := FieldValue(&measurements[i], field)
		if value == nil {
			continue
		}
		points = append(points, ProgressPoint{
			Date:  measurements[i].MeasurementDate,
			Value: *value,
		})
	}

	progressJson, err := json.Marshal(ProgressResponse{Field: field, Points: points})
	if err != nil {
		log.Errorf("marshal measurement progress error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.delete")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, measurement id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			http.Error(w, "measurement not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete measurement [%d] error: %s", id, err)
		http.Error(w, "failed to delete measurement", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteMeasurementResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete measurement response error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// Compare builds the comparison between the two newest measurements,
// newest first in the input. With fewer than two measurements the
// changes list stays empty.
func Compare(latest []BodyMeasurement) ComparisonResponse {
	comparison := ComparisonResponse{Changes: make([]FieldChange, 0)}
	if len(latest) > 0 {
		comparison.Current = &latest[0]
	}
	if len(latest) < 2 {
		return comparison
	}
	comparison.Previous = &latest[1]

	for _, field := range comparableFields {
		current, _ := FieldValue(comparison.Current, field)
		previous, _ := FieldValue(comparison.Previous, field)
		if current == nil || previous == nil {
			continue
		}
		comparison.Changes = append(comparison.Changes, FieldChange{
			Field:    field,
			Previous: *previous,
			Current:  *current,
			Change:   round2(*current - *previous),
		})
	}

	return comparison
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
