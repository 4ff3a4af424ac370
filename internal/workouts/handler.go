package workouts

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
	"github.com/fitkeep/fitkeep/internal/telemetry/metrics"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts

type workoutsRepo interface {
	AddSession(ctx context.Context, session Session) (*Session, error)
	GetSession(ctx context.Context, userID, id int) (*Session, error)
	ListSessions(ctx context.Context, userID int, params ListParams) ([]Session, error)
	UpdateSession(ctx context.Context, session *Session) error
	DeleteSession(ctx context.Context, userID, id int) error
	AddStrengthLog(ctx context.Context, strengthLog StrengthLog) (*StrengthLog, error)
	AddRunningLog(ctx context.Context, runningLog RunningLog) (*RunningLog, error)
}

type prTracker interface {
	CheckStrengthLog(ctx context.Context, userID, exerciseID int, weightKg float64, reps int, date time.Time) (bool, error)
}

type templatePrefiller interface {
	PrefillLogs(ctx context.Context, userID, templateID int) ([]StrengthLog, error)
}

type AddSessionRequest struct {
	Session
	TemplateID *int `json:"templateId,omitempty"`
}

type AddStrengthLogResponse struct {
	StrengthLog
	Estimated1RM float64 `json:"estimated1RM"`
	IsPR         bool    `json:"isPr"`
}

type AddRunningLogResponse struct {
	RunningLog
	Trimp *float64 `json:"trimp,omitempty"`
}

type DeleteSessionResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateSessionResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo           workoutsRepo
	records        prTracker
	templates      templatePrefiller
	metricsManager *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
	records prTracker,
	templates templatePrefiller,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		records:        records,
		templates:      templates,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleNewSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
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

	var req AddSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new workout session, unmarshal json params: %s", err)
		http.Error(w, "add workout session failed", http.StatusBadRequest)
		return
	}

	if !ValidSessionType(req.Type) {
		http.Error(w, "error, invalid session type", http.StatusBadRequest)
		return
	}
	if req.SessionDate.IsZero() {
		req.SessionDate = time.Now()
	}
	req.UserID = userID

	addedSession, err := handler.repo.AddSession(ctx, req.Session)
	if err != nil {
		log.Errorf("failed to add workout session [%s] for user %d: %s", req.Type, userID, err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	if req.TemplateID != nil && handler.templates != nil {
		prefillLogs, err := handler.templates.PrefillLogs(ctx, userID, *req.TemplateID)
		if err != nil {
			log.Errorf("failed to prefill from template %d: %s", *req.TemplateID, err)
			http.Error(w, "error, failed to prefill from template", http.StatusBadRequest)
			return
		}
		for _, prefillLog := range prefillLogs {
			prefillLog.SessionID = addedSession.ID
			added, err := handler.repo.AddStrengthLog(ctx, prefillLog)
			if err != nil {
				log.Errorf("failed to add prefilled strength log [session %d]: %s", addedSession.ID, err)
				http.Error(w, "error, failed to add prefilled strength log", http.StatusInternalServerError)
				return
			}
			addedSession.StrengthLogs = append(addedSession.StrengthLogs, *added)
		}
	}

	sessionJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("failed to marshal new workout session: %s", err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsLogged.Inc()
	}

	log.Debugf("new workout session added for user %d: %d", userID, addedSession.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := sessionIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := handler.repo.GetSession(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout session %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal workout session: %s", err)
		http.Error(w, "failed to marshal workout session", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListParams{Limit: 50}

	if sessionType := r.URL.Query().Get("type"); sessionType != "" {
		if !ValidSessionType(sessionType) {
			http.Error(w, "error, invalid session type", http.StatusBadRequest)
			return
		}
		params.Type = sessionType
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			http.Error(w, "parse form error, parameter <from>", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			http.Error(w, "parse form error, parameter <to>", http.StatusBadRequest)
			return
		}
		params.To = &to
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			http.Error(w, "invalid limit (has to be non-zero value)", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	sessions, err := handler.repo.ListSessions(ctx, userID, params)
	if err != nil {
		log.Errorf("list workout sessions error: %s", err)
		http.Error(w, "failed to get workout sessions", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListSessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("marshal workout sessions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
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

	id, err := sessionIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("update workout session, unmarshal json params: %s", err)
		http.Error(w, "update workout session failed", http.StatusBadRequest)
		return
	}

	if session.Type != "" && !ValidSessionType(session.Type) {
		http.Error(w, "error, invalid session type", http.StatusBadRequest)
		return
	}

	session.ID = id
	session.UserID = userID

	if err := handler.repo.UpdateSession(ctx, &session); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update workout session %d: %s", id, err)
		http.Error(w, "error, failed to update workout session", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateSessionResponse{
		UpdatedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := sessionIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteSession(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			log.Debugf("workout session %d not found", id)
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout session %d: %s", id, err)
		http.Error(w, "workout session not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSessionResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleAddStrengthLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addStrengthLog")
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

	id, err := sessionIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var strengthLog StrengthLog
	if err := json.NewDecoder(r.Body).Decode(&strengthLog); err != nil {
		log.Tracef("new strength log, unmarshal json params: %s", err)
		http.Error(w, "add strength log failed", http.StatusBadRequest)
		return
	}

	if strengthLog.ExerciseID == 0 {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	if strengthLog.Sets < 1 || strengthLog.Reps < 1 {
		http.Error(w, "error, sets and reps have to be positive", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.GetSession(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout session %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	strengthLog.SessionID = session.ID
	added, err := handler.repo.AddStrengthLog(ctx, strengthLog)
	if err != nil {
		log.Errorf("failed to add strength log [session %d, exercise %d]: %s", id, strengthLog.ExerciseID, err)
		http.Error(w, "error, failed to add strength log", http.StatusInternalServerError)
		return
	}

	resp := AddStrengthLogResponse{
		StrengthLog: *added,
	}
	if added.WeightKg != nil {
		resp.Estimated1RM = EstimateOneRepMax(*added.WeightKg, added.Reps)
		isPR, err := handler.records.CheckStrengthLog(
			ctx, userID, added.ExerciseID, *added.WeightKg, added.Reps, session.SessionDate,
		)
		if err != nil {
			// the log itself is saved, a failed record check should not fail the request
			log.Errorf("failed to check personal records [exercise %d]: %s", added.ExerciseID, err)
		} else if isPR {
			resp.IsPR = true
			if handler.metricsManager != nil {
				handler.metricsManager.CounterPersonalRecords.Inc()
			}
		}
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal strength log: %s", err)
		http.Error(w, "error, failed to add strength log", http.StatusInternalServerError)
		return
	}

	log.Debugf("new strength log added: session %d, exercise %d", id, added.ExerciseID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleAddRunningLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addRunningLog")
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

	id, err := sessionIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var runningLog RunningLog
	if err := json.NewDecoder(r.Body).Decode(&runningLog); err != nil {
		log.Tracef("new running log, unmarshal json params: %s", err)
		http.Error(w, "add running log failed", http.StatusBadRequest)
		return
	}

	if runningLog.DistanceKm <= 0 {
		http.Error(w, "error, distance has to be positive", http.StatusBadRequest)
		return
	}
	if runningLog.RunType == "" {
		runningLog.RunType = RunTypeEasy
	}
	if !ValidRunType(runningLog.RunType) {
		http.Error(w, "error, invalid run type", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.GetSession(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout session %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if runningLog.AvgPacePerKm == nil && runningLog.DurationMinutes != nil {
		runningLog.AvgPacePerKm = PaceMinPerKm(*runningLog.DurationMinutes, runningLog.DistanceKm)
	}

	runningLog.SessionID = session.ID
	added, err := handler.repo.AddRunningLog(ctx, runningLog)
	if err != nil {
		log.Errorf("failed to add running log [session %d]: %s", id, err)
		http.Error(w, "error, failed to add running log", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AddRunningLogResponse{
		RunningLog: *added,
		Trimp:      added.TRIMP(),
	})
	if err != nil {
		log.Errorf("failed to marshal running log: %s", err)
		http.Error(w, "error, failed to add running log", http.StatusInternalServerError)
		return
	}

	log.Debugf("new running log added: session %d, %.2f km", id, added.DistanceKm)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func sessionIDFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}
