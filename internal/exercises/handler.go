package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/internal/workouts"
	"github.com/fitkeep/fitkeep/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context, params ListParams) ([]Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	AddSubstitution(ctx context.Context, exerciseID, substituteID int) error
	RemoveSubstitution(ctx context.Context, exerciseID, substituteID int) error
	ListSubstitutes(ctx context.Context, exerciseID int) ([]Exercise, error)
	History(ctx context.Context, userID, exerciseID, limit int) ([]HistoryEntry, error)
	BestLift(ctx context.Context, userID, exerciseID int) (float64, int, bool, error)
}

type AddExerciseRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
	ExerciseType string   `json:"exerciseType,omitempty"`
}

type ListExercisesResponse struct {
	Exercises    []Exercise `json:"exercises"`
	MuscleGroups []string   `json:"muscleGroups"`
}

type HistoryPoint struct {
	HistoryEntry
	Estimated1RM float64 `json:"estimated1RM"`
}

type ExerciseHistoryResponse struct {
	History []HistoryPoint `json:"history"`
	Best1RM *float64       `json:"best1RM,omitempty"`
}

type SubstitutionResponse struct {
	ExerciseID   int `json:"exerciseId"`
	SubstituteID int `json:"substituteId"`
}

type UpdateExerciseResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if req.ExerciseType == "" {
		req.ExerciseType = ExerciseTypeStrength
	}
	if !ValidExerciseType(req.ExerciseType) {
		http.Error(w, "error, invalid exercise type", http.StatusBadRequest)
		return
	}
	for _, group := range req.MuscleGroups {
		if !ValidMuscleGroup(group) {
			http.Error(w, "error, unknown muscle group: "+group, http.StatusBadRequest)
			return
		}
	}

	added, err := handler.repo.Add(ctx, Exercise{
		Name:         req.Name,
		Description:  req.Description,
		MuscleGroup:  JoinMuscleGroups(req.MuscleGroups),
		ExerciseType: req.ExerciseType,
	})
	if err != nil {
		if errors.Is(err, ErrExerciseExists) {
			http.Error(w, "exercise with this name already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add exercise [%s]: %s", req.Name, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new exercise: %s", err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: [%s] %s", added.MuscleGroup, added.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, err := exerciseIDFromRequest(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get exercise %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "failed to marshal exercise", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	params := ListParams{
		MuscleGroup:  r.URL.Query().Get("group"),
		ExerciseType: r.URL.Query().Get("type"),
		Search:       r.URL.Query().Get("search"),
	}
	if params.ExerciseType != "" && !ValidExerciseType(params.ExerciseType) {
		http.Error(w, "error, invalid exercise type", http.StatusBadRequest)
		return
	}

	exercises, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list exercises error: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListExercisesResponse{
		Exercises:    exercises,
		MuscleGroups: MuscleGroups,
	})
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id, err := exerciseIDFromRequest(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if req.ExerciseType != "" && !ValidExerciseType(req.ExerciseType) {
		http.Error(w, "error, invalid exercise type", http.StatusBadRequest)
		return
	}

	exercise := &Exercise{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		MuscleGroup:  JoinMuscleGroups(req.MuscleGroups),
		ExerciseType: req.ExerciseType,
	}
	if err := handler.repo.Update(ctx, exercise); err != nil {
		switch {
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseExists):
			http.Error(w, "exercise with this name already exists", http.StatusConflict)
		default:
			log.Errorf("failed to update exercise %d: %s", id, err)
			http.Error(w, "error, failed to update exercise", http.StatusInternalServerError)
		}
		return
	}

	updateRespJson, err := json.Marshal(UpdateExerciseResponse{UpdatedID: id})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleListSubstitutes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.substitutes")
	defer span.End()

	id, err := exerciseIDFromRequest(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get exercise %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	substitutes, err := handler.repo.ListSubstitutes(ctx, id)
	if err != nil {
		log.Errorf("failed to list substitutes for exercise %d: %s", id, err)
		http.Error(w, "failed to get substitutes", http.StatusInternalServerError)
		return
	}

	substitutesJson, err := json.Marshal(substitutes)
	if err != nil {
		log.Errorf("failed to marshal substitutes: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, substitutesJson, http.StatusOK)
}

func (handler *Handler) HandleAddSubstitute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.addSubstitute")
	defer span.End()

	id, err := exerciseIDFromRequest(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	subID, err := exerciseIDFromRequest(r, "subId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddSubstitution(ctx, id, subID); err != nil {
		switch {
		case errors.Is(err, ErrSelfSubstitution):
			http.Error(w, "exercise cannot substitute itself", http.StatusBadRequest)
		case errors.Is(err, ErrSubstitutionExists):
			http.Error(w, "substitution already exists", http.StatusConflict)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		default:
			log.Errorf("failed to add substitution %d <-> %d: %s", id, subID, err)
			http.Error(w, "error, failed to add substitution", http.StatusInternalServerError)
		}
		return
	}

	respJson, err := json.Marshal(SubstitutionResponse{ExerciseID: id, SubstituteID: subID})
	if err != nil {
		log.Errorf("failed to marshal substitution response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("substitution added: %d <-> %d", id, subID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleRemoveSubstitute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.removeSubstitute")
	defer span.End()

	id, err := exerciseIDFromRequest(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	subID, err := exerciseIDFromRequest(r, "subId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.RemoveSubstitution(ctx, id, subID); err != nil {
		if errors.Is(err, ErrSubstitutionNotFound) {
			http.Error(w, "substitution not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to remove substitution %d <-> %d: %s", id, subID, err)
		http.Error(w, "error, failed to remove substitution", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SubstitutionResponse{ExerciseID: id, SubstituteID: subID})
	if err != nil {
		log.Errorf("failed to marshal substitution response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.history")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := exerciseIDFromRequest(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit (has to be non-zero value)", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	history, err := handler.repo.History(ctx, userID, id, limit)
	if err != nil {
		log.Errorf("failed to get exercise history [%d]: %s", id, err)
		http.Error(w, "exercise history not found", http.StatusInternalServerError)
		return
	}

	response := ExerciseHistoryResponse{
		History: make([]HistoryPoint, 0, len(history)),
	}
	for _, entry := range history {
		point := HistoryPoint{HistoryEntry: entry}
		if entry.WeightKg != nil {
			point.Estimated1RM = workouts.EstimateOneRepMax(*entry.WeightKg, entry.Reps)
		}
		response.History = append(response.History, point)
	}

	weight, reps, found, err := handler.repo.BestLift(ctx, userID, id)
	if err != nil {
		log.Errorf("failed to get best lift [%d]: %s", id, err)
	} else if found {
		best := workouts.EstimateOneRepMax(weight, reps)
		response.Best1RM = &best
	}

	historyJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("failed to marshal exercise history: %s", err)
		http.Error(w, "failed to marshal exercise history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

func exerciseIDFromRequest(r *http.Request, param string) (int, error) {
	idStr := mux.Vars(r)[param]
	if idStr == "" {
		return 0, errors.New("error, " + param + " empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, " + param + " NaN")
	}
	return id, nil
}
