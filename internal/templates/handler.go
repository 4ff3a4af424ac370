package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/internal/workouts"
	"github.com/fitkeep/fitkeep/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=templates_mocks_test.go -package=templates

type templatesRepo interface {
	Add(ctx context.Context, template Template) (*Template, error)
	Get(ctx context.Context, userID, id int) (*Template, error)
	List(ctx context.Context, userID int) ([]Template, error)
	Update(ctx context.Context, template *Template) error
	Delete(ctx context.Context, userID, id int) error
}

type logPrefiller interface {
	PrefillLogs(ctx context.Context, userID, templateID int) ([]workouts.StrengthLog, error)
}

type Handler struct {
	repo      templatesRepo
	prefiller logPrefiller
}

func NewHandler(repo templatesRepo, prefiller logPrefiller) *Handler {
	return &Handler{
		repo:      repo,
		prefiller: prefiller,
	}
}

type PrefillResponse struct {
	TemplateID   int                    `json:"templateId"`
	TemplateName string                 `json:"templateName"`
	Logs         []workouts.StrengthLog `json:"logs"`
}

type DeleteTemplateResponse struct {
	DeletedID int `json:"deletedId"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.create")
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

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Errorf("create template, unmarshal json params: %s", err)
		http.Error(w, "create template failed", http.StatusBadRequest)
		return
	}

	template.Name = strings.TrimSpace(template.Name)
	if template.Name == "" {
		http.Error(w, "error, template name empty", http.StatusBadRequest)
		return
	}
	template.UserID = userID

	added, err := handler.repo.Add(ctx, template)
	if err != nil {
		switch {
		case errors.Is(err, ErrTemplateExists):
			http.Error(w, "template with that name already exists", http.StatusConflict)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "unknown exercise in template", http.StatusBadRequest)
		default:
			log.Errorf("create template error: %s", err)
			http.Error(w, "failed to create template", http.StatusInternalServerError)
		}
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal created template error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	templates, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list templates error: %s", err)
		http.Error(w, "failed to get templates", http.StatusInternalServerError)
		return
	}

	templatesJson, err := json.Marshal(templates)
	if err != nil {
		log.Errorf("marshal templates error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, templatesJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := templateIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, template id NaN", http.StatusBadRequest)
		return
	}

	template, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("get template [%d] error: %s", id, err)
		http.Error(w, "failed to get template", http.StatusInternalServerError)
		return
	}

	templateJson, err := json.Marshal(template)
	if err != nil {
		log.Errorf("marshal template error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, templateJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.update")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := templateIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, template id NaN", http.StatusBadRequest)
		return
	}

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Errorf("update template, unmarshal json params: %s", err)
		http.Error(w, "update template failed", http.StatusBadRequest)
		return
	}

	template.Name = strings.TrimSpace(template.Name)
	if template.Name == "" {
		http.Error(w, "error, template name empty", http.StatusBadRequest)
		return
	}
	template.ID = id
	template.UserID = userID

	if err := handler.repo.Update(ctx, &template); err != nil {
		switch {
		case errors.Is(err, ErrTemplateNotFound):
			http.Error(w, "template not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "unknown exercise in template", http.StatusBadRequest)
		default:
			log.Errorf("update template [%d] error: %s", id, err)
			http.Error(w, "failed to update template", http.StatusInternalServerError)
		}
		return
	}

	updated, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		log.Errorf("get updated template [%d] error: %s", id, err)
		http.Error(w, "failed to get template", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("marshal updated template error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.delete")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := templateIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, template id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete template [%d] error: %s", id, err)
		http.Error(w, "failed to delete template", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteTemplateResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete template response error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandlePrefill(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.prefill")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := templateIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, template id NaN", http.StatusBadRequest)
		return
	}

	template, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("prefill, get template [%d] error: %s", id, err)
		http.Error(w, "failed to get template", http.StatusInternalServerError)
		return
	}

	logs, err := handler.prefiller.PrefillLogs(ctx, userID, id)
	if err != nil {
		log.Errorf("prefill template [%d] error: %s", id, err)
		http.Error(w, "failed to prefill template", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(PrefillResponse{
		TemplateID:   template.ID,
		TemplateName: template.Name,
		Logs:         logs,
	})
	if err != nil {
		log.Errorf("marshal prefill response error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func templateIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
