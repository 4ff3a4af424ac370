package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fitkeep/fitkeep/internal/middleware"
	"github.com/fitkeep/fitkeep/internal/telemetry/tracing"
	"github.com/fitkeep/fitkeep/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	summary, err := handler.service.Summary(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("dashboard summary error: %s", err)
		http.Error(w, "failed to get dashboard summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal dashboard summary error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (handler *Handler) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.alerts")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	alerts, err := handler.service.Alerts(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("dashboard alerts error: %s", err)
		http.Error(w, "failed to get dashboard alerts", http.StatusInternalServerError)
		return
	}

	alertsJson, err := json.Marshal(alerts)
	if err != nil {
		log.Errorf("marshal dashboard alerts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, alertsJson, http.StatusOK)
}
