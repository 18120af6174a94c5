package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"care_connect/internal/api/middleware"
	"care_connect/internal/app/service"
	"care_connect/internal/common"
)

type AlertHandler struct {
	alertService *service.AlertService
}

func NewAlertHandler(as *service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: as}
}

// Alerts are asymmetric on purpose: any authenticated caller may file
// one, only admins may read the list.
func (h *AlertHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.create)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Get("/", h.list)
	})
}

func (h *AlertHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	alert, err := h.alertService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, alert)
}

func (h *AlertHandler) list(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alertService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, alerts)
}
