package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"care_connect/internal/app/service"
	"care_connect/internal/common"
)

type VisitHandler struct {
	visitService *service.VisitService
}

func NewVisitHandler(vs *service.VisitService) *VisitHandler {
	return &VisitHandler{visitService: vs}
}

func (h *VisitHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.schedule)
	r.Get("/stats", h.stats)
}

func (h *VisitHandler) schedule(w http.ResponseWriter, r *http.Request) {
	var req service.ScheduleVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	visit, err := h.visitService.Schedule(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, visit)
}

func (h *VisitHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.visitService.Stats(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, stats)
}
