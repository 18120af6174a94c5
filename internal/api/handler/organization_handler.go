package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"care_connect/internal/api/middleware"
	"care_connect/internal/app/service"
	"care_connect/internal/common"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
}

func NewOrganizationHandler(os *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: os}
}

func (h *OrganizationHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Put("/{id}/approve", h.approve)
		admin.Put("/{id}/ban", h.ban)
	})
}

func (h *OrganizationHandler) approve(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	if err := h.orgService.Approve(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Organization approved")
}

func (h *OrganizationHandler) ban(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	if err := h.orgService.Ban(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Organization banned")
}
