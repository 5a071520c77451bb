package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/delivery/http/view"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	view            *view.Renderer
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, view *view.Renderer) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		view:            view,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	auditLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	h.view.Render(w, r, view.PageAuditLogs, []dto.AuditLogResponse{*auditLog})
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	h.view.Render(w, r, view.PageAuditLogs, auditLogs)
}
