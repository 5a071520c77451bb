package handler

import (
	"errors"
	"net/http"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/delivery/http/view"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	view               *view.Renderer
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, view *view.Renderer) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		view:               view,
	}
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	h.view.Render(w, r, view.PageAppointments, []dto.AppointmentResponse{*appointment})
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	h.view.Render(w, r, view.PageAppointments, appointments)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID); err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.Success(w, "Appointment deleted successfully")
}
