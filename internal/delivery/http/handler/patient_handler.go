package handler

import (
	"errors"
	"net/http"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/delivery/http/view"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"
	"go-medical-appointment/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	view           *view.Renderer
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, view *view.Renderer) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		view:           view,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if _, err := h.patientUsecase.CreatePatient(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to create patient")
		return
	}

	response.Success(w, "Patient created successfully")
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	h.view.Render(w, r, view.PagePatients, []dto.PatientResponse{*patient})
}

func (h *PatientHandler) GetPatientExercises(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatientExercises(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient exercises")
		return
	}

	h.view.Render(w, r, view.PagePatientExercises, []dto.PatientResponse{*patient})
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	h.view.Render(w, r, view.PagePatients, patients)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	_, err = h.patientUsecase.UpdatePatient(r.Context(), patientID, &req)
	h.writeUpdateResult(w, err)
}

func (h *PatientHandler) PatchPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.PatchPatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	_, err = h.patientUsecase.PatchPatient(r.Context(), patientID, &req)
	h.writeUpdateResult(w, err)
}

func (h *PatientHandler) writeUpdateResult(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		response.Success(w, "Patient updated successfully")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	default:
		response.InternalServerError(w, "Failed to update patient")
	}
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), patientID); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to delete patient")
		return
	}

	response.Success(w, "Patient deleted successfully")
}
