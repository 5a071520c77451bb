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

type SpecialityHandler struct {
	specialityUsecase usecase.SpecialityUsecase
	validator         *validator.CustomValidator
	view              *view.Renderer
}

func NewSpecialityHandler(specialityUsecase usecase.SpecialityUsecase, validator *validator.CustomValidator, view *view.Renderer) *SpecialityHandler {
	return &SpecialityHandler{
		specialityUsecase: specialityUsecase,
		validator:         validator,
		view:              view,
	}
}

func (h *SpecialityHandler) CreateSpeciality(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpecialityRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if _, err := h.specialityUsecase.CreateSpeciality(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to create speciality")
		return
	}

	response.Success(w, "Speciality created successfully")
}

func (h *SpecialityHandler) GetSpeciality(w http.ResponseWriter, r *http.Request) {
	specialityID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid speciality ID")
		return
	}

	speciality, err := h.specialityUsecase.GetSpeciality(r.Context(), specialityID)
	if err != nil {
		if errors.Is(err, usecase.ErrSpecialityNotFound) {
			response.NotFound(w, "Speciality not found")
			return
		}
		response.InternalServerError(w, "Failed to get speciality")
		return
	}

	h.view.Render(w, r, view.PageSpecialities, []dto.SpecialityResponse{*speciality})
}

func (h *SpecialityHandler) GetAllSpecialities(w http.ResponseWriter, r *http.Request) {
	specialities, err := h.specialityUsecase.GetAllSpecialities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialities")
		return
	}

	h.view.Render(w, r, view.PageSpecialities, specialities)
}

func (h *SpecialityHandler) UpdateSpeciality(w http.ResponseWriter, r *http.Request) {
	specialityID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid speciality ID")
		return
	}

	var req dto.UpdateSpecialityRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	_, err = h.specialityUsecase.UpdateSpeciality(r.Context(), specialityID, &req)
	h.writeUpdateResult(w, err)
}

func (h *SpecialityHandler) PatchSpeciality(w http.ResponseWriter, r *http.Request) {
	specialityID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid speciality ID")
		return
	}

	var req dto.PatchSpecialityRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	_, err = h.specialityUsecase.PatchSpeciality(r.Context(), specialityID, &req)
	h.writeUpdateResult(w, err)
}

func (h *SpecialityHandler) writeUpdateResult(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		response.Success(w, "Speciality updated successfully")
	case errors.Is(err, usecase.ErrSpecialityNotFound):
		response.NotFound(w, "Speciality not found")
	default:
		response.InternalServerError(w, "Failed to update speciality")
	}
}

func (h *SpecialityHandler) DeleteSpeciality(w http.ResponseWriter, r *http.Request) {
	specialityID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid speciality ID")
		return
	}

	if err := h.specialityUsecase.DeleteSpeciality(r.Context(), specialityID); err != nil {
		if errors.Is(err, usecase.ErrSpecialityNotFound) {
			response.NotFound(w, "Speciality not found")
			return
		}
		response.InternalServerError(w, "Failed to delete speciality")
		return
	}

	response.Success(w, "Speciality deleted successfully")
}
