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

type ExerciseHandler struct {
	exerciseUsecase usecase.ExerciseUsecase
	validator       *validator.CustomValidator
	view            *view.Renderer
}

func NewExerciseHandler(exerciseUsecase usecase.ExerciseUsecase, validator *validator.CustomValidator, view *view.Renderer) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseUsecase: exerciseUsecase,
		validator:       validator,
		view:            view,
	}
}

func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExerciseRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if _, err := h.exerciseUsecase.CreateExercise(r.Context(), &req); err != nil {
		if writeValidationError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to create exercise")
		return
	}

	response.Success(w, "Exercise created successfully")
}

func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid exercise ID")
		return
	}

	exercise, err := h.exerciseUsecase.GetExercise(r.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, usecase.ErrExerciseNotFound) {
			response.NotFound(w, "Exercise not found")
			return
		}
		response.InternalServerError(w, "Failed to get exercise")
		return
	}

	h.view.Render(w, r, view.PageExercises, []dto.ExerciseResponse{*exercise})
}

func (h *ExerciseHandler) GetAllExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exerciseUsecase.GetAllExercises(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get exercises")
		return
	}

	h.view.Render(w, r, view.PageExercises, exercises)
}

func (h *ExerciseHandler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid exercise ID")
		return
	}

	var req dto.UpdateExerciseRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	_, err = h.exerciseUsecase.UpdateExercise(r.Context(), exerciseID, &req)
	h.writeUpdateResult(w, err)
}

func (h *ExerciseHandler) PatchExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid exercise ID")
		return
	}

	var req dto.PatchExerciseRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	_, err = h.exerciseUsecase.PatchExercise(r.Context(), exerciseID, &req)
	h.writeUpdateResult(w, err)
}

func (h *ExerciseHandler) writeUpdateResult(w http.ResponseWriter, err error) {
	if writeValidationError(w, err) {
		return
	}

	switch {
	case err == nil:
		response.Success(w, "Exercise updated successfully")
	case errors.Is(err, usecase.ErrExerciseNotFound):
		response.NotFound(w, "Exercise not found")
	default:
		response.InternalServerError(w, "Failed to update exercise")
	}
}

func (h *ExerciseHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid exercise ID")
		return
	}

	if err := h.exerciseUsecase.DeleteExercise(r.Context(), exerciseID); err != nil {
		if errors.Is(err, usecase.ErrExerciseNotFound) {
			response.NotFound(w, "Exercise not found")
			return
		}
		response.InternalServerError(w, "Failed to delete exercise")
		return
	}

	response.Success(w, "Exercise deleted successfully")
}
