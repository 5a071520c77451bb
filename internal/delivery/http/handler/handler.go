package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"
	"go-medical-appointment/pkg/validator"

	"github.com/gorilla/mux"
)

var errInvalidID = errors.New("invalid id")

// parseID reads the positive numeric {id} path variable.
func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// decodeAndValidate decodes the JSON body into req and runs the struct
// validator. It writes the 400 response itself and reports false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}

// writeValidationError answers 400 if err carries relation validation failures.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		response.ValidationError(w, validationErr.Fields)
		return true
	}
	return false
}
