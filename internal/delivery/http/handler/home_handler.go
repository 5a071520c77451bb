package handler

import (
	"net/http"

	"go-medical-appointment/internal/delivery/http/view"
)

type HomeHandler struct {
	view *view.Renderer
}

func NewHomeHandler(view *view.Renderer) *HomeHandler {
	return &HomeHandler{view: view}
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, view.PageIndex, view.IndexLinks())
}
