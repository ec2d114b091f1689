package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/zabka-mb/backend/form"
)

type FormHttpHandler struct {
	formSrvc *form.FormSrvc
}

func NewFormHttpHandler(formSrvc *form.FormSrvc) *FormHttpHandler {
	return &FormHttpHandler{
		formSrvc: formSrvc,
	}
}

func (h *FormHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/contact", h.Submit(form.FormTypeContact))
	r.Post("/api/career", h.Submit(form.FormTypeCareer))
	r.Post("/api/partner", h.Submit(form.FormTypePartner))
}
