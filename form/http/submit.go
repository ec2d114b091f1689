package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/zabka-mb/backend/form"
	"github.com/zabka-mb/backend/httpjson"
	"github.com/zabka-mb/backend/logger"
)

// Submit returns the POST handler for one form type. The request body is
// the flat field object of that form; the response is the
// {isSuccess, message, error} envelope.
func (h *FormHttpHandler) Submit(formType form.FormType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := httplog.LogEntry(r.Context())

		var fields form.Fields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			log.Warn("malformed request body", "error", err)
			httpjson.WriteErrorJson(w, "Invalid Request Body",
				http.StatusBadRequest, nil)
			return
		}

		ctx := logger.WithLogger(r.Context(), log)
		_, err := h.formSrvc.Submit(ctx, form.SubmitParams{
			FormType: formType,
			Fields:   fields,
		})
		if err != nil {
			httpjson.HandleError(log, w, err)
			return
		}

		def, _ := form.Definition(formType)
		httpjson.WriteCreatedJson(w, def.SuccessMessage)
	}
}
