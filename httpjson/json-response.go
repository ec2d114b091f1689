package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zabka-mb/backend/srvcerr"
)

type JsonResponse struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
	Error     any    `json:"error,omitempty"`
}

func WriteCreatedJson(w http.ResponseWriter, message string) {
	writeJson(w, http.StatusCreated, JsonResponse{
		IsSuccess: true,
		Message:   message,
	})
}

func WriteErrorJson(w http.ResponseWriter, errMsg string, statusCode int, details any) {
	writeJson(w, statusCode, JsonResponse{
		IsSuccess: false,
		Message:   errMsg,
		Error:     details,
	})
}

func writeJson(w http.ResponseWriter, statusCode int, resp JsonResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

func writeInternalErrorJson(w http.ResponseWriter) {
	WriteErrorJson(w,
		"Internal Server Error",
		http.StatusInternalServerError,
		nil)
}

func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerr.Error{}
	if errors.As(err, &srvcErr) {
		if srvcErr.DebugInfo() != nil {
			logger.Warn("service error", "error", err, "debug", srvcErr.DebugInfo())
		} else {
			logger.Warn("service error", "error", err)
		}
		if srvcErr.HttpStatusCode() == http.StatusInternalServerError {
			logger.Error("internal server error", "error", err)
		}
		WriteErrorJson(w, srvcErr.Error(), srvcErr.HttpStatusCode(), srvcErr.Details())
		return
	}
	logger.Error("internal server error", "error", err)
	writeInternalErrorJson(w)
}
