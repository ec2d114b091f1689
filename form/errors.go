package form

import (
	"net/http"

	"github.com/zabka-mb/backend/srvcerr"
)

const ErrCodeValidation = "validation_error"

func newErrValidation(violations []Violation) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeValidation,
		"Validation Error",
	).SetHttpStatusCode(http.StatusBadRequest).
		SetDetails(violations)
}

const ErrCodeDuplicateSubmission = "duplicate_submission"

func newErrDuplicateSubmission() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeDuplicateSubmission,
		"Data Is Already Exist",
	).SetHttpStatusCode(http.StatusConflict)
}

func newErrInternalSE() *srvcerr.Error {
	return srvcerr.ErrInternalSE()
}
