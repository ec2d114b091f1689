package srvcerr

import "net/http"

// Error is a service-layer error with a stable code, a message that is
// safe to show to the caller, and optional private debug info.
type Error struct {
	errorCode string
	msgToUser string // public
	details   any    // public, structured (e.g. validation violations)
	dbgErr    error  // private, for debugging

	httpStatus int // optional, for HTTP responses
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) Details() any {
	return e.details
}

func (e *Error) DebugInfo() error {
	return e.dbgErr
}

func (e *Error) SetDetails(details any) *Error {
	e.details = details
	return e
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"Internal Server Error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
