package httperr

import (
	"errors"
	"net/http"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func New(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ======================================================
// Codes
// ======================================================

const (
	CodeInvalidRequest     = "invalid_request"
	CodeInvalidRole        = "invalid_role"
	CodeMissingFields      = "missing_fields"
	CodeInvalidStatus      = "invalid_status"
	CodeInvalidStars       = "invalid_stars"
	CodeInvalidExperience  = "invalid_experience"
	CodeInvalidEmailDomain = "invalid_email_domain"

	CodeInvalidCredentials = "invalid_credentials"

	CodeNotOwner   = "not_owner"
	CodeNotWorker  = "not_worker"
	CodeNotAdmin   = "not_admin"
	CodeNotAllowed = "not_allowed"

	CodeBusinessNotFound = "business_not_found"
	CodeWorkerNotFound   = "worker_not_found"

	CodeEmailTaken       = "email_taken"
	CodeAlreadyRequested = "already_requested"
)

var statusByCode = map[string]int{
	CodeInvalidRequest:     http.StatusBadRequest,
	CodeInvalidRole:        http.StatusBadRequest,
	CodeMissingFields:      http.StatusBadRequest,
	CodeInvalidStatus:      http.StatusBadRequest,
	CodeInvalidStars:       http.StatusBadRequest,
	CodeInvalidExperience:  http.StatusBadRequest,
	CodeInvalidEmailDomain: http.StatusBadRequest,

	CodeInvalidCredentials: http.StatusUnauthorized,

	CodeNotOwner:   http.StatusForbidden,
	CodeNotWorker:  http.StatusForbidden,
	CodeNotAdmin:   http.StatusForbidden,
	CodeNotAllowed: http.StatusForbidden,

	CodeBusinessNotFound: http.StatusNotFound,
	CodeWorkerNotFound:   http.StatusNotFound,

	CodeEmailTaken:       http.StatusConflict,
	CodeAlreadyRequested: http.StatusConflict,
}

// StatusFor returns the HTTP status of a business error code, 500 when the
// code is unknown.
func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
