package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	OK      bool   `json:"ok"`
	Message string `json:"error"`
	Code    string `json:"error_code"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		OK:      false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond writes err as an error envelope. Business errors keep their
// message; anything else is logged and reported as a generic internal error.
func Respond(c *gin.Context, log logrus.FieldLogger, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, StatusFor(be.Code), be.Code, be.Error())
		return
	}

	log.WithFields(logrus.Fields{
		"path":   c.FullPath(),
		"method": c.Request.Method,
	}).WithError(err).Error("request failed")

	Internal(c, "internal_error", "Internal server error")
}
