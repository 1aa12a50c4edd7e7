package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(CodeMissingFields))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(CodeInvalidCredentials))
	assert.Equal(t, http.StatusForbidden, StatusFor(CodeNotAllowed))
	assert.Equal(t, http.StatusNotFound, StatusFor(CodeWorkerNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(CodeEmailTaken))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("something_else"))
}

func TestRespondBusinessError(t *testing.T) {
	log, hook := test.NewNullLogger()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/register", nil)

	Respond(c, log, fmt.Errorf("wrapped: %w", New(CodeEmailTaken, "Email already exists")))

	assert.Equal(t, http.StatusConflict, w.Code)
	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, HTTPError{OK: false, Message: "Email already exists", Code: CodeEmailTaken}, body)
	assert.Empty(t, hook.AllEntries())
}

func TestRespondHidesInternalErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/workers", nil)

	Respond(c, log, errors.New("pq: connection refused at 10.0.0.1"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
