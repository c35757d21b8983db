package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"validation":   {ValidationError("bad"), http.StatusBadRequest},
		"unauthorized": {UnauthorizedError("who"), http.StatusUnauthorized},
		"forbidden":    {ForbiddenError("no"), http.StatusForbidden},
		"not found":    {NotFoundError("gone"), http.StatusNotFound},
		"conflict":     {ConflictError("dup"), http.StatusConflict},
		"external":     {ExternalError("upstream", errors.New("timeout")), http.StatusBadGateway},
		"persistence":  {PersistenceError("db", errors.New("closed")), http.StatusInternalServerError},
		"plain":        {errors.New("boom"), http.StatusInternalServerError},
		"wrapped":      {fmt.Errorf("ctx: %w", NotFoundError("gone")), http.StatusNotFound},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

func TestAppErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := PersistenceError("Failed to save", cause)

	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Failed to save")
}

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	RespondError(c, err)
	return w
}

func TestRespondErrorHidesInternalCause(t *testing.T) {
	w := respond(PersistenceError("Failed to fetch lawyers", errors.New("mongo: no reachable servers")))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch lawyers", body.Message)
	assert.NotContains(t, w.Body.String(), "mongo")

	w = respond(errors.New("raw failure"))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Message)
}

func TestRespondErrorClientError(t *testing.T) {
	w := respond(ValidationError("message is required"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"message is required"}`, w.Body.String())
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "kaboom")
}
