package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		category   ErrorCategory
		httpStatus int
	}{
		{
			name:       "passes through AppError",
			err:        NewValidationError("bad input"),
			category:   CategoryValidation,
			httpStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped AppError",
			err:        fmt.Errorf("handler: %w", NewRateLimitError("60s")),
			category:   CategoryRateLimit,
			httpStatus: http.StatusTooManyRequests,
		},
		{
			name:       "context cancelled",
			err:        context.Canceled,
			category:   CategoryTimeout,
			httpStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "deadline exceeded",
			err:        context.DeadlineExceeded,
			category:   CategoryTimeout,
			httpStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "connection refused",
			err:        errors.New("dial tcp 127.0.0.1:9999: connection refused"),
			category:   CategoryExternalAPI,
			httpStatus: http.StatusBadGateway,
		},
		{
			name:       "timeout string",
			err:        errors.New("request timeout after 30s"),
			category:   CategoryTimeout,
			httpStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "not found string",
			err:        errors.New("session not found"),
			category:   CategoryNotFound,
			httpStatus: http.StatusNotFound,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			category:   CategoryInternal,
			httpStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ToAppError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.category, appErr.Category)
			assert.Equal(t, tt.httpStatus, appErr.HTTPStatus)
		})
	}
}

func TestToAppError_Nil(t *testing.T) {
	assert.Nil(t, ToAppError(nil))
}

func TestAppError_Error(t *testing.T) {
	err := NewValidationError("message is required")
	assert.Equal(t, "[VALIDATION] message is required", err.Error())
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/fail", func(c *gin.Context) {
		c.Error(NewValidationError("bad request body"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad request body")
	assert.Contains(t, w.Body.String(), "validation")
}

func TestRecoveryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RecoveryHandler())
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected state")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal")
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/missing", func(c *gin.Context) {
		Abort(c, NewNotFoundError("session not found"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}
