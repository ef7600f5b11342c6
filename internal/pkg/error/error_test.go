package error

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantErrorCodes(t *testing.T) {
	cases := []struct {
		name     string
		err      *Error
		httpCode int
		code     int
	}{
		{"identifier missing", TenantIdentifierMissing("x"), http.StatusBadRequest, TENANT_IDENTIFIER_MISSING},
		{"not found", TenantNotFound("x"), http.StatusNotFound, TENANT_NOT_FOUND},
		{"inactive", TenantInactive("x"), http.StatusForbidden, TENANT_INACTIVE},
		{"connection", TenantConnectionError("x"), http.StatusInternalServerError, TENANT_CONNECTION_ERROR},
		{"conflict", Conflict("x"), http.StatusBadRequest, CONFLICT},
		{"rate limit", RateLimitExceeded("x"), http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED},
		{"invalid session", InvalidSession("x"), http.StatusUnauthorized, INVALID_SESSION},
		{"mail", MailError("x"), http.StatusBadGateway, MAIL_SEND_ERROR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.httpCode, tc.err.HttpCode())
			assert.Equal(t, tc.code, tc.err.ErrorCode())
			assert.Equal(t, "x", tc.err.ErrorDesc())
		})
	}
}

func TestFrom(t *testing.T) {
	original := NotFound("missing")
	assert.Same(t, original, From(original))

	wrapped := From(errors.New("plain failure"))
	assert.Equal(t, http.StatusInternalServerError, wrapped.HttpCode())
	assert.Equal(t, "plain failure", wrapped.ErrorDesc())
}

func TestMapHttpStatusToError(t *testing.T) {
	cases := []struct {
		status   int
		httpCode int
		code     int
	}{
		{http.StatusBadRequest, http.StatusBadRequest, BAD_REQUEST_BODY},
		{http.StatusUnauthorized, http.StatusUnauthorized, UNAUTHORIZED},
		{http.StatusForbidden, http.StatusForbidden, FORBIDDEN},
		{http.StatusNotFound, http.StatusNotFound, NOT_FOUND},
		{http.StatusUnprocessableEntity, http.StatusUnprocessableEntity, VALIDATION_FAILED},
		{http.StatusInternalServerError, http.StatusInternalServerError, INTERNAL_ERROR},
		{http.StatusTeapot, http.StatusInternalServerError, INTERNAL_ERROR},
	}
	for _, tc := range cases {
		err := MapHttpStatusToError(tc.status, "desc")
		assert.Equal(t, tc.httpCode, err.HttpCode(), tc.status)
		assert.Equal(t, tc.code, err.ErrorCode(), tc.status)
	}
}
