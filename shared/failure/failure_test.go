package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"talent/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
		},
		{
			name:    "SlotUnavailableError",
			failure: failure.SlotUnavailableError,
			code:    http.StatusConflict,
			message: "this slot is no longer available, choose another",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("nope"), code: http.StatusUnauthorized},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "NotFound", err: failure.NotFound("slot not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("already cancelled"), code: http.StatusConflict},
		{name: "Forbidden", err: failure.Forbidden("not the owner"), code: http.StatusForbidden},
		{name: "TooManyRequests", err: failure.TooManyRequests(42), code: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestTooManyRequests_Message(t *testing.T) {
	err := failure.TooManyRequests(17)

	expected := fmt.Sprintf("request limit exceeded, retry after %d seconds", 17)
	if err.Error() != expected {
		t.Errorf("expected message %q, got %q", expected, err.Error())
	}
}

func TestGetCode_NonFailure(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for plain error, got %d", http.StatusInternalServerError, got)
	}
}

func TestNilConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}
