package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetAppError(t *testing.T) {
	appErr := NewNotFoundError("Order")
	if got := GetAppError(appErr); got.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", got.Code)
	}

	wrapped := fmt.Errorf("loading bill: %w", NewConflictError("Order is closed"))
	got := GetAppError(wrapped)
	if got.Code != http.StatusConflict {
		t.Errorf("wrapped code = %d, want 409", got.Code)
	}
	if got.Message != "Order is closed" {
		t.Errorf("wrapped message = %q", got.Message)
	}

	plain := errors.New("connection reset")
	if got := GetAppError(plain); got.Code != http.StatusInternalServerError {
		t.Errorf("plain error code = %d, want 500", got.Code)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(ErrPermissionDenied) {
		t.Error("sentinel not recognized")
	}
	if IsAppError(errors.New("nope")) {
		t.Error("plain error recognized as AppError")
	}
}
