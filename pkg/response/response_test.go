package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIs(t *testing.T) {
	t.Parallel()

	notFound := NewError(http.StatusNotFound, "not found")
	wrapped := fmt.Errorf("%w: REG-1", notFound)

	if !errors.Is(wrapped, notFound) {
		t.Error("wrapped error should match its sentinel")
	}
	if errors.Is(NewError(http.StatusConflict, "not found"), notFound) {
		t.Error("same message with another status should not match")
	}
	if errors.Is(errors.New("not found"), notFound) {
		t.Error("plain error should not match")
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{NewError(http.StatusConflict, "closed"), http.StatusConflict},
		{fmt.Errorf("wrap: %w", NewError(http.StatusBadGateway, "down")), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
