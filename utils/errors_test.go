package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("bad").Status())
	assert.Equal(t, http.StatusBadRequest, NotFoundError("missing").Status())
	assert.Equal(t, http.StatusInternalServerError, InternalError(errors.New("boom")).Status())
}

func TestAsAppError(t *testing.T) {
	notFound := NotFoundError("Menu item not found")
	wrapped := fmt.Errorf("place order: %w", notFound)

	got := AsAppError(wrapped)
	assert.Same(t, notFound, got)
	assert.True(t, IsKind(wrapped, KindNotFound))

	plain := errors.New("connection refused")
	got = AsAppError(plain)
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "connection refused", got.Message)
	assert.ErrorIs(t, got, plain)
}

func TestInternalErrorNil(t *testing.T) {
	err := InternalError(nil)
	assert.Equal(t, "internal error", err.Error())
	assert.Equal(t, "InternalError", err.Kind.String())
}
