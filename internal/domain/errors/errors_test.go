package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrItemNotFound.WithDetails("id=42")

	assert.True(t, stderrors.Is(err, ErrItemNotFound))
	assert.False(t, stderrors.Is(err, ErrDeviceNotFound))
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, "ITEM_NOT_FOUND", err.ErrorCode())
	assert.Equal(t, "id=42", err.Details())
	assert.Equal(t, "Elemento non trovato nel portafoglio: id=42", err.Error())
	assert.Empty(t, ErrItemNotFound.Details())
}

func TestBaseError_AsAppError(t *testing.T) {
	wrapped := stderrors.Join(stderrors.New("send message"), ErrAssistantBusy)

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	err := NewDatabaseExecuteError(cause, "insert wallet item")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert wallet item: disk I/O error", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}
