package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad", nil).StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("route", nil).StatusCode())
	assert.Equal(t, http.StatusTooManyRequests, NewTooManyRequests(nil).StatusCode())
	assert.Equal(t, http.StatusServiceUnavailable, NewUnavailable("down", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(nil).StatusCode())
}

func TestAppErrorWrapping(t *testing.T) {
	cause := stderrors.New("length 3")
	err := fmt.Errorf("generate: %w", BadRequest("invalid length", cause))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, ErrBadRequest, appErr.Code)
	assert.Equal(t, "invalid length: length 3", appErr.Error())
	assert.ErrorIs(t, err, cause)

	_, ok = As(cause)
	assert.False(t, ok)
}
