package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"batikin/internal/repository"
)

func TestErrorKind_HTTPStatus(t *testing.T) {
	cases := map[ErrorKind]int{
		KindBadRequest:   http.StatusBadRequest,
		KindUpstream:     http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.HTTPStatus())
	}
}

func TestFromRepo(t *testing.T) {
	err := fromRepo(fmt.Errorf("%w: user x", repository.ErrNotFound), "user not found")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "user not found", AsAppError(err).Message)

	assert.ErrorIs(t, fromRepo(repository.ErrConflict, ""), ErrConflict)
	assert.ErrorIs(t, fromRepo(repository.ErrValidation, ""), ErrBadRequest)
	assert.ErrorIs(t, fromRepo(errors.New("boom"), ""), ErrInternal)
	assert.NoError(t, fromRepo(nil, ""))
}

func TestAsAppError(t *testing.T) {
	appErr := AsAppError(errors.New("boom"))
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, "internal server error", appErr.Message)

	wrapped := fmt.Errorf("ctx: %w", ErrEmailInUse)
	assert.Same(t, ErrEmailInUse, AsAppError(wrapped))
	assert.ErrorIs(t, wrapped, ErrEmailInUse)
	assert.NotErrorIs(t, newError(KindBadRequest, "other"), ErrEmailInUse)
}
