package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidErr("bad", nil), http.StatusBadRequest},
		{UnauthorizedErr("login"), http.StatusUnauthorized},
		{NotFoundErr("gone"), http.StatusNotFound},
		{RejectedErr(1001, "name taken"), http.StatusUnprocessableEntity},
		{UpstreamErr("down", errors.New("dial tcp")), http.StatusBadGateway},
		{Wrap(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("ctx: %w", ConflictErr("dup")), http.StatusConflict},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "name taken", PublicMessage(RejectedErr(1001, "name taken")))
	assert.Equal(t, fallbackMsg, PublicMessage(errors.New("secret detail")))
}

func TestWrapKeepsAppError(t *testing.T) {
	inner := UnauthorizedErr("login")
	assert.Same(t, inner, Wrap(fmt.Errorf("call: %w", inner)))
	assert.Nil(t, Wrap(nil))
	assert.True(t, Is(fmt.Errorf("x: %w", inner), Unauthorized))
	assert.False(t, Is(inner, Invalid))
}
