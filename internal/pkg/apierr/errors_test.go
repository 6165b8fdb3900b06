package apierr

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changed := e.Msg("%s", "changed")

	assert.NotEqual(t, "changed", e.Message)
	assert.Equal(t, "changed", changed.Message)
	assert.NotNil(t, e.WithExtras(Extras{"a": 1}).Extras)
	assert.Nil(t, e.Extras)
}

func TestIsMatchesDerivedErrors(t *testing.T) {
	err := pkgerrors.Wrap(ErrNotFound.Msg("player %d not found", 3), "lookup")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidReq))

	var pe *Error
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, 404, pe.StatusCode)
}
