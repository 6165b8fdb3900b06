package async

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsOrder(t *testing.T) {
	got, err := Map([]int{1, 2, 3, 4, 5}, 2, func(i int) (int, error) {
		return i * i, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9, 16, 25}, got)
}

func TestMapCollectsErrors(t *testing.T) {
	var calls int32
	got, err := Map([]int{1, 2, 3}, 0, func(i int) (string, error) {
		atomic.AddInt32(&calls, 1)
		if i == 2 {
			return "", errors.New("boom")
		}
		return "ok", nil
	})
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, []string{"ok", "", "ok"}, got)
	assert.Equal(t, int32(3), calls)
}

func TestMapEmpty(t *testing.T) {
	got, err := Map(nil, 4, func(i int) (int, error) { return i, nil })
	require.NoError(t, err)
	assert.Empty(t, got)
}
