package lock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomLocker(t *testing.T) {
	l, err := NewRoomLocker(t.TempDir())
	require.NoError(t, err)

	unlock, err := l.TryLock(1)
	require.NoError(t, err)

	t.Run("Same Room Is Busy", func(t *testing.T) {
		_, err := l.TryLock(1)
		assert.True(t, errors.Is(err, ErrBusy))
	})

	t.Run("Other Room Is Free", func(t *testing.T) {
		unlock2, err := l.TryLock(2)
		require.NoError(t, err)
		unlock2()
	})

	unlock()

	t.Run("Released Lock Can Be Retaken", func(t *testing.T) {
		unlock, err := l.TryLock(1)
		require.NoError(t, err)
		unlock()
	})
}
