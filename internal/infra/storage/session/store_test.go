package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.Create("9876543210")
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "9876543210", sess.Phone)

	got, err := store.Get(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, got.Token)

	assert.True(t, store.IsAlive(sess.Token))
	assert.False(t, store.IsAlive("unknown"))
}

func TestStore_Get_ExpiredSessionIsRemoved(t *testing.T) {
	store := NewStore(-time.Minute)

	sess := store.Create("9876543210")

	_, err := store.Get(sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.False(t, store.IsAlive(sess.Token))
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.Create("9876543210")
	store.Delete(sess.Token)

	_, err := store.Get(sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := NewStore(time.Hour)

	first := store.Create("9876543210")
	second := store.Create("9123456789")

	require.NotEqual(t, first.Token, second.Token)

	store.Delete(first.Token)
	assert.True(t, store.IsAlive(second.Token))
}
