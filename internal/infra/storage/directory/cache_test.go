package directory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

func TestCache_SetAndGet(t *testing.T) {
	cache := NewCache()

	chefs := []domain.Chef{
		{ID: "1", Cuisine: []string{"Italian"}},
		{ID: "2", Cuisine: []string{"Indian", "Italian"}},
	}
	cache.Set("token-1", chefs)

	snapshot, err := cache.Get("token-1")
	require.NoError(t, err)

	assert.Len(t, snapshot.Chefs, 2)
	assert.NoError(t, snapshot.LoadErr)
	assert.False(t, snapshot.LoadedAt.IsZero())
	// Словарь кухонь пересчитывается при каждой загрузке
	assert.Equal(t, []string{"Indian", "Italian"}, snapshot.Cuisines)
}

func TestCache_Get_UnknownTokenIsNotLoaded(t *testing.T) {
	cache := NewCache()

	_, err := cache.Get("unknown")
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestCache_SetError(t *testing.T) {
	cache := NewCache()
	loadErr := errors.New("directory down")

	cache.SetError("token-1", loadErr)

	snapshot, err := cache.Get("token-1")
	require.NoError(t, err)
	assert.ErrorIs(t, snapshot.LoadErr, loadErr)
	assert.Empty(t, snapshot.Chefs)
}

func TestCache_SnapshotsArePerSession(t *testing.T) {
	cache := NewCache()

	cache.Set("token-1", []domain.Chef{{ID: "1"}})
	cache.Set("token-2", []domain.Chef{{ID: "2"}, {ID: "3"}})

	first, err := cache.Get("token-1")
	require.NoError(t, err)
	second, err := cache.Get("token-2")
	require.NoError(t, err)

	assert.Len(t, first.Chefs, 1)
	assert.Len(t, second.Chefs, 2)

	// Сброс одной сессии не трогает другую
	cache.Invalidate("token-1")
	_, err = cache.Get("token-1")
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = cache.Get("token-2")
	assert.NoError(t, err)
}
