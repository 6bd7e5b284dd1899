package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	directoryCache "github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/directory"
	"github.com/chefhub-in/ChefHub-BookingService/internal/integrations/chefdirectory"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/directory/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	chefs     []domain.Chef
	listErr   error
	chef      *domain.Chef
	lookupErr error
}

func (f *fakeClient) GetChefs(ctx context.Context) ([]domain.Chef, error) {
	return f.chefs, f.listErr
}

func (f *fakeClient) GetChef(ctx context.Context, id string) (*domain.Chef, error) {
	return f.chef, f.lookupErr
}

type fakeSessionChecker struct {
	alive map[string]bool
}

func (f *fakeSessionChecker) IsAlive(token string) bool {
	return f.alive[token]
}

func testChefs() []domain.Chef {
	return []domain.Chef{
		{ID: "1", Name: "Marco Rossi", Cuisine: []string{"Italian"}, HourlyRate: 6225, Distance: 2.3},
		{ID: "2", Name: "Priya Sharma", Cuisine: []string{"Indian"}, HourlyRate: 4500, Distance: 5.1},
	}
}

func newTestService(client *fakeClient, aliveTokens ...string) (*Service, *directoryCache.Cache) {
	cache := directoryCache.NewCache()
	alive := make(map[string]bool)
	for _, token := range aliveTokens {
		alive[token] = true
	}
	svc := NewService(client, cache, &fakeSessionChecker{alive: alive}, nopLogger{})
	return svc, cache
}

func TestService_LoadAndListChefs(t *testing.T) {
	svc, _ := newTestService(&fakeClient{chefs: testChefs()}, "token-1")
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx, "token-1"))

	result, err := svc.ListChefs(ctx, &models.ListChefsRequest{
		SessionToken: "token-1",
		Filters:      domain.DefaultFilterOptions(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 0, result.ActiveFilterCount)
	assert.Equal(t, []string{"Indian", "Italian"}, result.AvailableCuisines)
}

func TestService_ListChefs_AppliesFilters(t *testing.T) {
	svc, _ := newTestService(&fakeClient{chefs: testChefs()}, "token-1")
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx, "token-1"))

	filters := domain.DefaultFilterOptions()
	filters.CuisineTypes = []string{"Indian"}

	result, err := svc.ListChefs(ctx, &models.ListChefsRequest{
		SessionToken: "token-1",
		Filters:      filters,
	})
	require.NoError(t, err)

	require.Len(t, result.Chefs, 1)
	assert.Equal(t, "Priya Sharma", result.Chefs[0].Name)
	assert.Equal(t, 1, result.ActiveFilterCount)
	// Словарь кухонь считается по полному каталогу, не по отфильтрованному
	assert.Equal(t, []string{"Indian", "Italian"}, result.AvailableCuisines)
}

func TestService_ListChefs_NotLoadedYet(t *testing.T) {
	svc, _ := newTestService(&fakeClient{}, "token-1")

	_, err := svc.ListChefs(context.Background(), &models.ListChefsRequest{
		SessionToken: "token-1",
		Filters:      domain.DefaultFilterOptions(),
	})

	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestService_ListChefs_InvalidFilter(t *testing.T) {
	svc, _ := newTestService(&fakeClient{chefs: testChefs()}, "token-1")

	filters := domain.DefaultFilterOptions()
	filters.MaxDistance = -1

	_, err := svc.ListChefs(context.Background(), &models.ListChefsRequest{
		SessionToken: "token-1",
		Filters:      filters,
	})

	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestService_Load_FailureMarksDirectoryUnavailable(t *testing.T) {
	svc, _ := newTestService(&fakeClient{listErr: errors.New("boom")}, "token-1")
	ctx := context.Background()

	assert.ErrorIs(t, svc.Load(ctx, "token-1"), ErrUnavailable)

	// Провал зафиксирован: каталог недоступен, а не "ещё грузится"
	_, err := svc.ListChefs(ctx, &models.ListChefsRequest{
		SessionToken: "token-1",
		Filters:      domain.DefaultFilterOptions(),
	})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_Load_DropsResultForDeadSession(t *testing.T) {
	// Сессия умерла, пока шёл запрос: результат не должен попасть в кэш
	svc, cache := newTestService(&fakeClient{chefs: testChefs()})

	require.NoError(t, svc.Load(context.Background(), "dead-token"))

	_, err := cache.Get("dead-token")
	assert.ErrorIs(t, err, directoryCache.ErrNotLoaded)
}

func TestService_GetChef_FromCache(t *testing.T) {
	svc, _ := newTestService(&fakeClient{chefs: testChefs()}, "token-1")
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx, "token-1"))

	chef, err := svc.GetChef(ctx, "token-1", "2")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", chef.Name)
}

func TestService_GetChef_FallsBackToDirectoryLookup(t *testing.T) {
	client := &fakeClient{
		chefs: testChefs(),
		chef:  &domain.Chef{ID: "99", Name: "Amit Patel"},
	}
	svc, _ := newTestService(client, "token-1")
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx, "token-1"))

	// Повара нет в снапшоте сессии — идём во внешний каталог
	chef, err := svc.GetChef(ctx, "token-1", "99")
	require.NoError(t, err)
	assert.Equal(t, "Amit Patel", chef.Name)
}

func TestService_GetChef_NotFound(t *testing.T) {
	client := &fakeClient{lookupErr: chefdirectory.ErrChefNotFound}
	svc, _ := newTestService(client, "token-1")

	_, err := svc.GetChef(context.Background(), "token-1", "missing")
	assert.ErrorIs(t, err, ErrChefNotFound)
}

func TestService_Invalidate(t *testing.T) {
	svc, cache := newTestService(&fakeClient{chefs: testChefs()}, "token-1")
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx, "token-1"))
	svc.Invalidate("token-1")

	_, err := cache.Get("token-1")
	assert.ErrorIs(t, err, directoryCache.ErrNotLoaded)
}
