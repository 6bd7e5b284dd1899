package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	directoryCache "github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/directory"
	"github.com/chefhub-in/ChefHub-BookingService/internal/integrations/chefdirectory"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/directory/models"
)

const defaultLoadTimeout = 30 * time.Second

// Service сервис каталога поваров
// Каталог живёт в рамках сессии: загружается один раз после входа,
// при ошибке остаётся пустым до ручного повтора
type Service struct {
	client      DirectoryClient
	cache       Cache
	sessions    SessionChecker
	loadTimeout time.Duration
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	client DirectoryClient,
	cache Cache,
	sessions SessionChecker,
	logger Logger,
) *Service {
	return &Service{
		client:      client,
		cache:       cache,
		sessions:    sessions,
		loadTimeout: defaultLoadTimeout,
		logger:      logger,
	}
}

// Load загружает каталог для сессии и сохраняет результат в кэш
// Провал загрузки тоже фиксируется: каталог помечается недоступным
func (s *Service) Load(ctx context.Context, sessionToken string) error {
	s.logger.Info("Load: loading chef directory for session")

	chefs, err := s.client.GetChefs(ctx)

	// Сессия могла закрыться, пока шёл запрос наружу
	if !s.sessions.IsAlive(sessionToken) {
		s.logger.Warn("Load: session expired during directory load, dropping result")
		return nil
	}

	if err != nil {
		s.logger.Error("Load: directory fetch failed: %v", err)
		s.cache.SetError(sessionToken, err)
		return fmt.Errorf("%w: Load - fetch failed: %v", ErrUnavailable, err)
	}

	s.cache.Set(sessionToken, chefs)
	s.logger.Info("Load: directory loaded, %d chefs", len(chefs))
	return nil
}

// LoadAsync запускает загрузку каталога в фоне
// Используется после входа, чтобы не задерживать ответ на верификацию
func (s *Service) LoadAsync(sessionToken string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.loadTimeout)
		defer cancel()

		// Ошибка уже зафиксирована в кэше и залогирована
		_ = s.Load(ctx, sessionToken)
	}()
}

// Refresh принудительно перезагружает каталог сессии
func (s *Service) Refresh(ctx context.Context, sessionToken string) error {
	s.logger.Info("Refresh: reloading chef directory")
	return s.Load(ctx, sessionToken)
}

// Invalidate сбрасывает каталог сессии
func (s *Service) Invalidate(sessionToken string) {
	s.cache.Invalidate(sessionToken)
}

// ListChefs возвращает каталог, отфильтрованный по поиску и настройкам
// Фильтры соединяются конъюнкцией; порядок каталога сохраняется
func (s *Service) ListChefs(ctx context.Context, req *models.ListChefsRequest) (*models.ChefListResponse, error) {
	if !req.Filters.IsValid() {
		s.logger.Warn("ListChefs: invalid filter options: %+v", req.Filters)
		return nil, ErrInvalidFilter
	}

	snapshot, err := s.snapshot(req.SessionToken)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterChefs(snapshot.Chefs, req.Search, req.Filters)
	s.logger.Info("ListChefs: %d of %d chefs match", len(filtered), len(snapshot.Chefs))

	return models.FromDomainChefList(filtered, req.Filters.ActiveCount(), snapshot.Cuisines), nil
}

// GetChef возвращает повара по ID
// Сначала смотрит в кэш сессии, при промахе идёт во внешний каталог
func (s *Service) GetChef(ctx context.Context, sessionToken, chefID string) (*models.ChefResponse, error) {
	snapshot, err := s.snapshot(sessionToken)
	if err == nil {
		for i := range snapshot.Chefs {
			if snapshot.Chefs[i].ID == chefID {
				return models.FromDomainChef(&snapshot.Chefs[i]), nil
			}
		}
	}

	s.logger.Info("GetChef: chef id=%s not in session cache, fetching from directory", chefID)

	chef, err := s.client.GetChef(ctx, chefID)
	if err != nil {
		if errors.Is(err, chefdirectory.ErrChefNotFound) {
			s.logger.Warn("GetChef: chef id=%s not found", chefID)
			return nil, ErrChefNotFound
		}
		s.logger.Error("GetChef: directory fetch failed for chef id=%s: %v", chefID, err)
		return nil, fmt.Errorf("%w: GetChef - fetch failed: %v", ErrUnavailable, err)
	}

	return models.FromDomainChef(chef), nil
}

func (s *Service) snapshot(sessionToken string) (*directoryCache.Snapshot, error) {
	snapshot, err := s.cache.Get(sessionToken)
	if err != nil {
		if errors.Is(err, directoryCache.ErrNotLoaded) {
			return nil, ErrNotLoaded
		}
		return nil, fmt.Errorf("%w: snapshot - cache error: %v", ErrInternal, err)
	}
	if snapshot.LoadErr != nil {
		return nil, fmt.Errorf("%w: last load failed: %v", ErrUnavailable, snapshot.LoadErr)
	}
	return snapshot, nil
}
