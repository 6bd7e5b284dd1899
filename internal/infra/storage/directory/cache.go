package directory

import (
	"sync"
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

// Snapshot состояние каталога одной сессии
// Либо список поваров, либо ошибка последней загрузки — не оба сразу
type Snapshot struct {
	Chefs    []domain.Chef
	Cuisines []string // словарь кухонь, пересчитывается при каждой записи списка
	LoadErr  error
	LoadedAt time.Time
}

// Cache per-session кэш каталога поваров
// Каталог живёт ровно столько, сколько сессия: инвалидируется на logout
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Snapshot
}

// NewCache создает кэш каталога
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*Snapshot),
	}
}

// Set записывает загруженный список поваров для сессии
// Пересчитывает словарь доступных кухонь
func (c *Cache) Set(sessionToken string, chefs []domain.Chef) {
	snapshot := &Snapshot{
		Chefs:    chefs,
		Cuisines: domain.CuisineVocabulary(chefs),
		LoadedAt: time.Now(),
	}

	c.mu.Lock()
	c.entries[sessionToken] = snapshot
	c.mu.Unlock()
}

// SetError запоминает ошибку загрузки каталога для сессии
// Каталог при этом остаётся пустым, автоповтора нет
func (c *Cache) SetError(sessionToken string, loadErr error) {
	snapshot := &Snapshot{
		LoadErr:  loadErr,
		LoadedAt: time.Now(),
	}

	c.mu.Lock()
	c.entries[sessionToken] = snapshot
	c.mu.Unlock()
}

// Get возвращает снапшот каталога сессии
func (c *Cache) Get(sessionToken string) (*Snapshot, error) {
	c.mu.RLock()
	snapshot, ok := c.entries[sessionToken]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrNotLoaded
	}
	return snapshot, nil
}

// Invalidate удаляет каталог сессии (logout)
func (c *Cache) Invalidate(sessionToken string) {
	c.mu.Lock()
	delete(c.entries, sessionToken)
	c.mu.Unlock()
}
