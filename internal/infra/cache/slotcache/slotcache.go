package slotcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// Ключи кэша
const (
	versionKey = "slots:version"
	keyPrefix  = "slots"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache кэш результатов запросов к каталогу слотов поверх Redis
//
// Ключ включает окно, набор категорий и номер версии. Любая мутация
// (создание/удаление слота, бронирование, отмена) инкрементирует версию,
// разом инвалидируя все закэшированные окна. Любая ошибка Redis трактуется
// как cache miss - кэш никогда не блокирует чтение каталога.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кэш слотов поверх переданного Redis-клиента
func New(client *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

// Get возвращает закэшированный результат запроса, если он есть
func (c *Cache) Get(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, bool) {
	key, err := c.buildKey(ctx, filter)
	if err != nil {
		c.log.Warn("slotcache: failed to build key: %v", err)
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("slotcache: get failed: %v", err)
		return nil, false
	}

	var slots []*domain.TimeSlot
	if err := json.Unmarshal(payload, &slots); err != nil {
		c.log.Warn("slotcache: failed to unmarshal cached slots: %v", err)
		return nil, false
	}

	return slots, true
}

// Set сохраняет результат запроса
func (c *Cache) Set(ctx context.Context, filter domain.SlotFilter, slots []*domain.TimeSlot) {
	key, err := c.buildKey(ctx, filter)
	if err != nil {
		c.log.Warn("slotcache: failed to build key: %v", err)
		return
	}

	payload, err := json.Marshal(slots)
	if err != nil {
		c.log.Warn("slotcache: failed to marshal slots: %v", err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("slotcache: set failed: %v", err)
	}
}

// Invalidate инвалидирует все закэшированные окна (bump версии)
// Старые ключи доживают свой TTL и вытесняются естественным образом
func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.log.Warn("slotcache: invalidate failed: %v", err)
	}
}

func (c *Cache) buildKey(ctx context.Context, filter domain.SlotFilter) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Result()
	if err == redis.Nil {
		version = "0"
	} else if err != nil {
		return "", err
	}

	ids := make([]string, len(filter.CategoryIDs))
	for i, id := range filter.CategoryIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	return fmt.Sprintf("%s:v%s:%d:%d:%s",
		keyPrefix, version, filter.Start.UnixMilli(), filter.End.UnixMilli(), strings.Join(ids, ",")), nil
}

// Noop реализация кэша, когда Redis отключен в конфигурации
type Noop struct{}

// Get всегда возвращает cache miss
func (Noop) Get(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, bool) {
	return nil, false
}

// Set ничего не делает
func (Noop) Set(ctx context.Context, filter domain.SlotFilter, slots []*domain.TimeSlot) {}

// Invalidate ничего не делает
func (Noop) Invalidate(ctx context.Context) {}
