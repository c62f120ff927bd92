package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Flash categories used by the pages.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type FlashStore interface {
	// Push 將訊息加入 session 的佇列
	Push(ctx context.Context, sessionID string, flash Flash) error
	// Pop 取出並清空 session 的所有訊息，依加入順序
	Pop(ctx context.Context, sessionID string) ([]Flash, error)
}

type RedisFlashStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFlashStore(client *redis.Client, ttl time.Duration) FlashStore {
	return &RedisFlashStoreImpl{
		client: client,
		ttl:    ttl,
	}
}

// 訊息佇列 key
func (s *RedisFlashStoreImpl) getKey(sessionID string) string {
	return fmt.Sprintf("flash:%s", sessionID)
}

func (s *RedisFlashStoreImpl) Push(ctx context.Context, sessionID string, flash Flash) error {
	body, err := json.Marshal(flash)
	if err != nil {
		return err
	}

	key := s.getKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, body)
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// 讀取與刪除需在同一個 Lua 腳本內完成，避免兩個請求讀到同一批訊息
var popScript = redis.NewScript(`
	local items = redis.call("LRANGE", KEYS[1], 0, -1)
	redis.call("DEL", KEYS[1])
	return items
`)

func (s *RedisFlashStoreImpl) Pop(ctx context.Context, sessionID string) ([]Flash, error) {
	items, err := popScript.Run(ctx, s.client, []string{s.getKey(sessionID)}).StringSlice()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	flashes := make([]Flash, 0, len(items))
	for _, item := range items {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			return nil, fmt.Errorf("invalid flash: %v", err)
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

type memoryEntry struct {
	flashes   []Flash
	expiresAt time.Time
}

type MemoryFlashStoreImpl struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*memoryEntry
	now     func() time.Time
}

// NewMemoryFlashStore keeps flashes in process memory. Used for tests and single-instance runs.
func NewMemoryFlashStore(ttl time.Duration) FlashStore {
	return &MemoryFlashStoreImpl{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryFlashStoreImpl) Push(ctx context.Context, sessionID string, flash Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evict(now)

	e, ok := s.entries[sessionID]
	if !ok {
		e = &memoryEntry{}
		s.entries[sessionID] = e
	}
	e.flashes = append(e.flashes, flash)
	e.expiresAt = now.Add(s.ttl)
	return nil
}

func (s *MemoryFlashStoreImpl) Pop(ctx context.Context, sessionID string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evict(s.now())

	e, ok := s.entries[sessionID]
	if !ok {
		return []Flash{}, nil
	}
	delete(s.entries, sessionID)
	return e.flashes, nil
}

func (s *MemoryFlashStoreImpl) evict(now time.Time) {
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
