// File: services/chat/contextStore.go
package chat

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"hotelbot/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:session:"

// SessionStore tracks per-session state: last access time and message count.
// Implementations decide the eviction policy (TTL, max entries); the chat
// service only needs get/put/remove keyed by session id.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.SessionInfo, error)
	Put(ctx context.Context, info *models.SessionInfo) error
	Remove(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps session state in Redis with a sliding TTL, so
// idle sessions expire on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a session store over the given client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.SessionInfo, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var info models.SessionInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, info *models.SessionInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+info.SessionID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Remove(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// MemorySessionStore is a process-local SessionStore bounded by a maximum
// entry count; the oldest entry is dropped when the bound is hit. Useful for
// tests and for running without Redis.
type MemorySessionStore struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]*models.SessionInfo
}

// NewMemorySessionStore creates a bounded in-memory session store.
func NewMemorySessionStore(maxEntries int) *MemorySessionStore {
	return &MemorySessionStore{
		maxEntries: maxEntries,
		entries:    make(map[string]*models.SessionInfo),
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.entries[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *info
	return &copied, nil
}

func (s *MemorySessionStore) Put(ctx context.Context, info *models.SessionInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[info.SessionID]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}
	copied := *info
	s.entries[info.SessionID] = &copied
	return nil
}

func (s *MemorySessionStore) Remove(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

func (s *MemorySessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, info := range s.entries {
		if oldestID == "" || info.LastAccess.Before(oldest) {
			oldestID = id
			oldest = info.LastAccess
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}
