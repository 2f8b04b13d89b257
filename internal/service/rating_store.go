package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Grendlee/fit-check/internal/domain"
)

// RatingStore guarda el RatingResult mas reciente por sesion. Cada Save
// reemplaza el rating anterior de esa sesion: a lo sumo un rating activo.
type RatingStore interface {
	Save(sessionID string, rating domain.RatingResult, ttl time.Duration) error
	// Get devuelve (nil, nil) si la sesion no tiene rating vigente.
	Get(sessionID string) (*domain.RatingResult, error)
}

type memoryRatingStore struct {
	mu    sync.Mutex
	items map[string]memoryRatingEntry
}

type memoryRatingEntry struct {
	rating    domain.RatingResult
	expiresAt time.Time
}

func NewMemoryRatingStore() RatingStore {
	return &memoryRatingStore{
		items: make(map[string]memoryRatingEntry),
	}
}

func (s *memoryRatingStore) Save(sessionID string, rating domain.RatingResult, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	s.items[sessionID] = memoryRatingEntry{
		rating:    rating,
		expiresAt: time.Now().UTC().Add(ttl),
	}
	return nil
}

func (s *memoryRatingStore) Get(sessionID string) (*domain.RatingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[sessionID]
	if !ok {
		return nil, nil
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(s.items, sessionID)
		return nil, nil
	}
	rating := entry.rating
	return &rating, nil
}

type redisRatingStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRatingStore(client *redis.Client) RatingStore {
	if client == nil {
		return nil
	}
	return &redisRatingStore{
		client: client,
		prefix: "fitcheck:rating:",
	}
}

func (s *redisRatingStore) Save(sessionID string, rating domain.RatingResult, ttl time.Duration) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	payload, err := json.Marshal(rating)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+sessionID, payload, ttl).Err()
}

func (s *redisRatingStore) Get(sessionID string) (*domain.RatingResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	payload, err := s.client.Get(ctx, s.prefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rating domain.RatingResult
	if err := json.Unmarshal([]byte(payload), &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}
