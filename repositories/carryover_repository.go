package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/adiafa-dev/e-commerce-mvp/config"
	"github.com/adiafa-dev/e-commerce-mvp/models"
)

// CarryOverStore is the durable storage shared by the cart and checkout views.
// It holds the carried-over selection snapshots and the serialized user
// profile under fixed per-user keys. Writes are wholesale; the last writer
// wins.
type CarryOverStore interface {
	SaveSelection(ctx context.Context, userID int, lines []models.CartLine) error
	LoadSelection(ctx context.Context, userID int) ([]models.CartLine, error)
	ClearSelection(ctx context.Context, userID int) error
	SaveProfile(ctx context.Context, userID int, profile models.Profile) error
	LoadProfile(ctx context.Context, userID int) (*models.Profile, error)
}

// NewCarryOverStore prefers redis and degrades to process memory when redis
// is not configured or unreachable.
func NewCarryOverStore() CarryOverStore {
	if config.RedisClient != nil {
		return &RedisCarryOverStore{client: config.RedisClient}
	}
	return NewMemoryCarryOverStore()
}

type RedisCarryOverStore struct {
	client *redis.Client
}

func selectionKey(userID int) string { return fmt.Sprintf("selected_cart_items:%d", userID) }
func profileKey(userID int) string   { return fmt.Sprintf("user_profile:%d", userID) }

func (s *RedisCarryOverStore) SaveSelection(ctx context.Context, userID int, lines []models.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, selectionKey(userID), payload, 0).Err()
}

func (s *RedisCarryOverStore) LoadSelection(ctx context.Context, userID int) ([]models.CartLine, error) {
	payload, err := s.client.Get(ctx, selectionKey(userID)).Bytes()
	if err == redis.Nil {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []models.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		return []models.CartLine{}, nil
	}
	return lines, nil
}

func (s *RedisCarryOverStore) ClearSelection(ctx context.Context, userID int) error {
	return s.client.Del(ctx, selectionKey(userID)).Err()
}

func (s *RedisCarryOverStore) SaveProfile(ctx context.Context, userID int, profile models.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, profileKey(userID), payload, 0).Err()
}

func (s *RedisCarryOverStore) LoadProfile(ctx context.Context, userID int) (*models.Profile, error) {
	payload, err := s.client.Get(ctx, profileKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, nil
	}
	return &profile, nil
}

// MemoryCarryOverStore is the in-process fallback. Also what the tests use.
type MemoryCarryOverStore struct {
	mu         sync.RWMutex
	selections map[int][]models.CartLine
	profiles   map[int]models.Profile
}

func NewMemoryCarryOverStore() *MemoryCarryOverStore {
	return &MemoryCarryOverStore{
		selections: make(map[int][]models.CartLine),
		profiles:   make(map[int]models.Profile),
	}
}

func (s *MemoryCarryOverStore) SaveSelection(_ context.Context, userID int, lines []models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.CartLine, len(lines))
	copy(snapshot, lines)
	s.selections[userID] = snapshot
	return nil
}

func (s *MemoryCarryOverStore) LoadSelection(_ context.Context, userID int) ([]models.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines, ok := s.selections[userID]
	if !ok {
		return []models.CartLine{}, nil
	}
	snapshot := make([]models.CartLine, len(lines))
	copy(snapshot, lines)
	return snapshot, nil
}

func (s *MemoryCarryOverStore) ClearSelection(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selections, userID)
	return nil
}

func (s *MemoryCarryOverStore) SaveProfile(_ context.Context, userID int, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = profile
	return nil
}

func (s *MemoryCarryOverStore) LoadProfile(_ context.Context, userID int) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}
