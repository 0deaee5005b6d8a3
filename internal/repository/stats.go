package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sigo_companion/internal/service"
)

const activeIncidentsKey = "stats:active_incidents"

// incrFloorScript прибавляет delta и не даёт счётчику уйти ниже нуля
var incrFloorScript = redis.NewScript(`
local v = redis.call('INCRBY', KEYS[1], ARGV[1])
if v < 0 then
	redis.call('SET', KEYS[1], 0)
	return 0
end
return v
`)

type StatsStore struct {
	redisClient *redis.Client
}

func NewStatsStore(redisClient *redis.Client) service.StatsStore {
	return &StatsStore{redisClient: redisClient}
}

// ActiveCount возвращает число незавершённых ocorrências
func (s *StatsStore) ActiveCount(ctx context.Context) (int, error) {
	n, err := s.redisClient.Get(ctx, activeIncidentsKey).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get active incidents counter: %w", err)
	}
	return n, nil
}

// AddActive изменяет счётчик на delta
func (s *StatsStore) AddActive(ctx context.Context, delta int) (int, error) {
	n, err := incrFloorScript.Run(ctx, s.redisClient, []string{activeIncidentsKey}, delta).Int()
	if err != nil {
		return 0, fmt.Errorf("failed to change active incidents counter: %w", err)
	}
	return n, nil
}

// ResetActive выставляет счётчик по результату полной загрузки
func (s *StatsStore) ResetActive(ctx context.Context, n int) error {
	if n < 0 {
		n = 0
	}
	if err := s.redisClient.Set(ctx, activeIncidentsKey, n, 0).Err(); err != nil {
		return fmt.Errorf("failed to reset active incidents counter: %w", err)
	}
	return nil
}

// MemoryStatsStore - счётчик в памяти процесса для sigo-cli
type MemoryStatsStore struct {
	mu sync.Mutex
	n  int
}

func NewMemoryStatsStore() service.StatsStore {
	return &MemoryStatsStore{}
}

func (s *MemoryStatsStore) ActiveCount(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n, nil
}

func (s *MemoryStatsStore) AddActive(_ context.Context, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = max(s.n+delta, 0)
	return s.n, nil
}

func (s *MemoryStatsStore) ResetActive(_ context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = max(n, 0)
	return nil
}
