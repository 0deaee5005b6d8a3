package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/models"
)

// DraftStore - доступ к черновикам с блокировкой на каждый черновик.
// Любое изменение - загрузка, правка и одна запись под блокировкой.
type DraftStore struct {
	repo DraftRepository

	mu    sync.Mutex
	locks map[uuid.UUID]*draftLock
}

type draftLock struct {
	mu   sync.Mutex
	refs int
}

func NewDraftStore(repo DraftRepository) *DraftStore {
	return &DraftStore{
		repo:  repo,
		locks: make(map[uuid.UUID]*draftLock),
	}
}

func (s *DraftStore) lock(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &draftLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Get читает черновик без блокировки
func (s *DraftStore) Get(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	return s.repo.GetByID(ctx, id)
}

// Mutate применяет fn и сохраняет результат. Если fn вернула ошибку, черновик не меняется.
func (s *DraftStore) Mutate(ctx context.Context, id uuid.UUID, fn func(d *models.Draft) error) (*models.Draft, error) {
	unlock := s.lock(id)
	defer unlock()

	draft, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}
