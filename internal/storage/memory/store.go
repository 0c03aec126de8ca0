// Package memory holds an in-memory UserStore used by tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/novamint/rewards-be/internal/models"
	"github.com/novamint/rewards-be/internal/storage"
)

var _ storage.UserStore = (*Store)(nil)

// Store keeps users in a mutex-guarded map. It honors the same contract as the
// Postgres store, including duplicate-email and unknown-id errors.
type Store struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func NewStore() *Store {
	return &Store{nextID: 1, users: make(map[int64]models.User)}
}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) FindByID(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for id := int64(1); id < s.nextID; id++ {
		if user, ok := s.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *Store) AddPoints(_ context.Context, id int64, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.Points += delta
	s.users[id] = user
	return nil
}

func (s *Store) MarkTokensPurchased(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.HasPurchasedTokens = true
	s.users[id] = user
	return nil
}
