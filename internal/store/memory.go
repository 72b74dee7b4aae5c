// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

// memoryUserRepository keeps the registry in a slice owned by the process.
// net/http serves requests concurrently, so reads take the read lock and
// mutations the write lock.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
	ids   IDGenerator

	logger *logger.Logger
}

// NewMemoryUserRepository constructs a [UserRepository] holding a copy of
// seed. Data lives as long as the process.
func NewMemoryUserRepository(seed []models.User, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Int("seeded", len(seed)).Msg("creating in-memory user repository")

	users := make([]models.User, 0, len(seed))
	for _, u := range seed {
		users = append(users, cloneUser(u))
	}

	return &memoryUserRepository{
		users:  users,
		ids:    ids,
		logger: logger,
	}
}

func (m *memoryUserRepository) List(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, cloneUser(u))
	}

	return out, nil
}

func (m *memoryUserRepository) GetByID(_ context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexOf(id); i >= 0 {
		return cloneUser(m.users[i]), nil
	}

	return models.User{}, ErrUserNotFound
}

func (m *memoryUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := cloneUser(user)
	created.ID = m.ids.NextID(len(m.users))
	m.users = append(m.users, created)

	logger.FromContext(ctx).Debug().
		Str("func", "*memoryUserRepository.Create").
		Int64("user_id", created.ID).
		Int("count", len(m.users)).
		Msg("user appended")

	return cloneUser(created), nil
}

func (m *memoryUserRepository) Update(_ context.Context, id int64, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}

	// only name and email are replaced, the id stays
	m.users[i].Name = cloneString(user.Name)
	m.users[i].Email = cloneString(user.Email)

	return cloneUser(m.users[i]), nil
}

func (m *memoryUserRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.users[:0]
	for _, u := range m.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	removed := len(m.users) - len(kept)

	// drop references held by the tail of the old backing array
	clear(m.users[len(kept):])
	m.users = kept

	logger.FromContext(ctx).Debug().
		Str("func", "*memoryUserRepository.Delete").
		Int64("user_id", id).
		Int("removed", removed).
		Msg("users filtered")

	return nil
}

// indexOf returns the position of the first record with id, or -1.
// The caller holds the lock.
func (m *memoryUserRepository) indexOf(id int64) int {
	for i, u := range m.users {
		if u.ID == id {
			return i
		}
	}

	return -1
}
