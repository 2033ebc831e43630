package devapi

import (
	"context"
	"sync"
)

// MemoryRepository is the default user store: process-local, sequential ids,
// no persistence across restarts.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int
	users  []*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.PhoneNumber == user.PhoneNumber {
			return nil, ErrPhoneRegistered
		}
	}

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.users = append(r.users, &stored)

	out := stored
	return &out, nil
}

func (r *MemoryRepository) ByPhone(_ context.Context, phone string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.PhoneNumber == phone {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryRepository) ByID(_ context.Context, id int) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}
