package devapi

import "context"

// UserRepository persists registered users for the dev API.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	ByPhone(ctx context.Context, phone string) (*User, error)
	ByID(ctx context.Context, id int) (*User, error)
}
