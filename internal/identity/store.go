package identity

import "context"

// AccountStore is the external keyed record store backing the service.
// Create must reject duplicate emails atomically: the service pre-checks, but
// only the store can close the race between check and insert.
type AccountStore interface {
	Create(ctx context.Context, acc *Account) error
	Find(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
}
