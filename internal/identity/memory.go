package identity

import (
	"context"
	"errors"
	"sync"
	"time"

	"idgate.org/internal/ids"
)

var _ AccountStore = (*MemoryStore)(nil)

// MemoryStore implements AccountStore with in-process concurrency safety.
// Email uniqueness is enforced under the store mutex: first writer wins.
type MemoryStore struct {
	mu      sync.RWMutex
	accts   map[string]*Account
	byEmail map[string]string // email -> account id, byte-exact keys
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accts:   make(map[string]*Account),
		byEmail: make(map[string]string),
	}
}

func (s *MemoryStore) Create(ctx context.Context, acc *Account) error {
	if acc == nil || acc.Email == "" {
		return errors.New("identity: account email is required")
	}
	if acc.PasswordDigest == "" {
		return errors.New("identity: account password digest is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[acc.Email]; ok {
		return ErrAlreadyExists
	}
	if acc.ID == "" {
		acc.ID = ids.New()
	}
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now().UTC()
	}
	stored := *acc
	s.accts[stored.ID] = &stored
	s.byEmail[stored.Email] = stored.ID
	return nil
}

func (s *MemoryStore) Find(ctx context.Context, id string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accts[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *acc
	return &out, nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	out := *s.accts[id]
	return &out, nil
}
