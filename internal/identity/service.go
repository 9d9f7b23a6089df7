package identity

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Service orchestrates registration, login and identity resolution on top of
// an AccountStore, the credential hasher and the token issuer.
type Service struct {
	store  AccountStore
	tokens *Tokens
	cost   int
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service) error

// WithBcryptCost overrides the password hashing work factor.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) error {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return errors.New("identity: bcrypt cost out of range")
		}
		s.cost = cost
		return nil
	}
}

// NewService constructs Service with optional configuration.
func NewService(store AccountStore, tokens *Tokens, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("identity: account store is required")
	}
	if tokens == nil {
		return nil, errors.New("identity: token issuer is required")
	}
	svc := &Service{
		store:  store,
		tokens: tokens,
		cost:   DefaultBcryptCost,
	}
	for _, opt := range opts {
		if err := opt(svc); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

// Register creates a new account and issues its first token.
func (s *Service) Register(ctx context.Context, p RegisterParams) (Session, error) {
	if p.Name == "" || p.Email == "" || p.Password == "" ||
		p.PhoneNumber == "" || p.Identification == "" || p.Address == "" {
		return Session{}, ErrInvalidInput
	}

	if _, err := s.store.FindByEmail(ctx, p.Email); err == nil {
		return Session{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return Session{}, err
	}

	digest, err := HashPassword(p.Password, s.cost)
	if err != nil {
		return Session{}, err
	}

	acc := &Account{
		Name:           p.Name,
		Email:          p.Email,
		PhoneNumber:    p.PhoneNumber,
		Identification: p.Identification,
		Address:        p.Address,
		PasswordDigest: digest,
	}
	if err := s.store.Create(ctx, acc); err != nil {
		// A concurrent registration can slip past the pre-check; the store's
		// atomic uniqueness catches it here.
		if errors.Is(err, ErrAlreadyExists) {
			return Session{}, ErrInvalidData
		}
		return Session{}, err
	}

	return s.session(acc)
}

// Login authenticates an email/password pair and issues a token. Every
// failure collapses into ErrInvalidCredentials so callers cannot distinguish
// an unknown email from a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}
	acc, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := VerifyPassword(acc.PasswordDigest, password); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.session(acc)
}

// Resolve looks up an already-verified subject id. The caller is expected to
// have validated the token; this only confirms the account still exists.
func (s *Service) Resolve(ctx context.Context, accountID string) (Summary, error) {
	acc, err := s.store.Find(ctx, accountID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{ID: acc.ID, Name: acc.Name, Email: acc.Email}, nil
}

// AuthenticateToken verifies a bearer token and confirms the subject account
// still exists. A verified token whose account has vanished is unauthorized.
func (s *Service) AuthenticateToken(ctx context.Context, token string) (Summary, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return Summary{}, err
	}
	sum, err := s.Resolve(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Summary{}, ErrUnauthorized
		}
		return Summary{}, err
	}
	return sum, nil
}

func (s *Service) session(acc *Account) (Session, error) {
	token, expiresAt, err := s.tokens.Issue(acc.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{
		ID:        acc.ID,
		Name:      acc.Name,
		Email:     acc.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
