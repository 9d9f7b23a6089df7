package identity

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"idgate.org/internal/ids"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

var _ AccountStore = (*PGStore)(nil)

// PGStore implements AccountStore using PostgreSQL. The unique index on email
// provides the atomic duplicate rejection the Create contract requires.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, acc *Account) error {
	if acc.ID == "" {
		acc.ID = ids.New()
	}
	row := s.db.QueryRowContext(ctx,
		`insert into accounts(id, name, email, phone_number, identification, address, password_digest)
		 values($1,$2,$3,$4,$5,$6,$7)
		 returning created_at`,
		acc.ID, acc.Name, acc.Email, acc.PhoneNumber, acc.Identification, acc.Address, acc.PasswordDigest,
	)
	if err := row.Scan(&acc.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (s *PGStore) Find(ctx context.Context, id string) (*Account, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, name, email, phone_number, identification, address, password_digest, created_at
		 from accounts where id=$1`, id)
	return scanAccount(row)
}

func (s *PGStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, name, email, phone_number, identification, address, password_digest, created_at
		 from accounts where email=$1`, email)
	return scanAccount(row)
}

func scanAccount(row *sql.Row) (*Account, error) {
	var acc Account
	err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PhoneNumber,
		&acc.Identification, &acc.Address, &acc.PasswordDigest, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}
