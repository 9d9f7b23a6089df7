package identity

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGStoreCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	created := time.Now().UTC()
	mock.ExpectQuery("insert into accounts").
		WithArgs(sqlmock.AnyArg(), "Ann", "a@x.com", "555", "ID1", "Addr", "digest").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	store := NewPGStore(db)
	acc := &Account{
		Name:           "Ann",
		Email:          "a@x.com",
		PhoneNumber:    "555",
		Identification: "ID1",
		Address:        "Addr",
		PasswordDigest: "digest",
	}
	if err := store.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if acc.ID == "" {
		t.Fatal("expected assigned id")
	}
	if !acc.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", acc.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("insert into accounts").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	store := NewPGStore(db)
	acc := &Account{Email: "a@x.com", PasswordDigest: "digest"}
	if err := store.Create(context.Background(), acc); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreFind(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	columns := []string{"id", "name", "email", "phone_number", "identification", "address", "password_digest", "created_at"}
	mock.ExpectQuery("from accounts where id=").
		WithArgs("acct-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("acct-1", "Ann", "a@x.com", "555", "ID1", "Addr", "digest", time.Now().UTC()))

	store := NewPGStore(db)
	acc, err := store.Find(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if acc.ID != "acct-1" || acc.Email != "a@x.com" {
		t.Fatalf("unexpected account: %+v", acc)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreFindByEmailMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("from accounts where email=").
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	store := NewPGStore(db)
	if _, err := store.FindByEmail(context.Background(), "ghost@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
