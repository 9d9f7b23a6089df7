package identity

import "time"

// Account is the persisted identity record. The password digest never leaves
// this package.
type Account struct {
	ID             string
	Name           string
	Email          string
	PhoneNumber    string
	Identification string
	Address        string
	PasswordDigest string
	CreatedAt      time.Time
}

// Summary is the public projection of an account.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session couples an account summary with a freshly minted bearer token.
type Session struct {
	ID        string
	Name      string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// RegisterParams carries the six required registration fields.
type RegisterParams struct {
	Name           string
	Email          string
	Password       string
	PhoneNumber    string
	Identification string
	Address        string
}
