package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public is the sanitized view returned to clients. The password hash
// never leaves the service.
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public strips everything a client isn't allowed to see.
func (u User) Public() PublicUser {
	return PublicUser{Username: u.Username, Email: u.Email}
}
