package domain

import "time"

// TokenPair is an access/refresh token pair minted for one user. The two
// tokens share a subject but are signed with independent secrets and are
// never linked in storage.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration // access token lifetime
}
