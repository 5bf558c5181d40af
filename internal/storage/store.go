// Package storage persists the signed-in admin's credentials between runs.
package storage

import (
	"github.com/Jaydeep9963/video-player-admin/internal/models"
)

// Credentials is the durable slice of a session: the bearer tokens and the
// identity payload returned at login.
type Credentials struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         *models.User `json:"user"`
}

// Empty reports whether no credentials are stored
func (c Credentials) Empty() bool {
	return c.Token == "" && c.RefreshToken == "" && c.User == nil
}

// CredentialStore reads and writes persisted credentials. Load on a store
// holding nothing returns zero Credentials and no error; Clear on an empty
// store is a no-op.
type CredentialStore interface {
	Load() (Credentials, error)
	Save(Credentials) error
	Clear() error
}
