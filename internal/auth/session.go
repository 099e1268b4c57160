package auth

import (
	"errors"

	"github.com/quizdeck/admin-core/internal/config"
	"github.com/quizdeck/admin-core/internal/localstore"
)

// ErrNoToken is returned when no session token has been stored.
var ErrNoToken = errors.New("auth: no session token")

// Session owns the bearer token the dashboard authenticates with. It is
// passed explicitly to whoever needs it instead of being read from global
// storage ad hoc. The token lives in the localstore under a fixed key,
// encrypted at rest.
type Session struct {
	store localstore.Store
}

func NewSession(store localstore.Store) *Session {
	return &Session{store: store}
}

// Token returns the stored bearer token, or ErrNoToken.
func (s *Session) Token() (string, error) {
	encrypted, err := s.store.Get(config.TokenStoreKey())
	if err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return "", ErrNoToken
		}
		return "", err
	}
	token, err := config.Decrypt(encrypted)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// SetToken persists the token returned by a successful sign-in.
func (s *Session) SetToken(token string) error {
	encrypted, err := config.Encrypt(token)
	if err != nil {
		return err
	}
	return s.store.Put(config.TokenStoreKey(), encrypted)
}

// Clear signs the session out.
func (s *Session) Clear() error {
	return s.store.Delete(config.TokenStoreKey())
}

// SignedIn reports whether a usable token is stored. A token that carries an
// exp claim in the past counts as signed out.
func (s *Session) SignedIn() bool {
	token, err := s.Token()
	if err != nil {
		return false
	}
	return !Expired(token)
}
