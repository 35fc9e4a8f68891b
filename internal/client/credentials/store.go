// Package credentials keeps the session token and user profile of the
// signed-in technician.
//
// Memory is the source of truth for the lifetime of the process; every
// change is mirrored to durable storage under KeyToken and KeyUser so the
// session survives a restart. Durable failures are logged and never returned:
// a session that could not be saved still works until the process exits.
package credentials

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
)

const (
	KeyToken = "auth_token"
	KeyUser  = "user_data"
)

// Durable is the slice of storage.Repository the store needs.
type Durable interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, values map[string][]byte) error
	DeleteMany(ctx context.Context, keys ...string) error
}

type Store struct {
	// writeMu orders durable writes the same way as the memory updates.
	writeMu sync.Mutex

	mu          sync.Mutex
	token       string
	hasToken    bool
	tokenLoaded bool
	user        models.User
	userLoaded  bool

	durable Durable
	log     logging.Logger
}

func New(durable Durable, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Store{durable: durable, log: log.With("component", "credentials")}
}

// Set replaces the session. Token and User see the new values as soon as
// Set starts its durable write.
func (s *Store) Set(ctx context.Context, token string, user models.User) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.token, s.hasToken, s.tokenLoaded = token, true, true
	s.user, s.userLoaded = user, true
	s.mu.Unlock()

	userJSON, err := json.Marshal(user)
	if err != nil {
		s.log.Error(ctx, "encode user profile", "error", err)
		userJSON = []byte("null")
	}

	err = s.durable.SetMany(ctx, map[string][]byte{
		KeyToken: []byte(token),
		KeyUser:  userJSON,
	})
	if err != nil {
		s.log.Warn(ctx, "persisting session failed, keeping it in memory only", "error", err)
	}
}

// Clear forgets the session in memory and deletes both durable entries.
func (s *Store) Clear(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.token, s.hasToken, s.tokenLoaded = "", false, true
	s.user, s.userLoaded = nil, true
	s.mu.Unlock()

	if err := s.durable.DeleteMany(ctx, KeyToken, KeyUser); err != nil {
		s.log.Warn(ctx, "deleting persisted session failed", "error", err)
	}
}

// Token returns the session token. On first use it is loaded from durable
// storage; a missing entry is remembered, a read error is not.
func (s *Store) Token(ctx context.Context) (string, bool) {
	s.mu.Lock()
	if s.tokenLoaded {
		defer s.mu.Unlock()
		return s.token, s.hasToken
	}
	s.mu.Unlock()

	raw, err := s.durable.Get(ctx, KeyToken)
	if err != nil {
		s.log.Warn(ctx, "loading session token failed", "error", err)
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Set or Clear may have run while we were reading
	if !s.tokenLoaded {
		s.token, s.hasToken, s.tokenLoaded = string(raw), raw != nil, true
	}
	return s.token, s.hasToken
}

// User returns the profile saved with the session, loaded lazily like Token.
func (s *Store) User(ctx context.Context) (models.User, bool) {
	s.mu.Lock()
	if s.userLoaded {
		defer s.mu.Unlock()
		return s.user, s.user != nil
	}
	s.mu.Unlock()

	raw, err := s.durable.Get(ctx, KeyUser)
	if err != nil {
		s.log.Warn(ctx, "loading user profile failed", "error", err)
		return nil, false
	}

	var user models.User
	if raw != nil {
		if err := json.Unmarshal(raw, &user); err != nil {
			s.log.Error(ctx, "stored user profile is corrupt, ignoring it", "error", err)
			user = nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.userLoaded {
		s.user, s.userLoaded = user, true
	}
	return s.user, s.user != nil
}
