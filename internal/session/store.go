package session

import (
	"os"
	"path/filepath"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-client/pkg/jwt"
	"github.com/mentorhub/mentorhub-client/pkg/logger"
	"github.com/mentorhub/mentorhub-client/pkg/metrics"
)

// Storage keys. Unstructured key-value, no schema versioning; a load
// failure degrades to an empty store.
const (
	keyToken             = "token"
	keyUserRole          = "userRole"
	keyVerificationEmail = "verificationEmail"
	keyPendingRedirect   = "pendingRedirect"
	keyRegistrationID    = "registrationUserId"
	keyRegistrationEmail = "registrationEmail"
	keyRegistrationRole  = "registrationRole"
)

const storageFileName = "session.dat"

// Store is the session-context object injected into every API client and
// view. It holds the bearer credential plus the handful of transient keys
// the flows pass between views. Role and user-id claims are derived by
// unverified token decoding and are UX hints only, never an authorization
// boundary.
type Store struct {
	mu    sync.RWMutex
	cache *gocache.Cache
	path  string
}

// NewStore creates a session store. When stateDir is non-empty the store
// persists to a file under it and reloads previous state on startup.
func NewStore(stateDir string) (*Store, error) {
	s := &Store{
		cache: gocache.New(gocache.NoExpiration, 0),
	}

	if stateDir != "" {
		if err := os.MkdirAll(stateDir, 0700); err != nil {
			return nil, err
		}
		s.path = filepath.Join(stateDir, storageFileName)

		if err := s.cache.LoadFile(s.path); err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("Discarding unreadable session state", zap.Error(err))
			}
			s.cache = gocache.New(gocache.NoExpiration, 0)
		}
	}

	return s, nil
}

// SetCredential stores the raw bearer token and the role derived from its
// middle segment. A token whose claims cannot be decoded is still stored,
// with an empty role.
func (s *Store) SetCredential(token string) {
	role := jwt.RoleFromToken(token)

	s.mu.Lock()
	s.cache.Set(keyToken, token, gocache.NoExpiration)
	s.cache.Set(keyUserRole, role, gocache.NoExpiration)
	s.persistLocked()
	s.mu.Unlock()

	metrics.SessionEvents.WithLabelValues("credential_set").Inc()
}

// Token returns the stored bearer token.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getString(keyToken)
}

// IsAuthenticated reports whether a credential is present. Pure local
// read, no network.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// Role returns the locally derived role claim, or "" when absent.
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, _ := s.getString(keyUserRole)
	return role
}

// UserID returns the user id claim decoded from the stored token.
func (s *Store) UserID() (int64, bool) {
	token, ok := s.Token()
	if !ok {
		return 0, false
	}
	return jwt.UserIDFromToken(token)
}

// Clear removes the credential and every transient key. A subsequent
// IsAuthenticated returns false and Role returns "".
func (s *Store) Clear() {
	s.mu.Lock()
	s.cache.Flush()
	s.persistLocked()
	s.mu.Unlock()

	metrics.SessionEvents.WithLabelValues("cleared").Inc()
}

// SetVerificationEmail stores the address awaiting email confirmation.
func (s *Store) SetVerificationEmail(email string) {
	s.setString(keyVerificationEmail, email)
}

// VerificationEmail returns the address awaiting confirmation.
func (s *Store) VerificationEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, _ := s.getString(keyVerificationEmail)
	return email
}

// SetPendingRedirect remembers where to navigate after the next login.
func (s *Store) SetPendingRedirect(route string) {
	s.setString(keyPendingRedirect, route)
}

// TakePendingRedirect pops the stored redirect target, if any.
func (s *Store) TakePendingRedirect() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	route, ok := s.getString(keyPendingRedirect)
	if ok {
		s.cache.Delete(keyPendingRedirect)
		s.persistLocked()
	}
	return route, ok
}

// Registration holds the transient fields bridging registration and
// profile creation.
type Registration struct {
	UserID int64
	Email  string
	Role   string
}

// SetRegistration stores the post-registration transients.
func (s *Store) SetRegistration(reg Registration) {
	s.mu.Lock()
	s.cache.Set(keyRegistrationID, reg.UserID, gocache.NoExpiration)
	s.cache.Set(keyRegistrationEmail, reg.Email, gocache.NoExpiration)
	s.cache.Set(keyRegistrationRole, reg.Role, gocache.NoExpiration)
	s.persistLocked()
	s.mu.Unlock()
}

// TakeRegistration returns the stored registration transients and whether a
// registration is pending. The fields stay in place until ClearRegistration
// so a restart mid-flow does not lose them.
func (s *Store) TakeRegistration() (Registration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idVal, ok := s.cache.Get(keyRegistrationID)
	if !ok {
		return Registration{}, false
	}
	id, ok := idVal.(int64)
	if !ok {
		return Registration{}, false
	}

	email, _ := s.getString(keyRegistrationEmail)
	role, _ := s.getString(keyRegistrationRole)
	return Registration{UserID: id, Email: email, Role: role}, true
}

// ClearRegistration removes the registration transients once the profile
// has been created.
func (s *Store) ClearRegistration() {
	s.mu.Lock()
	s.cache.Delete(keyRegistrationID)
	s.cache.Delete(keyRegistrationEmail)
	s.cache.Delete(keyRegistrationRole)
	s.persistLocked()
	s.mu.Unlock()
}

func (s *Store) setString(key, value string) {
	s.mu.Lock()
	s.cache.Set(key, value, gocache.NoExpiration)
	s.persistLocked()
	s.mu.Unlock()
}

func (s *Store) getString(key string) (string, bool) {
	val, ok := s.cache.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	if !ok || str == "" {
		return "", false
	}
	return str, true
}

// persistLocked writes the store to disk. Failures are logged, never
// surfaced: local persistence is best-effort.
func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}
	if err := s.cache.SaveFile(s.path); err != nil {
		logger.Warn("Failed to persist session state", zap.Error(err))
	}
}
