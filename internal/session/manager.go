// Package session coordinates login, registration, sign-out and startup
// restoration. The Manager is the only owner of the process-wide session
// pointer; every other layer reads it through Current().
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsakiyama/motopatio/internal/logging"
	"github.com/dsakiyama/motopatio/internal/models"
	"github.com/dsakiyama/motopatio/internal/registry"
	"github.com/dsakiyama/motopatio/internal/storage"
)

// ErrInvalidCredentials is returned on any failed login. It deliberately
// does not say whether the CPF or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid cpf or password")

// State of the session machine.
type State int

const (
	// StateRestoring is the transient startup state, left exactly once by
	// Restore.
	StateRestoring State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Outcome of a Restore call.
type Outcome int

const (
	// OutcomeRestored means the persisted token resolved to a user.
	OutcomeRestored Outcome = iota
	// OutcomeNoSession means no token was persisted (or storage failed and
	// the manager fell back to signed-out).
	OutcomeNoSession
	// OutcomeStaleTokenCleared means a token was persisted but matched no
	// user; it has been removed from storage.
	OutcomeStaleTokenCleared
)

// Manager drives the session state machine. It starts in StateRestoring;
// the caller must run Restore before issuing Login or Register, since all
// three touch the same persisted keys. Operations are single-threaded by
// design — the UI issues one action at a time.
type Manager struct {
	store    storage.Store
	registry *registry.Registry
	log      logging.Logger
	state    State
	current  *models.User
}

func NewManager(store storage.Store, reg *registry.Registry, log logging.Logger) *Manager {
	return &Manager{
		store:    store,
		registry: reg,
		log:      log.With("component", "session"),
		state:    StateRestoring,
	}
}

// Restore reads the active-session key and tries to resolve it to a user.
// A storage failure is failed-safe: the manager lands in
// StateUnauthenticated with OutcomeNoSession and the error is returned
// only so the caller can surface a non-fatal notice.
func (m *Manager) Restore(ctx context.Context) (Outcome, error) {
	token, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		m.state = StateUnauthenticated
		m.log.Warn(ctx, "session key unreadable, starting signed out", "error", err)
		return OutcomeNoSession, fmt.Errorf("read session key: %w", err)
	}
	if token == "" {
		m.state = StateUnauthenticated
		return OutcomeNoSession, nil
	}

	u := m.registry.FindByToken(token)
	if u == nil {
		// self-heal: drop the orphaned token so the next start is clean
		if rerr := m.store.Remove(ctx, storage.KeySession); rerr != nil {
			m.log.Warn(ctx, "could not clear stale session token", "error", rerr)
		}
		m.state = StateUnauthenticated
		m.log.Info(ctx, "stale session token cleared")
		return OutcomeStaleTokenCleared, nil
	}

	m.current = u
	m.state = StateAuthenticated
	m.log.Info(ctx, "session restored", "cpf", u.CPF)
	return OutcomeRestored, nil
}

// Login verifies the credentials and, on success, becomes Authenticated
// and persists the user's token under the active-session key. A user whose
// record lost its token (older snapshots) gets a fresh one minted first.
// Persisting the key is failed-safe: a storage error keeps the login valid
// for this run and is only logged.
func (m *Manager) Login(ctx context.Context, rawCPF, password string) (*models.User, error) {
	u := m.registry.FindByCredentials(rawCPF, password)
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	token, err := m.registry.EnsureToken(ctx, u.ID)
	if err != nil {
		m.log.Warn(ctx, "could not mint session token", "error", err)
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	u.Token = token

	if err := m.store.Set(ctx, storage.KeySession, token); err != nil {
		m.log.Warn(ctx, "session not persisted, valid for this run only", "error", err)
	}

	m.current = u
	m.state = StateAuthenticated
	m.log.Info(ctx, "login ok", "cpf", u.CPF)
	return u, nil
}

// Register delegates to the registry and, on success, authenticates the
// new user and persists their token as the active session.
func (m *Manager) Register(ctx context.Context, candidate models.User) (*models.User, error) {
	u, err := m.registry.Register(ctx, candidate)
	if err != nil {
		return nil, err
	}

	if err := m.store.Set(ctx, storage.KeySession, u.Token); err != nil {
		m.log.Warn(ctx, "session not persisted, valid for this run only", "error", err)
	}

	m.current = u
	m.state = StateAuthenticated
	return u, nil
}

// SignOut clears the active-session key and the in-memory pointer. The
// user record itself is untouched. Calling it while already signed out is
// a no-op. The in-memory state is cleared even when the storage remove
// fails; the error is returned for logging only.
func (m *Manager) SignOut(ctx context.Context) error {
	if m.state != StateAuthenticated {
		return nil
	}

	err := m.store.Remove(ctx, storage.KeySession)
	m.current = nil
	m.state = StateUnauthenticated
	if err != nil {
		return fmt.Errorf("clear session key: %w", err)
	}
	m.log.Info(ctx, "signed out")
	return nil
}

// Current returns the authenticated user, or nil when signed out.
func (m *Manager) Current() *models.User {
	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// State returns the current machine state.
func (m *Manager) State() State {
	return m.state
}
