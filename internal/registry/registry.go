// Package registry owns the authoritative set of registered users. It
// enforces CPF uniqueness, hands out session tokens, and keeps the
// persisted snapshot in sync with memory through the storage gateway.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dsakiyama/motopatio/internal/cpf"
	"github.com/dsakiyama/motopatio/internal/logging"
	"github.com/dsakiyama/motopatio/internal/models"
	"github.com/dsakiyama/motopatio/internal/storage"
)

var (
	// ErrDuplicateCPF means a registration collided with an existing user.
	ErrDuplicateCPF = errors.New("cpf already registered")
	// ErrInvalidCPF means the candidate CPF failed checksum validation.
	ErrInvalidCPF = errors.New("invalid cpf")
)

// Registry keeps the user list in memory and mirrors every mutation to the
// gateway as a full JSON snapshot under storage.KeyUsers. All CPFs held by
// the registry are in canonical masked form; lookups canonicalize their
// argument before comparing.
//
// Operations are meant to be driven from a single goroutine, matching the
// one-action-at-a-time UI this core serves. A caller introducing
// concurrency must serialize Register externally to preserve uniqueness.
type Registry struct {
	store  storage.Store
	log    logging.Logger
	users  []models.User
	nextID int
}

// New builds a Registry pre-populated with seed users. Seed CPFs are
// canonicalized; the id counter starts past the highest seeded id.
func New(store storage.Store, log logging.Logger, seed []models.User) *Registry {
	r := &Registry{store: store, log: log.With("component", "registry"), nextID: 1}
	for _, u := range seed {
		u.CPF = cpf.Format(u.CPF)
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users = append(r.users, u)
	}
	return r
}

// Load reads the persisted snapshot and merges it into the in-memory set.
// On a CPF collision the in-memory entry wins; persisted-only entries are
// appended in their stored order, so insertion order survives reloads.
// This policy is intentional: it lets a seeded demo account coexist with a
// previously persisted registration of the same CPF.
//
// A failed or corrupt read is not fatal — the in-memory set stays as is
// and the error is returned for the caller to log.
func (r *Registry) Load(ctx context.Context) ([]models.User, error) {
	raw, err := r.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return r.Users(), fmt.Errorf("load snapshot: %w", err)
	}
	if raw == "" {
		return r.Users(), nil
	}

	var persisted []models.User
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		return r.Users(), fmt.Errorf("decode snapshot: %w", err)
	}

	for _, p := range persisted {
		p.CPF = cpf.Format(p.CPF)
		if r.findByCPF(p.CPF) != nil {
			continue
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.users = append(r.users, p)
	}
	return r.Users(), nil
}

// Register adds candidate to the registry. The CPF is canonicalized and
// validated, uniqueness is checked against the canonical form, a fresh
// token and id are assigned, and the full snapshot is written through the
// gateway. When the write fails the entry is rolled back so memory and
// disk never disagree about a registration.
func (r *Registry) Register(ctx context.Context, candidate models.User) (*models.User, error) {
	candidate.CPF = cpf.Format(candidate.CPF)
	if !cpf.IsValid(candidate.CPF) {
		return nil, ErrInvalidCPF
	}
	if r.findByCPF(candidate.CPF) != nil {
		return nil, ErrDuplicateCPF
	}

	candidate.ID = r.nextID
	candidate.Token = uuid.NewString()
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now()
	}

	r.users = append(r.users, candidate)
	if err := r.persist(ctx); err != nil {
		r.users = r.users[:len(r.users)-1]
		return nil, err
	}
	r.nextID++

	r.log.Info(ctx, "user registered", "cpf", candidate.CPF, "id", candidate.ID)
	stored := candidate
	return &stored, nil
}

// FindByCredentials scans for a user matching the canonicalized CPF and
// the exact password. Passwords are never normalized. Returns nil when no
// user matches; the caller must not distinguish unknown CPF from wrong
// password.
func (r *Registry) FindByCredentials(rawCPF, password string) *models.User {
	canonical := cpf.Format(rawCPF)
	for i := range r.users {
		if r.users[i].CPF == canonical && r.users[i].Password == password {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

// FindByToken scans for the user holding the given session token.
func (r *Registry) FindByToken(token string) *models.User {
	if token == "" {
		return nil
	}
	for i := range r.users {
		if r.users[i].Token == token {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

// EnsureToken returns the session token of the user with the given id,
// minting and persisting a fresh one when the stored record carries none.
func (r *Registry) EnsureToken(ctx context.Context, userID int) (string, error) {
	for i := range r.users {
		if r.users[i].ID != userID {
			continue
		}
		if r.users[i].Token != "" {
			return r.users[i].Token, nil
		}
		r.users[i].Token = uuid.NewString()
		if err := r.persist(ctx); err != nil {
			r.users[i].Token = ""
			return "", err
		}
		return r.users[i].Token, nil
	}
	return "", fmt.Errorf("user %d not in registry", userID)
}

// Users returns a copy of the current in-memory sequence.
func (r *Registry) Users() []models.User {
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *Registry) findByCPF(canonical string) *models.User {
	for i := range r.users {
		if r.users[i].CPF == canonical {
			return &r.users[i]
		}
	}
	return nil
}

func (r *Registry) persist(ctx context.Context) error {
	data, err := json.Marshal(r.users)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyUsers, string(data)); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
