package application

import (
	"context"
	"sync"
	"time"

	"github.com/givehub/givehub/internal/domain/entity"
	"github.com/givehub/givehub/internal/domain/repository"
)

// memStore is an in-memory repository.Store. WithTx holds the store mutex
// for the whole transaction and restores a snapshot on error, so the
// atomicity and duplicate-serialization behavior of the real store is
// observable in tests.
type memStore struct {
	mu        sync.Mutex
	data      *memData
	failPrefs error // injected failure for preference writes
}

type memData struct {
	users map[string]*entity.User        // by id
	creds map[string]*entity.Credential  // by normalized email
	prefs map[string]*entity.Preferences // by user id
}

func newMemStore() *memStore {
	return &memStore{data: &memData{
		users: map[string]*entity.User{},
		creds: map[string]*entity.Credential{},
		prefs: map[string]*entity.Preferences{},
	}}
}

func (d *memData) clone() *memData {
	c := &memData{
		users: make(map[string]*entity.User, len(d.users)),
		creds: make(map[string]*entity.Credential, len(d.creds)),
		prefs: make(map[string]*entity.Preferences, len(d.prefs)),
	}
	for k, v := range d.users {
		u := *v
		c.users[k] = &u
	}
	for k, v := range d.creds {
		cr := *v
		c.creds[k] = &cr
	}
	for k, v := range d.prefs {
		p := *v
		c.prefs[k] = &p
	}
	return c
}

func (s *memStore) Users() repository.UserRepository             { return lockedUsers{s} }
func (s *memStore) Credentials() repository.CredentialRepository { return lockedCreds{s} }
func (s *memStore) Preferences() repository.PreferencesRepository {
	return lockedPrefs{s}
}

func (s *memStore) WithTx(_ context.Context, fn func(repository.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.data.clone()
	if err := fn(&txStore{s: s}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// txStore operates on the live data without locking; the caller holds the
// store mutex for the duration of the transaction.
type txStore struct {
	s *memStore
}

func (t *txStore) Users() repository.UserRepository              { return memUsers{t.s} }
func (t *txStore) Credentials() repository.CredentialRepository  { return memCreds{t.s} }
func (t *txStore) Preferences() repository.PreferencesRepository { return memPrefs{t.s} }
func (t *txStore) WithTx(_ context.Context, fn func(repository.Store) error) error {
	return fn(t)
}

// Unlocked repos, used inside transactions.

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.s.data.users[u.ID] = &cp
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.s.data.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) UpdateLastLogin(_ context.Context, id string) error {
	u, ok := r.s.data.users[id]
	if !ok || u.DeletedAt != nil {
		return repository.ErrNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	u.UpdatedAt = now
	return nil
}

type memCreds struct{ s *memStore }

func (r memCreds) Create(_ context.Context, c *entity.Credential) error {
	if _, exists := r.s.data.creds[c.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	r.s.data.creds[c.Email] = &cp
	return nil
}

func (r memCreds) GetByEmail(_ context.Context, email string) (*entity.Credential, error) {
	c, ok := r.s.data.creds[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

type memPrefs struct{ s *memStore }

func (r memPrefs) Create(_ context.Context, p *entity.Preferences) error {
	if r.s.failPrefs != nil {
		return r.s.failPrefs
	}
	cp := *p
	r.s.data.prefs[p.UserID] = &cp
	return nil
}

func (r memPrefs) GetByUserID(_ context.Context, userID string) (*entity.Preferences, error) {
	p, ok := r.s.data.prefs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Locked repos, used outside transactions.

type lockedUsers struct{ s *memStore }

func (r lockedUsers) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memUsers{r.s}.Create(ctx, u)
}

func (r lockedUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memUsers{r.s}.GetByID(ctx, id)
}

func (r lockedUsers) UpdateLastLogin(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memUsers{r.s}.UpdateLastLogin(ctx, id)
}

type lockedCreds struct{ s *memStore }

func (r lockedCreds) Create(ctx context.Context, c *entity.Credential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memCreds{r.s}.Create(ctx, c)
}

func (r lockedCreds) GetByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memCreds{r.s}.GetByEmail(ctx, email)
}

type lockedPrefs struct{ s *memStore }

func (r lockedPrefs) Create(ctx context.Context, p *entity.Preferences) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memPrefs{r.s}.Create(ctx, p)
}

func (r lockedPrefs) GetByUserID(ctx context.Context, userID string) (*entity.Preferences, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memPrefs{r.s}.GetByUserID(ctx, userID)
}

var _ repository.Store = (*memStore)(nil)
