package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jp903/scout/core"
)

// FakeStorage is a test-only in-memory core.StorageAdapter. Error fields
// inject failures; writes counts successful mutations.
type FakeStorage struct {
	mu       sync.RWMutex
	users    map[string]*core.User
	sessions map[string]*core.Session
	analyses []*core.ROEAnalysis
	writes   int

	createUserErr     error
	getUserErr        error
	getSessionErr     error
	createSessionErr  error
	deleteSessionErr  error
	createAnalysisErr error
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		users:    make(map[string]*core.User),
		sessions: make(map[string]*core.Session),
	}
}

var _ core.StorageAdapter = (*FakeStorage)(nil)

func (f *FakeStorage) Writes() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes
}

func cloneUser(u *core.User) *core.User {
	c := *u
	return &c
}

func (f *FakeStorage) CreateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createUserErr != nil {
		return f.createUserErr
	}
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return core.ErrUserExists
		}
		if u.GoogleID != nil && existing.GoogleID != nil && *existing.GoogleID == *u.GoogleID {
			return core.ErrGoogleIDTaken
		}
	}

	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	f.users[u.ID] = cloneUser(u)
	f.writes++
	return nil
}

func (f *FakeStorage) find(match func(*core.User) bool) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	for _, u := range f.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStorage) GetUserByID(_ context.Context, id string) (*core.User, error) {
	return f.find(func(u *core.User) bool { return u.ID == id })
}

func (f *FakeStorage) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	return f.find(func(u *core.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *FakeStorage) GetUserByGoogleID(_ context.Context, googleID string) (*core.User, error) {
	return f.find(func(u *core.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (f *FakeStorage) UpdateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[u.ID]; !ok {
		return core.ErrUserNotFound
	}
	for id, existing := range f.users {
		if id != u.ID && u.GoogleID != nil && existing.GoogleID != nil && *existing.GoogleID == *u.GoogleID {
			return core.ErrGoogleIDTaken
		}
	}

	u.UpdatedAt = time.Now()
	f.users[u.ID] = cloneUser(u)
	f.writes++
	return nil
}

func (f *FakeStorage) TouchLastLogin(_ context.Context, userID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return core.ErrUserNotFound
	}
	u.LastLoginAt = &at
	f.writes++
	return nil
}

func (f *FakeStorage) CreateSession(_ context.Context, s *core.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createSessionErr != nil {
		return f.createSessionErr
	}
	c := *s
	f.sessions[s.TokenHash] = &c
	f.writes++
	return nil
}

func (f *FakeStorage) GetSessionByHash(_ context.Context, tokenHash string) (*core.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getSessionErr != nil {
		return nil, f.getSessionErr
	}
	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	c := *s
	return &c, nil
}

func (f *FakeStorage) DeleteSessionByHash(_ context.Context, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteSessionErr != nil {
		return f.deleteSessionErr
	}
	if _, ok := f.sessions[tokenHash]; ok {
		delete(f.sessions, tokenHash)
		f.writes++
	}
	return nil
}

func (f *FakeStorage) SessionCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sessions)
}

func (f *FakeStorage) CreateAnalysis(_ context.Context, a *core.ROEAnalysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createAnalysisErr != nil {
		return f.createAnalysisErr
	}
	c := *a
	f.analyses = append(f.analyses, &c)
	f.writes++
	return nil
}

func (f *FakeStorage) ListAnalysesByUser(_ context.Context, userID string) ([]*core.ROEAnalysis, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []*core.ROEAnalysis
	for _, a := range f.analyses {
		if a.UserID == userID {
			c := *a
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeIdentity returns a fixed identity, or err when set.
type fakeIdentity struct {
	id  *core.GoogleIdentity
	err error
}

func (f *fakeIdentity) Identify(_ context.Context, credential string) (*core.GoogleIdentity, error) {
	if credential == "" {
		return nil, core.ErrCredentialRequired
	}
	if f.err != nil {
		return nil, f.err
	}
	c := *f.id
	return &c, nil
}

type fakeNarrator struct {
	text string
	err  error
}

func (f fakeNarrator) Narrate(context.Context, *core.ROEAnalysis) (string, error) {
	return f.text, f.err
}
