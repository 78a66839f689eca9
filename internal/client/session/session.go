// Package session keeps the bearer token between runs of the client.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/expensetracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/expensetracker/internal/common"
)

// Store holds at most one session token.
//
// Get returns common.ErrNoSession when no token is stored. Clear is
// idempotent.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// SQLiteStore persists the token under common.SessionTokenKey in the
// metadata table.
type SQLiteStore struct {
	repo metadata.Repository
}

func NewSQLiteStore(repo metadata.Repository) *SQLiteStore {
	return &SQLiteStore{repo: repo}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	tok, ok, err := s.repo.Get(ctx, common.SessionTokenKey)
	if err != nil {
		return "", err
	}
	if !ok || tok == "" {
		return "", common.ErrNoSession
	}
	return tok, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.SessionTokenKey, token)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.SessionTokenKey)
}

// MemoryStore is a Store that lives as long as the process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", common.ErrNoSession
	}
	return s.token, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
