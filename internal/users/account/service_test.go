// Copyright (c) 2026 Campus. All rights reserved.

package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekara/campus/internal/users/account"
)

// memDirectory is an in-memory DirectoryRepository counting Stats calls.
type memDirectory struct {
	stats      *account.Stats
	statsCalls int
}

func (m *memDirectory) List(_ context.Context, limit, offset int) ([]*account.DirectoryEntry, int, error) {
	return nil, 0, nil
}

func (m *memDirectory) Stats(_ context.Context) (*account.Stats, error) {
	m.statsCalls++
	return m.stats, nil
}

func (m *memDirectory) GetDetail(_ context.Context, id string) (*account.Detail, error) {
	return nil, nil
}

// memCache is an in-memory StatsCache.
type memCache struct {
	stored   *account.Stats
	failRead bool
}

func (m *memCache) Get(_ context.Context) (*account.Stats, error) {
	if m.failRead {
		return nil, errors.New("cache down")
	}
	return m.stored, nil
}

func (m *memCache) Set(_ context.Context, stats *account.Stats) error {
	m.stored = stats
	return nil
}

/*
TestGetStats_CacheAside verifies that the second call is served from cache.
*/
func TestGetStats_CacheAside(t *testing.T) {
	repo := &memDirectory{stats: &account.Stats{TotalUsers: 7, AdminUsers: 1, StudentUsers: 6}}
	cache := &memCache{}
	service := account.NewService(repo, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))

	first, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, first.TotalUsers)
	assert.Equal(t, 1, repo.statsCalls)
	require.NotNil(t, cache.stored, "stats written through to cache")

	second, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, second.TotalUsers)
	assert.Equal(t, 1, repo.statsCalls, "second call served from cache")
}

/*
TestGetStats_CacheFailureFallsThrough ensures a broken cache never fails the
request.
*/
func TestGetStats_CacheFailureFallsThrough(t *testing.T) {
	repo := &memDirectory{stats: &account.Stats{TotalUsers: 3}}
	cache := &memCache{failRead: true}
	service := account.NewService(repo, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 1, repo.statsCalls)
}
