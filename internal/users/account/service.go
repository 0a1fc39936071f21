// Copyright (c) 2026 Campus. All rights reserved.

package account

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   DirectoryRepository
	cache  StatsCache
	logger *slog.Logger
}

func NewService(repo DirectoryRepository, cache StatsCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ListAccounts(context context.Context, limit, offset int) ([]*DirectoryEntry, int, error) {
	return service.repo.List(context, limit, offset)
}

// GetStats returns account statistics, served from cache when fresh.
//
// Cache failures never fail the request: the database is the source of truth
// and the cache is purely an accelerator.
func (service *Service) GetStats(context context.Context) (*Stats, error) {
	cached, err := service.cache.Get(context)
	if err != nil {
		service.logger.Warn("stats_cache_read_failed", slog.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := service.repo.Stats(context)
	if err != nil {
		return nil, err
	}

	if err := service.cache.Set(context, stats); err != nil {
		service.logger.Warn("stats_cache_write_failed", slog.String("error", err.Error()))
	}

	return stats, nil
}

func (service *Service) GetAccount(context context.Context, id string) (*Detail, error) {
	return service.repo.GetDetail(context, id)
}
