// Copyright (c) 2026 Campus. All rights reserved.

// Command admin bootstraps the first administrator account.
//
// Registration through the API requires an existing admin, so the very first
// one has to come from outside the request path. The command is idempotent:
// if the configured username already exists it reports so and exits cleanly.
//
// Usage:
//
//	ADMIN_USERNAME=admin ADMIN_PASSWORD=secret DATABASE_URL=... go run ./cmd/admin
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ozgekara/campus/internal/platform/constants"
	"github.com/ozgekara/campus/internal/platform/dberr"
	pgstore "github.com/ozgekara/campus/internal/platform/postgres"
	"github.com/ozgekara/campus/internal/platform/sec"
	"github.com/ozgekara/campus/internal/users/auth"
	"github.com/ozgekara/campus/pkg/uuid"
)

// adminConfig is deliberately minimal: the bootstrap needs the database and
// credentials, nothing else from the server configuration.
type adminConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Username    string `env:"ADMIN_USERNAME,required"`
	Password    string `env:"ADMIN_PASSWORD,required"`
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName+"-admin"))

	var cfg adminConfig
	must(log, env.Parse(&cfg), "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	accounts := auth.NewPostgresRepository(pool)
	username := auth.NormalizeUsername(cfg.Username)

	if existing, err := accounts.FindByUsername(ctx, username); err == nil {
		log.Info("admin_account_already_exists",
			slog.String("account_id", existing.ID),
			slog.String("username", existing.Username),
		)
		return
	} else if !errors.Is(err, dberr.ErrNotFound) {
		must(log, err, "look up admin account")
	}

	hash, err := sec.HashPassword(cfg.Password)
	must(log, err, "hash admin password")

	account := &auth.Account{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         sec.RoleAdmin,
	}
	must(log, accounts.Create(ctx, account), "create admin account")

	log.Info("admin_account_created",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
	)
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("bootstrap failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
