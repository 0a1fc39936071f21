// Copyright (c) 2026 Campus. All rights reserved.

package auth

import (
	"context"

	"github.com/ozgekara/campus/internal/core/student"
)

// AccountRepository defines the persistence contract for login accounts.
type AccountRepository interface {
	// FindByUsername retrieves an account by its normalized username.
	FindByUsername(context context.Context, username string) (*Account, error)

	// FindByID retrieves an account by its unique id.
	FindByID(context context.Context, id string) (*Account, error)

	// Create persists a standalone account (admin bootstrap).
	Create(context context.Context, account *Account) error

	// CreateWithStudent persists a student record and its linked account in
	// one transaction. Either both rows exist afterwards or neither does.
	CreateWithStudent(context context.Context, s *student.Student, account *Account) error
}
