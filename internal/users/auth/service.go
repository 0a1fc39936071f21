// Copyright (c) 2026 Campus. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ozgekara/campus/internal/core/student"
	"github.com/ozgekara/campus/internal/platform/apperr"
	"github.com/ozgekara/campus/internal/platform/dberr"
	"github.com/ozgekara/campus/internal/platform/sec"
	"github.com/ozgekara/campus/internal/platform/validate"
	"github.com/ozgekara/campus/pkg/uuid"
)

// TokenProvider defines the contract for generating security tokens.
//
// Declared here so the service can be tested without a real signing key.
type TokenProvider interface {
	GenerateAccessToken(userID, role string, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
//
// Any change to hashing, registration, or login logic must keep the failure
// responses for unknown users and wrong passwords identical.
type Service struct {
	accounts AccountRepository
	tokens   TokenProvider
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(accounts AccountRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterInput holds the data required to enroll a new student with a login.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	BirthDate time.Time
}

// Register creates a student record and its login account in one transaction.
//
// The username is normalized (trimmed, lowercased) before the uniqueness
// check and before storage, so "Alice" and " alice " are the same identity.
// The created account always carries the student role; administrators are
// provisioned via cmd/admin, never through this path.
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {
	username := NormalizeUsername(input.Username)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		MinLen(FieldUsername, username, MinUsernameLen).
		MaxLen(FieldUsername, username, MaxUsernameLen).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLen).
		Required(FieldFirstName, input.FirstName).
		Required(FieldLastName, input.LastName).
		PastDate(FieldBirthDate, input.BirthDate)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Pre-check for a friendly message; the unique index still backs this up
	// under concurrency.
	if _, err := service.accounts.FindByUsername(context, username); err == nil {
		return nil, apperr.Conflict("username already exists")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	newStudent := &student.Student{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
	}

	account := &Account{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         sec.RoleStudent,
		StudentID:    &newStudent.ID,
	}

	if err := service.accounts.CreateWithStudent(context, newStudent, account); err != nil {
		// Lost the race against a concurrent registration of the same username.
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.Conflict("username already exists")
		}
		return nil, err
	}

	service.logger.Info("account_registered",
		slog.String("account_id", account.ID),
		slog.String("student_id", newStudent.ID),
	)
	return account, nil
}

// LoginResult carries the issued token and the role the client should assume.
type LoginResult struct {
	Token string   `json:"token"`
	Role  sec.Role `json:"role"`
}

// Login validates credentials and issues an access token.
//
// Unknown usernames and wrong passwords produce byte-identical responses to
// prevent account enumeration.
func (service *Service) Login(context context.Context, username, password string) (*LoginResult, error) {
	account, err := service.accounts.FindByUsername(context, NormalizeUsername(username))
	if err != nil {
		return nil, apperr.Unauthorized("invalid username or password")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperr.Unauthorized("invalid username or password")
	}

	token, err := service.tokens.GenerateAccessToken(account.ID, string(account.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("account_logged_in",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
	)
	return &LoginResult{Token: token, Role: account.Role}, nil
}

// NormalizeUsername canonicalizes a username for storage and lookup.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
