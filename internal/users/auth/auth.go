// Copyright (c) 2026 Campus. All rights reserved.

/*
Package auth implements identity and access management for the platform.

It covers account registration (always paired with a student record), login
with bcrypt password verification, and stateless JWT-based sessions.

Architecture:

  - Service: Orchestrates business logic (Register, Login).
  - Repository: Abstracted persistence contract for Postgres accounts.
  - Security: Bcrypt hashing and HS256-signed JWTs via the sec package.
*/
package auth

import (
	"time"

	"github.com/ozgekara/campus/internal/platform/sec"
)

// Account represents a login identity.
//
// The password hash never leaves the server; the JSON tag guarantees it can
// not be serialized by accident.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         sec.Role  `json:"role"`
	StudentID    *string   `json:"studentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// # Token Lifetimes

const (
	// AccessTokenTTL is the validity window of an issued access token.
	AccessTokenTTL = 1 * time.Hour
)

// # Validation Bounds

const (
	MinUsernameLen = 3
	MaxUsernameLen = 50
	MinPasswordLen = 6
)

// Global field names for validation
const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldBirthDate = "birthDate"
)
