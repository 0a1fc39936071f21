// Copyright (c) 2026 Campus. All rights reserved.

/*
Package account provides the administrative directory over login accounts.

It exposes read-only views: the paginated account listing with resolved
student names, aggregate statistics (redis-cached), and single-account
detail lookups. Account mutation happens through registration and student
deletion, never here.
*/
package account

import (
	"context"
	"time"

	"github.com/ozgekara/campus/internal/core/student"
	"github.com/ozgekara/campus/internal/platform/sec"
	"github.com/ozgekara/campus/internal/users/auth"
)

// NoStudentRecord is the display fallback for accounts without a linked
// student (administrators, or records broken by hand).
const NoStudentRecord = "No student record"

// DirectoryEntry is one row of the account listing: the account plus the
// resolved student display data.
type DirectoryEntry struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Role             sec.Role   `json:"role"`
	StudentName      string     `json:"studentName"`
	StudentBirthDate *time.Time `json:"studentBirthDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Stats aggregates the account population for the admin dashboard.
type Stats struct {
	TotalUsers          int `json:"totalUsers"`
	AdminUsers          int `json:"adminUsers"`
	StudentUsers        int `json:"studentUsers"`
	UsersWithStudent    int `json:"usersWithStudent"`
	UsersWithoutStudent int `json:"usersWithoutStudent"`

	// OrphanedUsers counts accounts whose student link points at a missing
	// row. Schema constraints keep this at zero; a non-zero value means the
	// database was modified outside the API.
	OrphanedUsers int `json:"orphanedUsers"`
}

// Detail is a single account with its full student record resolved.
type Detail struct {
	*auth.Account
	Student *student.Student `json:"student,omitempty"`
}

// # Repository Contracts

// DirectoryRepository defines the read-side persistence contract.
type DirectoryRepository interface {
	List(context context.Context, limit, offset int) ([]*DirectoryEntry, int, error)
	Stats(context context.Context) (*Stats, error)
	GetDetail(context context.Context, id string) (*Detail, error)
}

// StatsCache defines the short-lived cache in front of [DirectoryRepository.Stats].
type StatsCache interface {
	// Get returns the cached stats, or nil on a miss.
	Get(context context.Context) (*Stats, error)
	Set(context context.Context, stats *Stats) error
}
