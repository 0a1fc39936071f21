// Copyright (c) 2026 Campus. All rights reserved.

package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozgekara/campus/internal/core/student"
	"github.com/ozgekara/campus/internal/platform/database/schema"
	"github.com/ozgekara/campus/internal/platform/dberr"
	"github.com/ozgekara/campus/internal/users/auth"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*DirectoryEntry, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Account.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_accounts")
	}

	// LEFT JOIN: admin accounts have no student row.
	query := `
		SELECT a.id, a.username, a.role,
		       COALESCE(s.firstname || ' ' || s.lastname, $3),
		       s.birthdate,
		       a.createdat
		FROM users.account a
		LEFT JOIN core.student s ON s.id = a.studentid
		ORDER BY a.createdat DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := repository.db.Query(context, query, limit, offset, NoStudentRecord)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_accounts")
	}
	defer rows.Close()

	var entries []*DirectoryEntry
	for rows.Next() {
		entry := &DirectoryEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.Username, &entry.Role,
			&entry.StudentName, &entry.StudentBirthDate,
			&entry.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_account")
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}

func (repository *PostgresRepository) Stats(context context.Context) (*Stats, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE a.role = 'admin'),
		       count(*) FILTER (WHERE a.role = 'student'),
		       count(*) FILTER (WHERE a.studentid IS NOT NULL),
		       count(*) FILTER (WHERE a.studentid IS NULL),
		       count(*) FILTER (WHERE a.studentid IS NOT NULL AND s.id IS NULL)
		FROM users.account a
		LEFT JOIN core.student s ON s.id = a.studentid
	`

	stats := &Stats{}
	err := repository.db.QueryRow(context, query).Scan(
		&stats.TotalUsers, &stats.AdminUsers, &stats.StudentUsers,
		&stats.UsersWithStudent, &stats.UsersWithoutStudent, &stats.OrphanedUsers,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "account_stats")
	}

	return stats, nil
}

func (repository *PostgresRepository) GetDetail(context context.Context, id string) (*Detail, error) {
	query := `
		SELECT a.id, a.username, a.role, a.studentid, a.createdat, a.updatedat,
		       s.id, s.firstname, s.lastname, s.birthdate, s.createdat, s.updatedat
		FROM users.account a
		LEFT JOIN core.student s ON s.id = a.studentid
		WHERE a.id = $1
	`

	accountRow := &auth.Account{}

	// Student columns come back NULL for unlinked accounts.
	var studentID, firstName, lastName *string
	var birthDate, studentCreatedAt, studentUpdatedAt *time.Time

	err := repository.db.QueryRow(context, query, id).Scan(
		&accountRow.ID, &accountRow.Username, &accountRow.Role, &accountRow.StudentID,
		&accountRow.CreatedAt, &accountRow.UpdatedAt,
		&studentID, &firstName, &lastName,
		&birthDate, &studentCreatedAt, &studentUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberr.ErrNotFound
		}
		return nil, dberr.Wrap(err, "get_account_detail")
	}

	detail := &Detail{Account: accountRow}
	if studentID != nil {
		detail.Student = &student.Student{
			ID:        *studentID,
			FirstName: *firstName,
			LastName:  *lastName,
			BirthDate: *birthDate,
			CreatedAt: *studentCreatedAt,
			UpdatedAt: *studentUpdatedAt,
		}
	}

	return detail, nil
}
