// Copyright (c) 2026 Campus. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozgekara/campus/internal/core/student"
	"github.com/ozgekara/campus/internal/platform/database/schema"
	"github.com/ozgekara/campus/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func accountSelect() string {
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.Account.ID, schema.Account.Username, schema.Account.PasswordHash,
		schema.Account.Role, schema.Account.StudentID,
		schema.Account.CreatedAt, schema.Account.UpdatedAt,
		schema.Account.Table,
	)
}

func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*Account, error) {
	query := accountSelect() + fmt.Sprintf(` WHERE %s = $1`, schema.Account.Username)

	account := &Account{}
	err := repository.db.QueryRow(context, query, username).Scan(
		&account.ID, &account.Username, &account.PasswordHash,
		&account.Role, &account.StudentID,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_username")
	}

	return account, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Account, error) {
	query := accountSelect() + fmt.Sprintf(` WHERE %s = $1`, schema.Account.ID)

	account := &Account{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&account.ID, &account.Username, &account.PasswordHash,
		&account.Role, &account.StudentID,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_id")
	}

	return account, nil
}

func (repository *PostgresRepository) Create(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Account.Table,
		schema.Account.ID, schema.Account.Username, schema.Account.PasswordHash,
		schema.Account.Role, schema.Account.StudentID,
		schema.Account.CreatedAt, schema.Account.UpdatedAt,
		schema.Account.CreatedAt, schema.Account.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		account.ID, account.Username, account.PasswordHash, account.Role, account.StudentID,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	return dberr.Wrap(err, "create_account")
}

// CreateWithStudent inserts the student row first, then the account that
// references it. Any failure rolls both back.
func (repository *PostgresRepository) CreateWithStudent(context context.Context, s *student.Student, account *Account) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_register_tx")
	}
	defer transaction.Rollback(context)

	studentQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Student.Table,
		schema.Student.ID, schema.Student.FirstName, schema.Student.LastName, schema.Student.BirthDate,
		schema.Student.CreatedAt, schema.Student.UpdatedAt,
		schema.Student.CreatedAt, schema.Student.UpdatedAt,
	)
	err = transaction.QueryRow(context, studentQuery, s.ID, s.FirstName, s.LastName, s.BirthDate).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "register_create_student")
	}

	accountQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Account.Table,
		schema.Account.ID, schema.Account.Username, schema.Account.PasswordHash,
		schema.Account.Role, schema.Account.StudentID,
		schema.Account.CreatedAt, schema.Account.UpdatedAt,
		schema.Account.CreatedAt, schema.Account.UpdatedAt,
	)
	err = transaction.QueryRow(context, accountQuery,
		account.ID, account.Username, account.PasswordHash, account.Role, account.StudentID,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "register_create_account")
	}

	return transaction.Commit(context)
}
