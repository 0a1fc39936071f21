package student

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozgekara/campus/internal/platform/database/schema"
	"github.com/ozgekara/campus/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListStudents(context context.Context, limit, offset int) ([]*Student, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Student.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_students")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.Student.ID, schema.Student.FirstName, schema.Student.LastName,
		schema.Student.BirthDate, schema.Student.CreatedAt, schema.Student.UpdatedAt,
		schema.Student.Table, schema.Student.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_students")
	}
	defer rows.Close()

	var students []*Student
	for rows.Next() {
		s := &Student{}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.BirthDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_student")
		}
		students = append(students, s)
	}

	return students, total, nil
}

func (repository *PostgresRepository) GetStudent(context context.Context, id string) (*Student, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Student.ID, schema.Student.FirstName, schema.Student.LastName,
		schema.Student.BirthDate, schema.Student.CreatedAt, schema.Student.UpdatedAt,
		schema.Student.Table, schema.Student.ID,
	)
	s := &Student{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.BirthDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_student")
	}

	return s, nil
}

func (repository *PostgresRepository) CreateStudent(context context.Context, s *Student) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Student.Table, schema.Student.ID, schema.Student.FirstName, schema.Student.LastName,
		schema.Student.BirthDate, schema.Student.CreatedAt, schema.Student.UpdatedAt,
		schema.Student.CreatedAt, schema.Student.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, s.ID, s.FirstName, s.LastName, s.BirthDate).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, "create_student")
}

func (repository *PostgresRepository) UpdateStudent(context context.Context, s *Student) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Student.Table, schema.Student.FirstName, schema.Student.LastName,
		schema.Student.BirthDate, schema.Student.UpdatedAt,
		schema.Student.ID, schema.Student.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, s.ID, s.FirstName, s.LastName, s.BirthDate).
		Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "update_student")
}

// DeleteStudent removes the student, its enrollments, and its linked login
// account in one transaction. Partial removal is never observable.
func (repository *PostgresRepository) DeleteStudent(context context.Context, id string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_student_tx")
	}
	defer transaction.Rollback(context)

	// Step 1: Remove enrollments referencing the student
	enrollmentQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Enrollment.Table, schema.Enrollment.StudentID,
	)
	if _, err := transaction.Exec(context, enrollmentQuery, id); err != nil {
		return dberr.Wrap(err, "delete_student_enrollments")
	}

	// Step 2: Remove the linked login account (if any)
	accountQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Account.Table, schema.Account.StudentID,
	)
	if _, err := transaction.Exec(context, accountQuery, id); err != nil {
		return dberr.Wrap(err, "delete_student_account")
	}

	// Step 3: Remove the student row itself
	studentQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Student.Table, schema.Student.ID,
	)
	cmd, err := transaction.Exec(context, studentQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_student")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return transaction.Commit(context)
}

func (repository *PostgresRepository) FindByAccountID(context context.Context, accountID string) (*Student, error) {
	query := fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, s.%s, s.%s
		FROM %s s
		JOIN %s a ON a.%s = s.%s
		WHERE a.%s = $1
	`,
		schema.Student.ID, schema.Student.FirstName, schema.Student.LastName,
		schema.Student.BirthDate, schema.Student.CreatedAt, schema.Student.UpdatedAt,
		schema.Student.Table,
		schema.Account.Table, schema.Account.StudentID, schema.Student.ID,
		schema.Account.ID,
	)
	s := &Student{}

	err := repository.db.QueryRow(context, query, accountID).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.BirthDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_student_by_account")
	}

	return s, nil
}

func (repository *PostgresRepository) IDByAccount(context context.Context, accountID string) (string, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s IS NOT NULL
	`,
		schema.Account.StudentID, schema.Account.Table,
		schema.Account.ID, schema.Account.StudentID,
	)

	var studentID string
	if err := repository.db.QueryRow(context, query, accountID).Scan(&studentID); err != nil {
		return "", dberr.Wrap(err, "student_id_by_account")
	}

	return studentID, nil
}

func (repository *PostgresRepository) ExistsByID(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Student.Table, schema.Student.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "student_exists")
	}

	return exists, nil
}
