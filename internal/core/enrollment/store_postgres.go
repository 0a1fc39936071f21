package enrollment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

// resolvedSelect joins student and course display data onto enrollment rows.
//
// Courses are LEFT JOINed: deleting a course does not remove its enrollments,
// so the course side can be gone. Students always exist while their
// enrollments do (student deletion cascades).
const resolvedSelect = `
	SELECT e.id,
	       s.id, s.firstname, s.lastname,
	       COALESCE(c.id::text, ''), COALESCE(c.name, 'Course removed'),
	       e.createdat
	FROM core.enrollment e
	JOIN core.student s ON s.id = e.studentid
	LEFT JOIN core.course c ON c.id = e.courseid
`

func (repository *PostgresRepository) CreateEnrollment(context context.Context, e *Enrollment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		schema.Enrollment.Table, schema.Enrollment.ID, schema.Enrollment.StudentID,
		schema.Enrollment.CourseID, schema.Enrollment.CreatedAt,
		schema.Enrollment.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, e.ID, e.StudentID, e.CourseID).Scan(&e.CreatedAt)
	return dberr.Wrap(err, "create_enrollment")
}

func (repository *PostgresRepository) ListEnrollments(context context.Context, limit, offset int) ([]*Resolved, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Enrollment.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_enrollments")
	}

	query := resolvedSelect + ` ORDER BY e.createdat DESC LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_enrollments")
	}
	defer rows.Close()

	resolved, err := scanResolved(rows)
	if err != nil {
		return nil, 0, err
	}
	return resolved, total, nil
}

func (repository *PostgresRepository) ListByStudent(context context.Context, studentID string, limit, offset int) ([]*Resolved, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.Enrollment.Table, schema.Enrollment.StudentID,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, studentID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_student_enrollments")
	}

	query := resolvedSelect + ` WHERE e.studentid = $1 ORDER BY e.createdat DESC LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(context, query, studentID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_student_enrollments")
	}
	defer rows.Close()

	resolved, err := scanResolved(rows)
	if err != nil {
		return nil, 0, err
	}
	return resolved, total, nil
}

func (repository *PostgresRepository) ListByCourse(context context.Context, courseID string, limit, offset int) ([]*Resolved, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.Enrollment.Table, schema.Enrollment.CourseID,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, courseID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_course_enrollments")
	}

	query := resolvedSelect + ` WHERE e.courseid = $1 ORDER BY e.createdat DESC LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(context, query, courseID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_course_enrollments")
	}
	defer rows.Close()

	resolved, err := scanResolved(rows)
	if err != nil {
		return nil, 0, err
	}
	return resolved, total, nil
}

func (repository *PostgresRepository) DeleteEnrollment(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Enrollment.Table, schema.Enrollment.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_enrollment")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteByStudentCourse(context context.Context, studentID, courseID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Enrollment.Table, schema.Enrollment.StudentID, schema.Enrollment.CourseID,
	)

	cmd, err := repository.db.Exec(context, query, studentID, courseID)
	if err != nil {
		return dberr.Wrap(err, "delete_enrollment_by_pair")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// scanResolved drains a resolvedSelect result set.
func scanResolved(rows pgx.Rows) ([]*Resolved, error) {
	var resolved []*Resolved
	for rows.Next() {
		r := &Resolved{}
		if err := rows.Scan(
			&r.ID,
			&r.Student.ID, &r.Student.FirstName, &r.Student.LastName,
			&r.Course.ID, &r.Course.Name,
			&r.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_enrollment")
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}
