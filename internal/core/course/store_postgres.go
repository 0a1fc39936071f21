package course

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

func (repository *PostgresRepository) ListCourses(context context.Context, limit, offset int) ([]*Course, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Course.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_courses")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`,
		schema.Course.ID, schema.Course.Name, schema.Course.CreatedAt, schema.Course.UpdatedAt,
		schema.Course.Table, schema.Course.Name,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_courses")
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		c := &Course{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_course")
		}
		courses = append(courses, c)
	}

	return courses, total, nil
}

func (repository *PostgresRepository) GetCourse(context context.Context, id string) (*Course, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Course.ID, schema.Course.Name, schema.Course.CreatedAt, schema.Course.UpdatedAt,
		schema.Course.Table, schema.Course.ID,
	)
	c := &Course{}

	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_course")
	}

	return c, nil
}

func (repository *PostgresRepository) CreateCourse(context context.Context, c *Course) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Course.Table, schema.Course.ID, schema.Course.Name,
		schema.Course.CreatedAt, schema.Course.UpdatedAt,
		schema.Course.CreatedAt, schema.Course.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.Name).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_course")
}

func (repository *PostgresRepository) UpdateCourse(context context.Context, c *Course) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Course.Table, schema.Course.Name, schema.Course.UpdatedAt,
		schema.Course.ID, schema.Course.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.Name).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_course")
}

func (repository *PostgresRepository) DeleteCourse(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Course.Table, schema.Course.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_course")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ExistsByID(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Course.Table, schema.Course.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "course_exists")
	}

	return exists, nil
}
