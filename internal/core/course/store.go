package course

import "context"

type Repository interface {
	ListCourses(context context.Context, limit, offset int) ([]*Course, int, error)
	GetCourse(context context.Context, id string) (*Course, error)
	CreateCourse(context context.Context, c *Course) error
	UpdateCourse(context context.Context, c *Course) error

	// DeleteCourse removes only the course row. Enrollments referencing it
	// are left in place and must be withdrawn separately.
	DeleteCourse(context context.Context, id string) error

	ExistsByID(context context.Context, id string) (bool, error)
}
