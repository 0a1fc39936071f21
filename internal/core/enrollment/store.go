package enrollment

import "context"

type Repository interface {
	CreateEnrollment(context context.Context, e *Enrollment) error
	ListEnrollments(context context.Context, limit, offset int) ([]*Resolved, int, error)
	ListByStudent(context context.Context, studentID string, limit, offset int) ([]*Resolved, int, error)
	ListByCourse(context context.Context, courseID string, limit, offset int) ([]*Resolved, int, error)
	DeleteEnrollment(context context.Context, id string) error

	// DeleteByStudentCourse removes the single (student, course) row. Used by
	// self-withdrawal, where the student id comes from the token, never the body.
	DeleteByStudentCourse(context context.Context, studentID, courseID string) error
}

// StudentDirectory is the slice of the student store this service needs.
// Declared here so the student package never has to import this one.
type StudentDirectory interface {
	ExistsByID(context context.Context, id string) (bool, error)

	// IDByAccount resolves a login account to its linked student id.
	IDByAccount(context context.Context, accountID string) (string, error)
}

// CourseDirectory is the slice of the course store this service needs.
type CourseDirectory interface {
	ExistsByID(context context.Context, id string) (bool, error)
}
