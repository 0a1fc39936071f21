package student

import "context"

type Repository interface {
	ListStudents(context context.Context, limit, offset int) ([]*Student, int, error)
	GetStudent(context context.Context, id string) (*Student, error)
	CreateStudent(context context.Context, s *Student) error
	UpdateStudent(context context.Context, s *Student) error

	// DeleteStudent removes the student together with its enrollments and
	// linked login account in a single transaction.
	DeleteStudent(context context.Context, id string) error

	// FindByAccountID resolves the student record linked to a login account.
	FindByAccountID(context context.Context, accountID string) (*Student, error)

	// IDByAccount resolves a login account to its linked student id.
	IDByAccount(context context.Context, accountID string) (string, error)

	ExistsByID(context context.Context, id string) (bool, error)
}
