package student

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ozgekara/campus/internal/platform/apperr"
	"github.com/ozgekara/campus/internal/platform/dberr"
	"github.com/ozgekara/campus/internal/platform/validate"
	"github.com/ozgekara/campus/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListStudents(context context.Context, limit, offset int) ([]*Student, int, error) {
	return service.repo.ListStudents(context, limit, offset)
}

func (service *Service) GetStudent(context context.Context, id string) (*Student, error) {
	return service.repo.GetStudent(context, id)
}

func (service *Service) CreateStudent(context context.Context, student *Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	student.ID = uuid.New()
	if err := service.repo.CreateStudent(context, student); err != nil {
		return err
	}

	service.logger.Info("student_created",
		slog.String("student_id", student.ID),
		slog.String("last_name", student.LastName),
	)
	return nil
}

// UpdateStudent applies a partial update. Absent fields keep their stored
// values; the merged record is re-validated before persisting.
func (service *Service) UpdateStudent(context context.Context, id string, input UpdateInput) (*Student, error) {
	student, err := service.repo.GetStudent(context, id)
	if err != nil {
		return nil, err
	}

	applyPatch(student, input)
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateStudent(context, student); err != nil {
		return nil, err
	}

	service.logger.Info("student_updated", slog.String("student_id", student.ID))
	return student, nil
}

func (service *Service) DeleteStudent(context context.Context, id string) error {
	if err := service.repo.DeleteStudent(context, id); err != nil {
		return err
	}

	service.logger.Warn("student_deleted", slog.String("student_id", id))
	return nil
}

// GetOwnProfile resolves the student record linked to the calling account.
func (service *Service) GetOwnProfile(context context.Context, accountID string) (*Student, error) {
	student, err := service.repo.FindByAccountID(context, accountID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Student profile")
		}
		return nil, err
	}
	return student, nil
}

// UpdateOwnProfile lets a student change their own profile fields. The target
// row is always the one linked to the calling account.
func (service *Service) UpdateOwnProfile(context context.Context, accountID string, input UpdateInput) (*Student, error) {
	student, err := service.GetOwnProfile(context, accountID)
	if err != nil {
		return nil, err
	}

	applyPatch(student, input)
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateStudent(context, student); err != nil {
		return nil, err
	}

	service.logger.Info("student_profile_updated", slog.String("student_id", student.ID))
	return student, nil
}

func applyPatch(student *Student, input UpdateInput) {
	if input.FirstName != nil {
		student.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		student.LastName = *input.LastName
	}
	if input.BirthDate != nil {
		student.BirthDate = *input.BirthDate
	}
}

func validateStudent(student *Student) error {
	validator := &validate.Validator{}

	validator.Required(FieldFirstName, student.FirstName).MaxLen(FieldFirstName, student.FirstName, MaxNameLen)
	validator.Required(FieldLastName, student.LastName).MaxLen(FieldLastName, student.LastName, MaxNameLen)
	validator.PastDate(FieldBirthDate, student.BirthDate)

	return validator.Err()
}
