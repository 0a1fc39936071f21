package enrollment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ozgekara/campus/internal/platform/apperr"
	"github.com/ozgekara/campus/internal/platform/dberr"
	"github.com/ozgekara/campus/pkg/uuid"
)

type Service struct {
	repo     Repository
	students StudentDirectory
	courses  CourseDirectory
	logger   *slog.Logger
}

func NewService(repo Repository, students StudentDirectory, courses CourseDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		students: students,
		courses:  courses,
		logger:   logger,
	}
}

// Enroll creates an enrollment on behalf of an administrator.
//
// Both ids are caller-supplied and verified against their directories before
// the insert; a duplicate (student, course) pair surfaces as a conflict.
func (service *Service) Enroll(context context.Context, studentID, courseID string) (*Enrollment, error) {
	if studentID == "" || courseID == "" {
		return nil, apperr.ValidationError("person or course information missing")
	}

	studentExists, err := service.students.ExistsByID(context, studentID)
	if err != nil {
		return nil, err
	}
	courseExists, err := service.courses.ExistsByID(context, courseID)
	if err != nil {
		return nil, err
	}
	if !studentExists || !courseExists {
		return nil, apperr.NotFound("Student or course")
	}

	enrollment := &Enrollment{
		ID:        uuid.New(),
		StudentID: studentID,
		CourseID:  courseID,
	}

	if err := service.repo.CreateEnrollment(context, enrollment); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.Conflict("student is already enrolled in this course")
		}
		return nil, err
	}

	service.logger.Info("enrollment_created",
		slog.String("enrollment_id", enrollment.ID),
		slog.String("student_id", studentID),
		slog.String("course_id", courseID),
	)
	return enrollment, nil
}

// SelfEnroll enrolls the calling account's own student record. The student id
// is resolved from the token identity, never taken from the request body.
func (service *Service) SelfEnroll(context context.Context, accountID, courseID string) (*Enrollment, error) {
	studentID, err := service.resolveStudent(context, accountID)
	if err != nil {
		return nil, err
	}

	return service.Enroll(context, studentID, courseID)
}

func (service *Service) ListEnrollments(context context.Context, limit, offset int) ([]*Resolved, int, error) {
	return service.repo.ListEnrollments(context, limit, offset)
}

// ListForStudent returns a single student's enrollments with course names.
func (service *Service) ListForStudent(context context.Context, studentID string, limit, offset int) ([]*Resolved, int, error) {
	return service.repo.ListByStudent(context, studentID, limit, offset)
}

// ListForCourse returns a course's roster. An unknown course id is a 404, not
// an empty page.
func (service *Service) ListForCourse(context context.Context, courseID string, limit, offset int) ([]*Resolved, int, error) {
	exists, err := service.courses.ExistsByID(context, courseID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, apperr.NotFound("Course")
	}

	return service.repo.ListByCourse(context, courseID, limit, offset)
}

// ListForAccount resolves the calling account to its student record and lists
// that student's enrollments.
func (service *Service) ListForAccount(context context.Context, accountID string, limit, offset int) ([]*Resolved, int, error) {
	studentID, err := service.resolveStudent(context, accountID)
	if err != nil {
		return nil, 0, err
	}

	return service.repo.ListByStudent(context, studentID, limit, offset)
}

// Withdraw removes an enrollment by id on behalf of an administrator.
func (service *Service) Withdraw(context context.Context, enrollmentID string) error {
	if err := service.repo.DeleteEnrollment(context, enrollmentID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Enrollment")
		}
		return err
	}

	service.logger.Info("enrollment_withdrawn", slog.String("enrollment_id", enrollmentID))
	return nil
}

// SelfWithdraw removes the calling student's own enrollment in a course.
// Only the (own student, course) row is ever targeted, so a student can never
// withdraw another student's enrollment.
func (service *Service) SelfWithdraw(context context.Context, accountID, courseID string) error {
	studentID, err := service.resolveStudent(context, accountID)
	if err != nil {
		return err
	}

	if err := service.repo.DeleteByStudentCourse(context, studentID, courseID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Enrollment")
		}
		return err
	}

	service.logger.Info("enrollment_self_withdrawn",
		slog.String("student_id", studentID),
		slog.String("course_id", courseID),
	)
	return nil
}

func (service *Service) resolveStudent(context context.Context, accountID string) (string, error) {
	studentID, err := service.students.IDByAccount(context, accountID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return "", apperr.NotFound("Student profile")
		}
		return "", err
	}
	return studentID, nil
}
