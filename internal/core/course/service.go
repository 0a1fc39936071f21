package course

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

func (service *Service) ListCourses(context context.Context, limit, offset int) ([]*Course, int, error) {
	return service.repo.ListCourses(context, limit, offset)
}

func (service *Service) GetCourse(context context.Context, id string) (*Course, error) {
	return service.repo.GetCourse(context, id)
}

func (service *Service) CreateCourse(context context.Context, course *Course) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, course.Name).MaxLen(FieldName, course.Name, MaxNameLen)
	if err := validator.Err(); err != nil {
		return err
	}

	course.ID = uuid.New()
	if err := service.repo.CreateCourse(context, course); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return apperr.Conflict("course name already exists")
		}
		return err
	}

	service.logger.Info("course_created",
		slog.String("course_id", course.ID),
		slog.String("name", course.Name),
	)
	return nil
}

func (service *Service) UpdateCourse(context context.Context, id string, name string) (*Course, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	course, err := service.repo.GetCourse(context, id)
	if err != nil {
		return nil, err
	}

	course.Name = name
	if err := service.repo.UpdateCourse(context, course); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.Conflict("course name already exists")
		}
		return nil, err
	}

	service.logger.Info("course_updated", slog.String("course_id", course.ID))
	return course, nil
}

func (service *Service) DeleteCourse(context context.Context, id string) error {
	if err := service.repo.DeleteCourse(context, id); err != nil {
		return err
	}

	service.logger.Warn("course_deleted", slog.String("course_id", id))
	return nil
}
