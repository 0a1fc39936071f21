package course_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekara/campus/internal/core/course"
	"github.com/ozgekara/campus/internal/platform/apperr"
	"github.com/ozgekara/campus/internal/platform/dberr"
)

// memRepository is an in-memory course.Repository enforcing name uniqueness
// the way the unique index does.
type memRepository struct {
	courses map[string]*course.Course
}

func newMemRepository() *memRepository {
	return &memRepository{courses: make(map[string]*course.Course)}
}

func (m *memRepository) nameTaken(name, excludeID string) bool {
	for _, c := range m.courses {
		if c.Name == name && c.ID != excludeID {
			return true
		}
	}
	return false
}

func (m *memRepository) ListCourses(_ context.Context, limit, offset int) ([]*course.Course, int, error) {
	var all []*course.Course
	for _, c := range m.courses {
		all = append(all, c)
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *memRepository) GetCourse(_ context.Context, id string) (*course.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *memRepository) CreateCourse(_ context.Context, c *course.Course) error {
	if m.nameTaken(c.Name, c.ID) {
		return dberr.ErrDuplicate
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.courses[c.ID] = c
	return nil
}

func (m *memRepository) UpdateCourse(_ context.Context, c *course.Course) error {
	if _, ok := m.courses[c.ID]; !ok {
		return dberr.ErrNotFound
	}
	if m.nameTaken(c.Name, c.ID) {
		return dberr.ErrDuplicate
	}
	c.UpdatedAt = time.Now()
	m.courses[c.ID] = c
	return nil
}

func (m *memRepository) DeleteCourse(_ context.Context, id string) error {
	if _, ok := m.courses[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *memRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := m.courses[id]
	return ok, nil
}

func newService(repo course.Repository) *course.Service {
	return course.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCreateCourse covers creation, validation, and the duplicate-name conflict.
*/
func TestCreateCourse(t *testing.T) {
	repo := newMemRepository()
	service := newService(repo)

	first := &course.Course{Name: "Algorithms"}
	require.NoError(t, service.CreateCourse(context.Background(), first))
	assert.NotEmpty(t, first.ID)

	// Blank name is rejected
	err := service.CreateCourse(context.Background(), &course.Course{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// Duplicate name is a conflict with a resource-specific message
	err = service.CreateCourse(context.Background(), &course.Course{Name: "Algorithms"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "course name already exists", ae.Message)
}

/*
TestUpdateCourse covers renames, the missing target, and renaming onto an
existing name.
*/
func TestUpdateCourse(t *testing.T) {
	repo := newMemRepository()
	service := newService(repo)

	algorithms := &course.Course{Name: "Algorithms"}
	databases := &course.Course{Name: "Databases"}
	require.NoError(t, service.CreateCourse(context.Background(), algorithms))
	require.NoError(t, service.CreateCourse(context.Background(), databases))

	updated, err := service.UpdateCourse(context.Background(), algorithms.ID, "Advanced Algorithms")
	require.NoError(t, err)
	assert.Equal(t, "Advanced Algorithms", updated.Name)

	_, err = service.UpdateCourse(context.Background(), "ghost", "Anything")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.UpdateCourse(context.Background(), databases.ID, "Advanced Algorithms")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestDeleteCourse covers removal and the missing target.
*/
func TestDeleteCourse(t *testing.T) {
	repo := newMemRepository()
	service := newService(repo)

	c := &course.Course{Name: "Algorithms"}
	require.NoError(t, service.CreateCourse(context.Background(), c))

	require.NoError(t, service.DeleteCourse(context.Background(), c.ID))

	err := service.DeleteCourse(context.Background(), c.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
