package enrollment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekara/campus/internal/core/enrollment"
	"github.com/ozgekara/campus/internal/platform/apperr"
	"github.com/ozgekara/campus/internal/platform/dberr"
)

// memRepository is an in-memory enrollment.Repository enforcing the unique
// (student, course) pair the way the database constraint does.
type memRepository struct {
	rows map[string]*enrollment.Enrollment
}

func newMemRepository() *memRepository {
	return &memRepository{rows: make(map[string]*enrollment.Enrollment)}
}

func (m *memRepository) pairExists(studentID, courseID string) bool {
	for _, row := range m.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			return true
		}
	}
	return false
}

func (m *memRepository) CreateEnrollment(_ context.Context, e *enrollment.Enrollment) error {
	if m.pairExists(e.StudentID, e.CourseID) {
		return dberr.ErrDuplicate
	}
	e.CreatedAt = time.Now()
	m.rows[e.ID] = e
	return nil
}

func (m *memRepository) resolve(rows []*enrollment.Enrollment) []*enrollment.Resolved {
	var resolved []*enrollment.Resolved
	for _, row := range rows {
		resolved = append(resolved, &enrollment.Resolved{
			ID:        row.ID,
			Student:   enrollment.PersonRef{ID: row.StudentID},
			Course:    enrollment.CourseRef{ID: row.CourseID},
			CreatedAt: row.CreatedAt,
		})
	}
	return resolved
}

func (m *memRepository) ListEnrollments(_ context.Context, limit, offset int) ([]*enrollment.Resolved, int, error) {
	var all []*enrollment.Enrollment
	for _, row := range m.rows {
		all = append(all, row)
	}
	return m.resolve(all), len(all), nil
}

func (m *memRepository) ListByStudent(_ context.Context, studentID string, limit, offset int) ([]*enrollment.Resolved, int, error) {
	var filtered []*enrollment.Enrollment
	for _, row := range m.rows {
		if row.StudentID == studentID {
			filtered = append(filtered, row)
		}
	}
	return m.resolve(filtered), len(filtered), nil
}

func (m *memRepository) ListByCourse(_ context.Context, courseID string, limit, offset int) ([]*enrollment.Resolved, int, error) {
	var filtered []*enrollment.Enrollment
	for _, row := range m.rows {
		if row.CourseID == courseID {
			filtered = append(filtered, row)
		}
	}
	return m.resolve(filtered), len(filtered), nil
}

func (m *memRepository) DeleteEnrollment(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memRepository) DeleteByStudentCourse(_ context.Context, studentID, courseID string) error {
	for id, row := range m.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			delete(m.rows, id)
			return nil
		}
	}
	return dberr.ErrNotFound
}

// memStudents implements enrollment.StudentDirectory.
type memStudents struct {
	ids          map[string]bool
	accountLinks map[string]string
}

func (m *memStudents) ExistsByID(_ context.Context, id string) (bool, error) {
	return m.ids[id], nil
}

func (m *memStudents) IDByAccount(_ context.Context, accountID string) (string, error) {
	studentID, ok := m.accountLinks[accountID]
	if !ok {
		return "", dberr.ErrNotFound
	}
	return studentID, nil
}

// memCourses implements enrollment.CourseDirectory.
type memCourses struct {
	ids map[string]bool
}

func (m *memCourses) ExistsByID(_ context.Context, id string) (bool, error) {
	return m.ids[id], nil
}

type fixture struct {
	repo    *memRepository
	service *enrollment.Service
}

func newFixture() *fixture {
	repo := newMemRepository()
	students := &memStudents{
		ids:          map[string]bool{"student-1": true, "student-2": true},
		accountLinks: map[string]string{"account-1": "student-1"},
	}
	courses := &memCourses{ids: map[string]bool{"course-1": true, "course-2": true}}

	return &fixture{
		repo:    repo,
		service: enrollment.NewService(repo, students, courses, slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}

/*
TestEnroll covers the admin enrollment path: missing input, unknown
references, success, and the duplicate pair.
*/
func TestEnroll(t *testing.T) {
	f := newFixture()

	// Missing ids
	_, err := f.service.Enroll(context.Background(), "", "course-1")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "person or course information missing", ae.Message)

	// Unknown student
	_, err = f.service.Enroll(context.Background(), "ghost", "course-1")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// Unknown course
	_, err = f.service.Enroll(context.Background(), "student-1", "ghost")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// Success
	created, err := f.service.Enroll(context.Background(), "student-1", "course-1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// Duplicate pair
	_, err = f.service.Enroll(context.Background(), "student-1", "course-1")
	require.Error(t, err)

	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "student is already enrolled in this course", ae.Message)
	assert.Len(t, f.repo.rows, 1, "conflict must not add a row")
}

/*
TestSelfEnroll resolves the student from the token identity.
*/
func TestSelfEnroll(t *testing.T) {
	f := newFixture()

	created, err := f.service.SelfEnroll(context.Background(), "account-1", "course-1")
	require.NoError(t, err)
	assert.Equal(t, "student-1", created.StudentID, "student id comes from the identity")

	// Account without a linked student record
	_, err = f.service.SelfEnroll(context.Background(), "unlinked-account", "course-1")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Student profile not found", ae.Message)
}

/*
TestWithdraw covers admin withdrawal by enrollment id.
*/
func TestWithdraw(t *testing.T) {
	f := newFixture()

	created, err := f.service.Enroll(context.Background(), "student-1", "course-1")
	require.NoError(t, err)

	require.NoError(t, f.service.Withdraw(context.Background(), created.ID))

	err = f.service.Withdraw(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestSelfWithdraw_ScopedToOwnStudent ensures a student can only ever remove
their own (student, course) row.
*/
func TestSelfWithdraw_ScopedToOwnStudent(t *testing.T) {
	f := newFixture()

	// Another student is enrolled in the same course.
	_, err := f.service.Enroll(context.Background(), "student-2", "course-1")
	require.NoError(t, err)

	// account-1's student is not enrolled: the other student's row is not a
	// valid target, so this is a 404.
	err = f.service.SelfWithdraw(context.Background(), "account-1", "course-1")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Len(t, f.repo.rows, 1, "other student's enrollment untouched")

	// After enrolling, self-withdrawal removes exactly the own row.
	_, err = f.service.SelfEnroll(context.Background(), "account-1", "course-1")
	require.NoError(t, err)

	require.NoError(t, f.service.SelfWithdraw(context.Background(), "account-1", "course-1"))
	assert.Len(t, f.repo.rows, 1)
	for _, row := range f.repo.rows {
		assert.Equal(t, "student-2", row.StudentID)
	}
}

/*
TestListForCourse returns 404 for an unknown course rather than an empty page.
*/
func TestListForCourse(t *testing.T) {
	f := newFixture()

	_, _, err := f.service.ListForCourse(context.Background(), "ghost", 10, 0)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = f.service.Enroll(context.Background(), "student-1", "course-1")
	require.NoError(t, err)

	rows, total, err := f.service.ListForCourse(context.Background(), "course-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, rows, 1)
}

/*
TestListForAccount resolves the identity before listing.
*/
func TestListForAccount(t *testing.T) {
	f := newFixture()

	_, err := f.service.SelfEnroll(context.Background(), "account-1", "course-1")
	require.NoError(t, err)
	_, err = f.service.Enroll(context.Background(), "student-2", "course-2")
	require.NoError(t, err)

	rows, total, err := f.service.ListForAccount(context.Background(), "account-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "student-1", rows[0].Student.ID)
}
