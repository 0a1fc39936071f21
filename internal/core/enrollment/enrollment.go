package enrollment

import "time"

// Enrollment links a student to a course. The (student, course) pair is
// unique: enrolling twice is a conflict, not a second row.
type Enrollment struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PersonRef is the resolved student half of an enrollment row.
type PersonRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CourseRef is the resolved course half of an enrollment row.
type CourseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Resolved is an enrollment with both sides resolved to display data.
// Listing endpoints always return this shape, never raw foreign keys.
type Resolved struct {
	ID        string    `json:"id"`
	Student   PersonRef `json:"student"`
	Course    CourseRef `json:"course"`
	CreatedAt time.Time `json:"createdAt"`
}

// Global field names for validation
const (
	FieldStudentID = "studentId"
	FieldCourseID  = "courseId"
)
