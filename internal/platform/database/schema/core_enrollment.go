package schema

// EnrollmentTable represents the 'core.enrollment' table
type EnrollmentTable struct {
	Table     string
	ID        string
	StudentID string
	CourseID  string
	CreatedAt string
}

// Enrollment is the schema definition for core.enrollment
var Enrollment = EnrollmentTable{
	Table:     "core.enrollment",
	ID:        "id",
	StudentID: "studentid",
	CourseID:  "courseid",
	CreatedAt: "createdat",
}
