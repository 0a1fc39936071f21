package schema

// CourseTable represents the 'core.course' table
type CourseTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// Course is the schema definition for core.course
var Course = CourseTable{
	Table:     "core.course",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
