// Package schema centralizes physical table and column names so that store
// queries never embed raw identifier strings.
package schema

// StudentTable represents the 'core.student' table
type StudentTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	BirthDate string
	CreatedAt string
	UpdatedAt string
}

// Student is the schema definition for core.student
var Student = StudentTable{
	Table:     "core.student",
	ID:        "id",
	FirstName: "firstname",
	LastName:  "lastname",
	BirthDate: "birthdate",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
