package student

import "time"

// Student represents a person enrolled at the institution.
//
// The linked login account (if any) lives in users.account and references
// this record; the student row itself carries no credential data.
type Student struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	BirthDate time.Time `json:"birthDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateInput carries a partial profile update. Nil fields are left untouched.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	BirthDate *time.Time
}

// Global field names for validation
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldBirthDate = "birthDate"
)

// MaxNameLen bounds both name fields.
const MaxNameLen = 100
