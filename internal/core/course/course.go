package course

import "time"

// Course represents an offered course. Names are unique across the catalog.
type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Global field names for validation
const (
	FieldName = "name"
)

// MaxNameLen bounds the course name.
const MaxNameLen = 200
