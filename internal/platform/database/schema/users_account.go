package schema

// AccountTable represents the 'users.account' table
type AccountTable struct {
	Table        string
	ID           string
	Username     string
	PasswordHash string
	Role         string
	StudentID    string
	CreatedAt    string
	UpdatedAt    string
}

// Account is the schema definition for users.account
var Account = AccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	PasswordHash: "passwordhash",
	Role:         "role",
	StudentID:    "studentid",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
