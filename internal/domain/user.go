package domain

// User represents a requester from the directory
type User struct {
	ID    int64
	Name  string
	Email string
}
