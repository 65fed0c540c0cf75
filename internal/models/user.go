package models

// User is the identity and contact record of someone who logged in.
// Email is the business key; users are never updated or deleted.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
