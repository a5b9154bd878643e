// Package model contain the domain records served by the data source and held by the state stores
package model

// Roles that can sign in to the console
const (
	RoleHR    = "hr"
	RoleAdmin = "admin"
)

// Roles lists every role accepted by the login endpoint
var Roles = []string{RoleHR, RoleAdmin}

// User is the signed in console user. It is persisted under the aps_user_data key.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Credentials is the login form payload
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
