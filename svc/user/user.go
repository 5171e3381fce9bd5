// Package user stores accounts, verifies passwords and records job
// applications.
package user

import (
	"github.com/dmitrymomot/jobboard/pkg/jwt"
	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
)

// User is an account as returned to clients. The password hash never
// leaves the package.
type User struct {
	Username  string  `json:"username"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	IsAdmin   bool    `json:"isAdmin"`
	Jobs      []int64 `json:"jobs,omitempty"`
}

// Identity returns the token identity of u.
func (u User) Identity() jwt.Identity {
	return jwt.Identity{Username: u.Username, IsAdmin: u.IsAdmin}
}

// NewUser is the input for Register.
type NewUser struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateColumns maps update field names to columns.
var UpdateColumns = sqlbuild.Columns{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}
