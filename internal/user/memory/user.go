package memory

import (
	"github.com/frahmantamala/hr-mock/internal/user"
)

// fixtures is built once at package init and never written afterwards.
var fixtures = user.Users{
	"1": {
		ID:         1,
		EmployeeID: user.EmployeeID(1),
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john.doe@bamboohr.com",
		Status:     user.StatusEnabled,
		LastLogin:  "2011-03-19T10:16:00+00:00",
	},
	"2": {
		ID:        2,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@bamboohr.com",
		Status:    user.StatusEnabled,
		LastLogin: "2011-08-29T11:17:43+00:00",
	},
	"3": {
		ID:         3,
		EmployeeID: user.EmployeeID(2),
		FirstName:  "Michael",
		LastName:   "Smith",
		Email:      "michael.smith@bamboohr.com",
		Status:     user.StatusEnabled,
		LastLogin:  "2023-08-01T08:00:00+00:00",
	},
}

type UserRepository struct {
	users user.Users
}

// NewUserRepository serves the built-in sample records.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: fixtures}
}

// NewUserRepositoryFrom serves a private copy of users.
func NewUserRepositoryFrom(users user.Users) *UserRepository {
	return &UserRepository{users: users.Clone()}
}

// GetAll returns a copy so callers cannot mutate the shared table.
func (r *UserRepository) GetAll() (user.Users, error) {
	return r.users.Clone(), nil
}
