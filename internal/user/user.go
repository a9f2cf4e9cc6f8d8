package user

// User is one record of the upstream "meta users" listing. EmployeeID is nil
// for accounts that are not linked to an employee record.
type User struct {
	ID         int    `json:"id"`
	EmployeeID *int   `json:"employeeId,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	LastLogin  string `json:"lastLogin"`
}

const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
)

// Users maps the string form of a record id to the record.
type Users map[string]User

func (u User) HasEmployee() bool {
	return u.EmployeeID != nil
}

func (u User) Clone() User {
	if u.EmployeeID != nil {
		id := *u.EmployeeID
		u.EmployeeID = &id
	}
	return u
}

func (u Users) Clone() Users {
	out := make(Users, len(u))
	for key, record := range u {
		out[key] = record.Clone()
	}
	return out
}

// LinkedToEmployee returns the records that carry an employeeId, keyed as in u.
func (u Users) LinkedToEmployee() Users {
	out := make(Users)
	for key, record := range u {
		if record.HasEmployee() {
			out[key] = record.Clone()
		}
	}
	return out
}

func EmployeeID(id int) *int {
	return &id
}
