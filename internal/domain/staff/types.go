package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of a staff member operating the scanner. Tokens carrying these roles
// are issued by the external auth service.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleLevels = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	need, minOK := roleLevels[min]
	return ok && minOK && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
