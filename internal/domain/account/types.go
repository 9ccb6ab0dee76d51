package account

type Role string

const (
	RoleCustomer Role = "customer"
	RoleHelper   Role = "helper"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleHelper:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	if s == "" {
		return RoleCustomer, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
