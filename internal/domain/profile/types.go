package profile

type Role string

const (
	RoleSalonOwner Role = "salon_owner"
	RoleBarber     Role = "barber"
	RoleCustomer   Role = "customer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSalonOwner, RoleBarber, RoleCustomer:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
