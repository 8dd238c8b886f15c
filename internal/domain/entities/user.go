package entities

// UserRole is supplied by the identity collaborator; the service trusts it
// and only enforces role/ownership checks on top.
type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleTechnician UserRole = "technician"
	RoleBoth       UserRole = "both"
	RoleAdmin      UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleTechnician, RoleBoth, RoleAdmin:
		return true
	}
	return false
}

func HasCustomerAccess(role UserRole) bool {
	return role == RoleCustomer || role == RoleBoth || role == RoleAdmin
}

func HasTechnicianAccess(role UserRole) bool {
	return role == RoleTechnician || role == RoleBoth || role == RoleAdmin
}

func IsAdmin(role UserRole) bool {
	return role == RoleAdmin
}
