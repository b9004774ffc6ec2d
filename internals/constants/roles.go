package constants

// User roles. Authorization itself lives in middleware; controllers only
// double-check the role string attached to the request actor.
const (
	RoleAdmin               = "admin"
	RoleLogisticsSupervisor = "logistics_supervisor"
	RoleMosqueAdmin         = "mosque_admin"
	RoleDriver              = "driver"
	RoleDonor               = "donor"
)

var AllRoles = []string{
	RoleAdmin,
	RoleLogisticsSupervisor,
	RoleMosqueAdmin,
	RoleDriver,
	RoleDonor,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
