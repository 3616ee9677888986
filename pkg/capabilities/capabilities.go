package capabilities

// Capability is a closed set of permission names shared between the
// validators and the auth layer, so a typo fails compilation instead of
// silently denying access.
type Capability string

const (
	CreateStockMovements Capability = "create_stock_movements"
	RefillBays           Capability = "refill_bays"
	ManageProducts       Capability = "manage_products"
	ManageUsers          Capability = "manage_users"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

var roleGrants = map[string][]Capability{
	RoleAdmin:    {CreateStockMovements, RefillBays, ManageProducts, ManageUsers},
	RoleManager:  {CreateStockMovements, RefillBays, ManageProducts},
	RoleOperator: {CreateStockMovements, RefillBays},
	RoleViewer:   {},
}

// RoleHas reports whether the given role is granted the capability.
// Unknown roles hold no capabilities.
func RoleHas(role string, c Capability) bool {
	for _, granted := range roleGrants[role] {
		if granted == c {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	_, ok := roleGrants[role]
	return ok
}

func (c Capability) String() string {
	return string(c)
}
