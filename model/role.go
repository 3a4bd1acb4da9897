package model

// Role is a player's assigned role for the match. Unknown values are
// tolerated everywhere; calibration lookups fall back to defaults.
type Role string

const (
	RoleEntry      Role = "Entry"
	RoleAWPer      Role = "AWPer"
	RoleSupport    Role = "Support"
	RoleLurker     Role = "Lurker"
	RoleRotator    Role = "Rotator"
	RoleTrader     Role = "Trader"
	RoleSiteAnchor Role = "SiteAnchor"
	RoleAnchor     Role = "Anchor"
)

// Roles lists every known role in display order.
var Roles = []Role{
	RoleEntry,
	RoleAWPer,
	RoleSupport,
	RoleLurker,
	RoleRotator,
	RoleTrader,
	RoleSiteAnchor,
	RoleAnchor,
}
