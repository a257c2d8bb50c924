package entity

// Roles recognized by the authorization policy.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
)
