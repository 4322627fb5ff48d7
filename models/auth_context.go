package models

// AuthContext is the caller identity threaded through request handling.
// A nil *AuthContext means an unauthenticated caller on optional-auth
// routes.
type AuthContext struct {
	UserID        uint     `json:"user_id"`
	Name          string   `json:"name"`
	Role          UserRole `json:"role"`
	VerifiedEmail bool     `json:"verified_email"`
	VerifiedPhone bool     `json:"verified_phone"`
}

func (a *AuthContext) IsModerator() bool {
	return a != nil && RoleAtLeast(a.Role, RoleModerator)
}

func (a *AuthContext) IsAdmin() bool {
	return a != nil && RoleAtLeast(a.Role, RoleAdmin)
}

// Owns reports whether the caller is the given creator.
func (a *AuthContext) Owns(creatorID uint) bool {
	return a != nil && a.UserID == creatorID
}
