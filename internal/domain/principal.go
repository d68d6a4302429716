package domain

// Principal is the authenticated caller, built by the auth middleware from
// the access token and threaded explicitly into every guarded service call.
type Principal struct {
	Username string
	Roles    []string
	UserID   int64
}

func (p Principal) IsAdmin() bool {
	for _, code := range p.Roles {
		if code == RoleAdmin {
			return true
		}
	}
	return false
}

// IsAdminOrSelf reports whether the caller may act on the target user:
// administrators may act on anyone, other users only on themselves.
func (p Principal) IsAdminOrSelf(targetUserID int64) bool {
	return p.IsAdmin() || p.UserID == targetUserID
}
