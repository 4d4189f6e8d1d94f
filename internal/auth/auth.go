// Package auth decides who may run administrative operations.
package auth

// Config configures the admin authorizer
type Config struct {
	// Enabled turns the admin tools on; when false nobody is an admin
	Enabled  bool
	AdminIDs []int64
}

// AdminAuthorizer admits a fixed set of user ids
type AdminAuthorizer struct {
	enabled bool
	admins  map[int64]struct{}
}

// NewAdminAuthorizer caches the admin set once
func NewAdminAuthorizer(cfg *Config) *AdminAuthorizer {
	a := &AdminAuthorizer{admins: make(map[int64]struct{})}
	if cfg == nil {
		return a
	}

	a.enabled = cfg.Enabled
	for _, id := range cfg.AdminIDs {
		a.admins[id] = struct{}{}
	}
	return a
}

// IsAdmin reports whether userID may reload and validate content
func (a *AdminAuthorizer) IsAdmin(userID int64) bool {
	if !a.enabled {
		return false
	}
	_, ok := a.admins[userID]
	return ok
}
