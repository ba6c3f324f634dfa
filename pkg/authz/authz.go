package authz

// Permission codes gating elevated POS actions.
const (
	PermDiscount       = "DISCOUNT"
	PermVoid           = "VOID"
	PermReprint        = "REPRINT"
	PermSettingsEdit   = "SETTINGS_EDIT"
	PermManagerApprove = "MANAGER_APPROVE"
	PermShiftClose     = "SHIFT_CLOSE"
)

// AdminRole short-circuits fine-grained permission checks.
const AdminRole = "ADMIN"

// AllPermissions lists every seeded permission code.
func AllPermissions() []string {
	return []string{
		PermDiscount,
		PermVoid,
		PermReprint,
		PermSettingsEdit,
		PermManagerApprove,
		PermShiftClose,
	}
}

// IsAdmin reports whether the role set carries the admin role.
func IsAdmin(roles []string) bool {
	for _, r := range roles {
		if r == AdminRole {
			return true
		}
	}
	return false
}

// HasPermission reports whether the permission code is present.
func HasPermission(perms []string, code string) bool {
	for _, p := range perms {
		if p == code {
			return true
		}
	}
	return false
}

// Allowed is the single capability check: the admin shortcut is evaluated
// first, then the fine-grained permission lookup. Call sites never test the
// admin role themselves.
func Allowed(roles, perms []string, code string) bool {
	if IsAdmin(roles) {
		return true
	}
	return HasPermission(perms, code)
}
