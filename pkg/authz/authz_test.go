package authz

import "testing"

func TestAllowed(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		perms []string
		code  string
		want  bool
	}{
		{"admin bypasses missing permission", []string{AdminRole}, nil, PermVoid, true},
		{"admin among other roles", []string{"WAITER", AdminRole}, nil, PermDiscount, true},
		{"permission granted", []string{"MANAGER"}, []string{PermDiscount, PermVoid}, PermVoid, true},
		{"permission missing", []string{"CASHIER"}, []string{PermReprint}, PermVoid, false},
		{"no roles no perms", nil, nil, PermReprint, false},
		{"role code is not a permission", []string{"MANAGER"}, nil, "MANAGER", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.roles, tt.perms, tt.code); got != tt.want {
				t.Errorf("Allowed(%v, %v, %q) = %v, want %v", tt.roles, tt.perms, tt.code, got, tt.want)
			}
		})
	}
}

func TestAllPermissionsSeeded(t *testing.T) {
	all := AllPermissions()
	seen := make(map[string]bool, len(all))
	for _, code := range all {
		if seen[code] {
			t.Errorf("duplicate permission code %q", code)
		}
		seen[code] = true
	}
	for _, code := range []string{PermDiscount, PermVoid, PermReprint, PermSettingsEdit} {
		if !seen[code] {
			t.Errorf("permission %q missing from seed list", code)
		}
	}
}
