package entity

import "testing"

func TestPermissionCodesDeduplicates(t *testing.T) {
	u := &User{
		Roles: []Role{
			{Code: "MANAGER", Permissions: []Permission{{Code: "DISCOUNT"}, {Code: "VOID"}}},
			{Code: "CASHIER", Permissions: []Permission{{Code: "VOID"}, {Code: "REPRINT"}}},
		},
	}

	codes := u.PermissionCodes()
	if len(codes) != 3 {
		t.Fatalf("got %d codes %v, want 3 unique", len(codes), codes)
	}
	seen := map[string]bool{}
	for _, c := range codes {
		seen[c] = true
	}
	for _, want := range []string{"DISCOUNT", "VOID", "REPRINT"} {
		if !seen[want] {
			t.Errorf("missing %s", want)
		}
	}

	roles := u.RoleCodes()
	if len(roles) != 2 || roles[0] != "MANAGER" || roles[1] != "CASHIER" {
		t.Errorf("role codes = %v", roles)
	}
}
