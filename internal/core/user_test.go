package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanManage(t *testing.T) {
	cases := []struct {
		name    string
		role    Role
		actorID string
		ownerID string
		want    bool
	}{
		{"admin manages anyone", RoleAdmin, "u1", "u2", true},
		{"admin manages with empty actor", RoleAdmin, "", "u2", true},
		{"merchant manages own resource", RoleMerchant, "u1", "u1", true},
		{"merchant cannot manage others", RoleMerchant, "u1", "u2", false},
		{"editor cannot manage others", RoleEditor, "u1", "u2", false},
		{"empty actor never matches", RoleMerchant, "", "", false},
		{"customer manages own resource", RoleCustomer, "u3", "u3", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.role.CanManage(tc.actorID, tc.ownerID))
		})
	}
}
