//go:build unit
// +build unit

package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
)

const testSecret = "unit-test-secret"

func testUser() *identity.User {
	return &identity.User{
		ID:          "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c06",
		TenantID:    "6f1e1d9a-7f48-4f44-9e6e-2f6a7a6b8c01",
		Name:        "Ana Admin",
		Email:       "ana@mercado.dev",
		Role:        identity.RoleAdmin,
		Permissions: identity.DefaultPermissions(identity.RoleAdmin),
		Active:      true,
	}
}

func TestIssueAndParse_RoundTrip(t *testing.T) {
	user := testUser()

	signed, expiresAt, err := Issue(testSecret, 30*time.Minute, user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := Parse(testSecret, signed)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, user.TenantID, claims.TenantID)
	require.Equal(t, user.Role, claims.Role)
	require.ElementsMatch(t, user.Permissions, claims.Permissions)
}

func TestParse_WrongSecret(t *testing.T) {
	signed, _, err := Issue(testSecret, 30*time.Minute, testUser())
	require.NoError(t, err)

	_, err = Parse("another-secret", signed)
	require.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	signed, _, err := Issue(testSecret, -time.Minute, testUser())
	require.NoError(t, err)

	_, err = Parse(testSecret, signed)
	require.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse(testSecret, "not.a.token")
	require.Error(t, err)
}

func TestClaims_HasPermission(t *testing.T) {
	claims := &Claims{Permissions: []string{identity.PermissionOrders, identity.PermissionPDV}}

	require.True(t, claims.HasPermission(identity.PermissionOrders))
	require.False(t, claims.HasPermission(identity.PermissionUsers))
}
