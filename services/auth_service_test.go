package services

import (
	"context"
	"testing"

	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/lin-avraham/Pizza2/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRoles(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), utils.NewSessionTokens("test-secret"))

	tests := []struct {
		username string
		password string
		role     models.Role
		home     string
	}{
		{"admin", "adminpass", models.RoleAdmin, "/admin"},
		{"operator", "operatorpass", models.RoleOperator, "/operator"},
		{"customer", "customerpass", models.RoleCustomer, "/customer"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			principal, token, err := svc.Login(context.Background(), tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.role, principal.Role)
			assert.Equal(t, tt.home, principal.Role.HomePath())
			assert.NotEmpty(t, token)

			resolved, err := svc.Resolve(context.Background(), token)
			require.NoError(t, err)
			assert.Equal(t, principal.UserID, resolved.UserID)
			assert.Equal(t, tt.role, resolved.Role)
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), utils.NewSessionTokens("test-secret"))

	for _, creds := range [][2]string{
		{"admin", "wrong"},
		{"nobody", "adminpass"},
		{"", ""},
	} {
		principal, token, err := svc.Login(context.Background(), creds[0], creds[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, principal)
		assert.Empty(t, token)
	}
}

func TestResolveRejectsRevokedAndForeignTokens(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), utils.NewSessionTokens("test-secret"))

	_, token, err := svc.Login(context.Background(), "customer", "customerpass")
	require.NoError(t, err)

	svc.Logout(token)
	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	other := NewAuthService(repository.NewUserRepository(db), utils.NewSessionTokens("other-secret"))
	_, foreign, err := other.Login(context.Background(), "customer", "customerpass")
	require.NoError(t, err)
	_, err = svc.Resolve(context.Background(), foreign)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
