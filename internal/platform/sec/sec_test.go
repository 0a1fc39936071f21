// Copyright (c) 2026 Campus. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekara/campus/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that a generated token verifies back to
the original claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret-at-least-32-bytes-long", "campus")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-123", "student", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "campus", claims.Issuer)
}

/*
TestTokenService_WrongSecret ensures tokens signed with one secret never
verify against another.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService("secret-one-abcdefghijklmnopqrstuv", "campus")
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-two-abcdefghijklmnopqrstuv", "campus")
	require.NoError(t, err)

	token, err := signer.GenerateAccessToken("user-123", "admin", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Expired ensures expired tokens are rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret-at-least-32-bytes-long", "campus")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-123", "student", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_EmptySecret ensures construction fails without a secret.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "campus")
	assert.Error(t, err)
}

/*
TestPasswordHashing verifies the bcrypt round trip and mismatch behavior.
*/
func TestPasswordHashing(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
}

/*
TestRole_In covers the role set membership rules, including the deny-all
behavior for an empty role claim.
*/
func TestRole_In(t *testing.T) {
	tests := []struct {
		name    string
		role    sec.Role
		allowed []sec.Role
		want    bool
	}{
		{"admin_in_admin_set", sec.RoleAdmin, []sec.Role{sec.RoleAdmin}, true},
		{"student_not_in_admin_set", sec.RoleStudent, []sec.Role{sec.RoleAdmin}, false},
		{"student_in_both", sec.RoleStudent, []sec.Role{sec.RoleAdmin, sec.RoleStudent}, true},
		{"empty_role_never_matches", sec.Role(""), []sec.Role{sec.RoleAdmin, sec.RoleStudent}, false},
		{"unknown_role_never_matches", sec.Role("superuser"), []sec.Role{sec.RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.In(tt.allowed...))
		})
	}
}
