// Copyright (c) 2026 Campus. All rights reserved.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozgekara/campus/internal/platform/ctxutil"
	"github.com/ozgekara/campus/internal/platform/middleware"
	"github.com/ozgekara/campus/internal/platform/sec"
)

// fakeVerifier resolves a fixed token string to fixed claims.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (f *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == f.validToken {
		return f.claims, nil
	}
	return nil, errors.New("bad token")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate covers the header parsing and verification outcomes.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &fakeVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{UserID: "user-123", Role: "student"},
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no_header_is_anonymous", "", http.StatusOK},
		{"malformed_header", "just-a-token", http.StatusUnauthorized},
		{"wrong_scheme", "Basic abc123", http.StatusUnauthorized},
		{"invalid_token", "Bearer bad-token", http.StatusUnauthorized},
		{"valid_token", "Bearer good-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(verifier)(okHandler())

			request := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestAuthenticate_InjectsIdentity checks that valid claims reach the next handler.
*/
func TestAuthenticate_InjectsIdentity(t *testing.T) {
	verifier := &fakeVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{UserID: "user-123", Role: "admin"},
	}

	var captured *sec.AuthClaims
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured = ctxutil.GetIdentity(request.Context())
	})

	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Authorization", "Bearer good-token")

	middleware.Authenticate(verifier)(next).ServeHTTP(httptest.NewRecorder(), request)

	assert.NotNil(t, captured)
	assert.Equal(t, "user-123", captured.UserID)
}

/*
TestRequireRole covers the authorization matrix: missing identity, wrong
role, missing role claim, and the allowed path.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		allowed    []sec.Role
		wantStatus int
	}{
		{"no_identity", nil, []sec.Role{sec.RoleAdmin}, http.StatusUnauthorized},
		{"wrong_role", &sec.AuthClaims{UserID: "u1", Role: "student"}, []sec.Role{sec.RoleAdmin}, http.StatusForbidden},
		{"missing_role_claim", &sec.AuthClaims{UserID: "u1"}, []sec.Role{sec.RoleAdmin, sec.RoleStudent}, http.StatusForbidden},
		{"allowed_role", &sec.AuthClaims{UserID: "u1", Role: "admin"}, []sec.Role{sec.RoleAdmin}, http.StatusOK},
		{"role_in_wider_set", &sec.AuthClaims{UserID: "u1", Role: "student"}, []sec.Role{sec.RoleAdmin, sec.RoleStudent}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.RequireRole(tt.allowed...)(okHandler())

			request := httptest.NewRequest("GET", "/", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithIdentity(request.Context(), tt.claims))
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
