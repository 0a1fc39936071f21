// Copyright (c) 2026 Campus. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/ozgekara/campus/internal/platform/apperr"
	"github.com/ozgekara/campus/internal/platform/ctxutil"
	"github.com/ozgekara/campus/internal/platform/respond"
	"github.com/ozgekara/campus/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenService]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous; protected routes are then
//     rejected by [RequireRole].
//  3. If malformed, abort with HTTP 401.
//  4. If present, verify the token; failure (expired or tampered, never
//     distinguished) aborts with HTTP 401.
//  5. Inject the decoded [*sec.AuthClaims] into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("authentication token missing or invalid"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("authorization token invalid"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose identity's role is not in the allowed set.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It never inspects
// the token itself — it trusts the identity already attached to the context.
//
// # Flow
//  1. If no identity is attached, abort with HTTP 401 (missing token).
//  2. If the identity's role is not a member of the allowed set, abort with
//     HTTP 403. An identity with no role claim matches no set and is always
//     denied.
func RequireRole(roles ...sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetIdentity(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("authentication token missing or invalid"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !sec.Role(claims.Role).In(roles...) {
				respond.Error(writer, request, apperr.Forbidden("not authorized for this action"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
