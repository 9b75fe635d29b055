// Package auth adapts internal/auth's JWT machinery to the reference host's
// service-to-service authentication model: there is no login flow; a calling
// host integration asks for a bearer token by naming its service id. Tokens
// are signed with the server's JWT secret, which callers never present.
package auth

import (
	"encoding/json"
	"net/http"

	coreauth "github.com/ironclad-games/dominion/internal/auth"
)

// Scope names gate the two classes of world operation the reference API
// exposes: mutating a world's graph/tick state, and reading its snapshot,
// logs, or event stream.
const (
	ScopeWorldsRead  = "worlds:read"
	ScopeWorldsWrite = "worlds:write"
)

var allScopes = []string{ScopeWorldsRead, ScopeWorldsWrite}

// Handler issues and gates bearer tokens for the worldserver reference API.
type Handler struct {
	jwtMgr *coreauth.JWTManager
}

// NewHandler constructs a Handler backed by the given JWT manager.
func NewHandler(jwtMgr *coreauth.JWTManager) *Handler {
	return &Handler{jwtMgr: jwtMgr}
}

// tokenRequest names the calling service and the scopes it wants. Worldserver
// has no user accounts and IssueToken checks no credential, so any caller
// that reaches the route may request a token under any service id it asserts
// for itself — but the scopes
// actually granted still gate which routes that token unlocks. An empty or
// omitted Scopes list is granted every known scope, matching the prior
// all-or-nothing behavior for callers that don't care to restrict themselves.
type tokenRequest struct {
	ServiceID string   `json:"service_id"`
	Scopes    []string `json:"scopes"`
}

// IssueToken exchanges a service id (and optional scopes) for an
// access/refresh token pair.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ServiceID == "" {
		http.Error(w, `{"error":"service_id is required"}`, http.StatusBadRequest)
		return
	}
	scopes := req.Scopes
	if len(scopes) == 0 {
		scopes = allScopes
	} else if !validScopes(scopes) {
		http.Error(w, `{"error":"unknown scope requested"}`, http.StatusBadRequest)
		return
	}
	pair, err := h.jwtMgr.GenerateTokenPair(req.ServiceID, scopes)
	if err != nil {
		http.Error(w, `{"error":"token generation failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pair)
}

func validScopes(scopes []string) bool {
	for _, s := range scopes {
		if s != ScopeWorldsRead && s != ScopeWorldsWrite {
			return false
		}
	}
	return true
}

// RequireService returns middleware gating requests behind a valid bearer
// token, identical in shape to internal/auth.Middleware — kept as its own
// entry point so worldserver's route table reads in domain terms.
func RequireService(jwtMgr *coreauth.JWTManager) func(http.Handler) http.Handler {
	return coreauth.Middleware(jwtMgr)
}

// RequireScope returns middleware 403ing requests whose token wasn't issued
// the given scope. Must sit downstream of RequireService in the chain.
func RequireScope(scope string) func(http.Handler) http.Handler {
	return coreauth.RequireScope(scope)
}

// ServiceIDFromContext re-exports internal/auth's context accessor under the
// hostapi package so handlers never need to import internal/auth directly.
func ServiceIDFromContext(r *http.Request) string {
	return coreauth.ServiceIDFromContext(r.Context())
}
