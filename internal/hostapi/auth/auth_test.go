package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	coreauth "github.com/ironclad-games/dominion/internal/auth"
)

func TestIssueTokenDefaultsToAllScopes(t *testing.T) {
	h := NewHandler(coreauth.NewJWTManager("test-secret"))

	body, _ := json.Marshal(map[string]string{"service_id": "svc-1"})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.IssueToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var pair struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &pair); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := h.jwtMgr.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !claims.HasScope(ScopeWorldsRead) || !claims.HasScope(ScopeWorldsWrite) {
		t.Errorf("expected default token to carry both scopes, got %v", claims.Scopes)
	}
}

func TestIssueTokenRestrictedScope(t *testing.T) {
	h := NewHandler(coreauth.NewJWTManager("test-secret"))

	body, _ := json.Marshal(map[string]any{"service_id": "svc-readonly", "scopes": []string{ScopeWorldsRead}})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.IssueToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var pair struct {
		AccessToken string `json:"access_token"`
	}
	json.Unmarshal(rec.Body.Bytes(), &pair)
	claims, _ := h.jwtMgr.ValidateToken(pair.AccessToken)
	if claims.HasScope(ScopeWorldsWrite) {
		t.Error("expected a read-only token to not carry worlds:write")
	}
}

func TestIssueTokenRejectsUnknownScope(t *testing.T) {
	h := NewHandler(coreauth.NewJWTManager("test-secret"))

	body, _ := json.Marshal(map[string]any{"service_id": "svc-1", "scopes": []string{"worlds:admin"}})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.IssueToken(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown scope, got %d", rec.Code)
	}
}

func TestIssueTokenRequiresServiceID(t *testing.T) {
	h := NewHandler(coreauth.NewJWTManager("test-secret"))

	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.IssueToken(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
