package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdmin_AllowsAdminKey_BlocksPublicKey(t *testing.T) {
	keys := Keys{
		Public: []string{"pub_key"},
		Admin:  []string{"adm_key"},
	}

	// Admin key -> 200
	reqAdm := httptest.NewRequest(http.MethodGet, "/admin", nil)
	reqAdm.Header.Set("X-API-Key", "adm_key")
	recAdm := httptest.NewRecorder()
	RequireAdmin(keys)(okHandler()).ServeHTTP(recAdm, reqAdm)
	if recAdm.Code != http.StatusOK {
		t.Fatalf("admin key should pass; got %d", recAdm.Code)
	}

	// Public key -> 403
	reqPub := httptest.NewRequest(http.MethodGet, "/admin", nil)
	reqPub.Header.Set("X-API-Key", "pub_key")
	recPub := httptest.NewRecorder()
	RequireAdmin(keys)(okHandler()).ServeHTTP(recPub, reqPub)
	if recPub.Code != http.StatusForbidden {
		t.Fatalf("public key should be forbidden; got %d", recPub.Code)
	}

	// Missing key -> 403
	reqNone := httptest.NewRequest(http.MethodGet, "/admin", nil)
	recNone := httptest.NewRecorder()
	RequireAdmin(keys)(okHandler()).ServeHTTP(recNone, reqNone)
	if recNone.Code != http.StatusUnauthorized && recNone.Code != http.StatusForbidden {
		t.Fatalf("missing key should be 401/403; got %d", recNone.Code)
	}
}

func TestRequireAny_BearerHeader(t *testing.T) {
	keys := Keys{Public: []string{"pub_key"}}

	req := httptest.NewRequest(http.MethodGet, "/api/results", nil)
	req.Header.Set("Authorization", "Bearer pub_key")
	rec := httptest.NewRecorder()
	RequireAny(keys)(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("bearer public key should pass; got %d", rec.Code)
	}

	reqBad := httptest.NewRequest(http.MethodGet, "/api/results", nil)
	reqBad.Header.Set("Authorization", "Bearer wrong")
	recBad := httptest.NewRecorder()
	RequireAny(keys)(okHandler()).ServeHTTP(recBad, reqBad)
	if recBad.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key should be 401; got %d", recBad.Code)
	}
}

func TestRequireAny_NoKeysConfiguredAllowsAll(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/results", nil)
	rec := httptest.NewRecorder()
	RequireAny(Keys{})(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("no configured keys should allow all; got %d", rec.Code)
	}
}

func TestRequireAdmin_AcceptsHashedKey(t *testing.T) {
	hashed, err := GenerateKeyHash("adm_secret")
	if err != nil {
		t.Fatalf("GenerateKeyHash: %v", err)
	}
	keys := Keys{Admin: []string{hashed}}

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("X-API-Key", "adm_secret")
	rec := httptest.NewRecorder()
	RequireAdmin(keys)(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("hashed admin key should pass; got %d", rec.Code)
	}

	reqBad := httptest.NewRequest(http.MethodPost, "/admin", nil)
	reqBad.Header.Set("X-API-Key", "guess")
	recBad := httptest.NewRecorder()
	RequireAdmin(keys)(okHandler()).ServeHTTP(recBad, reqBad)
	if recBad.Code != http.StatusForbidden {
		t.Fatalf("wrong key against hash should be 403; got %d", recBad.Code)
	}
}
