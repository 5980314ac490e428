package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "gitgauge/internal/platform/errors"
	pnet "gitgauge/internal/platform/net"
	phttp "gitgauge/internal/platform/net/http"
)

// newRouter returns the router seam plus the mux to serve requests against
func newRouter() (Router, http.Handler) {
	m := chi.NewRouter()
	return phttp.AdaptChi(m), m
}

func decodeWire(t *testing.T, rec *httptest.ResponseRecorder) pnet.Wire {
	t.Helper()
	var w pnet.Wire
	if err := json.NewDecoder(rec.Body).Decode(&w); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return w
}

func TestCall_WrapsPlainValue(t *testing.T) {
	r, mux := newRouter()
	r.Get("/profiles/{username}/analysis", Call(func(req *http.Request) (any, error) {
		return map[string]any{"username": Param(req, "username")}, nil
	}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/octocat/analysis", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	w := decodeWire(t, rec)
	if w.StatusCode != http.StatusOK || w.Error != "" {
		t.Fatalf("envelope: %+v", w)
	}
	data, ok := w.Data.(map[string]any)
	if !ok || data["username"] != "octocat" {
		t.Fatalf("data: %+v", w.Data)
	}
}

func TestCall_ErrorPicksItsStatus(t *testing.T) {
	r, mux := newRouter()
	r.Get("/profiles/{username}/analysis", Call(func(*http.Request) (any, error) {
		return nil, perr.Newf(perr.ErrorCodeNotFound, "user or repository not found")
	}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/ghost/analysis", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	w := decodeWire(t, rec)
	if w.Error != "user or repository not found" || w.Code == 0 {
		t.Fatalf("envelope: %+v", w)
	}
}

func TestParam_UnroutedRequestIsEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/loose", nil)
	if got := Param(req, "owner"); got != "" {
		t.Fatalf("Param outside a route = %q, want empty", got)
	}
}

func TestValidForgeName(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"octocat", true},
		{"hello-world", true},
		{"go_kit.v2", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a b", false},
		{"owner/repo", false},
	}
	for _, tc := range cases {
		if got := ValidForgeName(tc.in); got != tc.ok {
			t.Fatalf("ValidForgeName(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}
