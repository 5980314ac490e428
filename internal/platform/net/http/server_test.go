package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitgauge/internal/platform/config"
	phttp "gitgauge/internal/platform/net/http"
)

func TestNewServer_DefaultAddr(t *testing.T) {
	srv := phttp.NewServer(config.New())
	if srv.Addr() != ":8000" {
		t.Fatalf("default addr = %q", srv.Addr())
	}
}

func TestNewServer_AddrFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":12345")
	srv := phttp.NewServer(config.New())
	if srv.Addr() != ":12345" {
		t.Fatalf("addr = %q, want :12345", srv.Addr())
	}
}

func TestServer_RouterServesMountedRoutes(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("GET /ping: %d %q", rec.Code, rec.Body.String())
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// let the listener come up before cancelling
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run after cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after context cancel")
	}
}

func TestServer_RunStopsOnShutdown(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run after Shutdown: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after Shutdown")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:abc")
	srv := phttp.NewServer(config.New())
	if err := srv.Run(context.Background()); err == nil {
		t.Fatalf("expected listen error for invalid addr")
	}
}
