package modkit

import (
	"net/http"
	"testing"

	"gitgauge/internal/modkit/httpkit"
)

func TestWithName(t *testing.T) {
	t.Parallel()
	var c buildCfg
	WithName("profiles")(&c)
	if c.name != "profiles" {
		t.Fatalf("expected name=profiles got=%q", c.name)
	}
}

func TestWithPrefix(t *testing.T) {
	t.Parallel()
	var c buildCfg
	WithPrefix("/profiles")(&c)
	if c.prefix != "/profiles" {
		t.Fatalf("expected prefix=/profiles got=%q", c.prefix)
	}
}

func TestWithMiddlewares_AccumulatesInOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	tag := func(s string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, s)
				if next != nil {
					next.ServeHTTP(w, r)
				}
			})
		}
	}

	var c buildCfg
	WithMiddlewares(tag("throttle"), tag("log"))(&c)
	WithMiddlewares(tag("cache"))(&c)

	if len(c.mw) != 3 {
		t.Fatalf("expected 3 middlewares got=%d", len(c.mw))
	}

	// chain so the first added runs first
	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := len(c.mw) - 1; i >= 0; i-- {
		h = c.mw[i](h)
	}
	h.ServeHTTP(nil, nil)

	want := []string{"throttle", "log", "cache"}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("middleware order mismatch at %d: got=%q want=%q", i, calls[i], want[i])
		}
	}
}

func TestWithPorts_StoresTheConcreteValue(t *testing.T) {
	t.Parallel()

	type collectorPorts struct {
		Kind string
	}

	var c buildCfg
	WithPorts(collectorPorts{Kind: "profile"})(&c)

	got, ok := c.ports.(collectorPorts)
	if !ok || got.Kind != "profile" {
		t.Fatalf("ports not stored as concrete type: %#v", c.ports)
	}
}

func TestWithRegister_SetsHook(t *testing.T) {
	t.Parallel()

	called := false
	var c buildCfg
	WithRegister(func(httpkit.Router) { called = true })(&c)

	if c.register == nil {
		t.Fatal("expected register hook to be set")
	}
	c.register(nil)
	if !called {
		t.Fatal("register hook did not run")
	}
}
