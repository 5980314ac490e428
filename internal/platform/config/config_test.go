package config

import (
	"testing"
	"time"
)

func TestPrefixComposesKeys(t *testing.T) {
	root := New()
	svc := root.Prefix("GITGAUGE_")
	if got := svc.key("HTTP_ADDR"); got != "GITGAUGE_HTTP_ADDR" {
		t.Fatalf("key() = %q, want %q", got, "GITGAUGE_HTTP_ADDR")
	}

	// prefixes nest
	gh := svc.Prefix("GITHUB_")
	if got := gh.key("TOKEN"); got != "GITGAUGE_GITHUB_TOKEN" {
		t.Fatalf("nested key() = %q, want %q", got, "GITGAUGE_GITHUB_TOKEN")
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("GITGAUGE_")

	if got := c.MayString("HTTP_ADDR", ":8000"); got != ":8000" {
		t.Fatalf("missing key should give default, got %q", got)
	}

	t.Setenv("GITGAUGE_HTTP_ADDR", " :9090 ")
	if got := c.MayString("HTTP_ADDR", ":8000"); got != ":9090" {
		t.Fatalf("expected trimmed value :9090, got %q", got)
	}

	t.Setenv("GITGAUGE_GITHUB_TOKEN", "   ")
	if got := c.MayString("GITHUB_TOKEN", ""); got != "" {
		t.Fatalf("blank value should give default, got %q", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("GITGAUGE_")

	if !c.MayBool("SWAGGER", true) {
		t.Fatal("missing key should give default true")
	}

	t.Setenv("GITGAUGE_SWAGGER", "false")
	if c.MayBool("SWAGGER", true) {
		t.Fatal("explicit false should win over the default")
	}

	t.Setenv("GITGAUGE_PROFILER", "enabled")
	if c.MayBool("PROFILER", false) {
		t.Fatal("unparseable value should fall back to default")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("GITGAUGE_")

	if got := c.MayDuration("GITHUB_TIMEOUT", 30*time.Second); got != 30*time.Second {
		t.Fatalf("missing key should give default, got %v", got)
	}

	t.Setenv("GITGAUGE_GITHUB_TIMEOUT", "150ms")
	if got := c.MayDuration("GITHUB_TIMEOUT", time.Second); got != 150*time.Millisecond {
		t.Fatalf("expected 150ms, got %v", got)
	}

	t.Setenv("GITGAUGE_GITHUB_TIMEOUT", "soonish")
	if got := c.MayDuration("GITHUB_TIMEOUT", time.Minute); got != time.Minute {
		t.Fatalf("unparseable value should fall back to default, got %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("GITGAUGE_")

	def := []string{"http://localhost:5173"}
	if got := c.MayCSV("HTTP_CORS_ORIGINS", def); len(got) != 1 || got[0] != def[0] {
		t.Fatalf("missing key should give default, got %#v", got)
	}

	t.Setenv("GITGAUGE_HTTP_CORS_ORIGINS", " https://gitgauge.dev, https://staging.gitgauge.dev , ,")
	got := c.MayCSV("HTTP_CORS_ORIGINS", nil)
	want := []string{"https://gitgauge.dev", "https://staging.gitgauge.dev"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV len = %d, want %d (%#v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMayCSVAllBlankFallsBack(t *testing.T) {
	c := New().Prefix("GITGAUGE_")
	t.Setenv("GITGAUGE_HTTP_CORS_ORIGINS", " , ,  ,")
	got := c.MayCSV("HTTP_CORS_ORIGINS", []string{"fallback"})
	if len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("all-blank CSV should give default, got %#v", got)
	}
}
