// @title         GitGauge API
// @version       0.1.0
// @description   Repository health scoring, README analysis, and portfolio enhancement

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gitgauge/internal/adapters/forge/github"
	"gitgauge/internal/platform/config"
	"gitgauge/internal/platform/logger"
	phttp "gitgauge/internal/platform/net/http"

	"gitgauge/internal/services/api"
)

func main() {
	// local development reads .env; a missing file is fine
	_ = godotenv.Load()

	// service-scoped config (GITGAUGE_*)
	root := config.New()
	cfg := root.Prefix("GITGAUGE_")

	// bring up logging early
	l := logger.Get()

	// GitHub-backed forge client; tokenless works with a small quota
	fc, err := github.New(github.Options{
		Token:   cfg.MayString("GITHUB_TOKEN", ""),
		BaseURL: cfg.MayString("GITHUB_BASE_URL", ""),
		Timeout: cfg.MayDuration("GITHUB_TIMEOUT", 0),
	})
	if err != nil {
		l.Panic().Err(err).Msg("github client init failed")
	}

	// http server (reads GITGAUGE_HTTP_ADDR)
	srv := phttp.NewServer(cfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         cfg,
			Logger:         l,
			Forge:          fc,
			EnableSwagger:  cfg.MayBool("SWAGGER", true),
			EnableProfiler: cfg.MayBool("PROFILER", true),
		},
	)

	// serve until interrupted, then drain
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
