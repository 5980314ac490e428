package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"gitgauge/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware slice for the versioned API scope.
// corsOrigins feeds the CORS allowlist; empty falls back to the middleware
// default
func CommonStack(corsOrigins ...string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation first so everything downstream logs a request id
		middleware.RequestID(),
		middleware.RealIP(),

		middleware.RecoverJSON,

		middleware.NoCache(),

		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 2 * time.Second}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: corsOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
