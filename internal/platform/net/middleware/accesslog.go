package middleware

import (
	"net/http"
	"time"

	"gitgauge/internal/platform/logger"
)

// AccessLogOptions configures the access log line per request
type AccessLogOptions struct {
	// Slow logs requests taking >= Slow at warn instead of info, 0 disables
	Slow time.Duration
}

// tapWriter records the status and byte count that went down the wire
type tapWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (t *tapWriter) WriteHeader(code int) {
	t.status = code
	t.ResponseWriter.WriteHeader(code)
}

func (t *tapWriter) Write(b []byte) (int, error) {
	n, err := t.ResponseWriter.Write(b)
	if n > 0 {
		t.bytes += n
	}
	return n, err
}

// AccessLogZerolog emits one structured line per request with method, path,
// status, elapsed time and bytes written, using the request scoped logger
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tap := &tapWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(tap, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", tap.status).
				Int("bytes", tap.bytes).
				Dur("elapsed", elapsed).
				Msg("request served")
		})
	}
}
