package http

import (
	"net/http"

	"gitgauge/internal/platform/net/http/bind"
)

// JSONHandler binds the request body into T through the validator and hands
// it to fn, wrapping the result or error in the envelope
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
