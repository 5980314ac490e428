package http

import "net/http"

// Handler is the handler type all routes register with
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount against. Keeping it an interface
// leaves the mux choice to the server and the fakes to the tests
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)
	Head(path string, h Handler)
	Options(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
