package httputil

import "net/http"

// HandlerFuncErr behaves like http.HandlerFunc but returns an error.
type HandlerFuncErr func(w http.ResponseWriter, r *http.Request) error

// Middleware wraps a HandlerFuncErr and returns a new one.
type Middleware func(next HandlerFuncErr) HandlerFuncErr

// ErrorHandler handles errors returned by handlers or middlewares.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// HandlerFuncBuilder turns a HandlerFuncErr and its middlewares into a
// plain http.HandlerFunc.
type HandlerFuncBuilder func(handler HandlerFuncErr, middlewares ...Middleware) http.HandlerFunc

// CreateHandlerFuncBuilder returns a function that creates an http.HandlerFunc
// by chaining middlewares and a final handler, using a centralized error handler.
//
// Middlewares run in the order they are given.
func CreateHandlerFuncBuilder(errorHandler ErrorHandler) HandlerFuncBuilder {
	return func(handler HandlerFuncErr, middlewares ...Middleware) http.HandlerFunc {
		chained := handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			chained = middlewares[i](chained)
		}

		return func(w http.ResponseWriter, r *http.Request) {
			if err := chained(w, r); err != nil {
				errorHandler(w, r, err)
			}
		}
	}
}

// NoCache is a middleware that tells clients and proxies not to store the
// response.
func NoCache(next HandlerFuncErr) HandlerFuncErr {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		return next(w, r)
	}
}
