package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dbversion/dbversion/internal/log"
	"github.com/dbversion/dbversion/internal/util/httputil"
	"github.com/google/uuid"
)

func notFoundHandler(w http.ResponseWriter, r *http.Request) error {
	return httputil.NewHTTPError(
		http.StatusNotFound, fmt.Errorf("no route for %s", r.URL.Path),
	)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) error {
	return httputil.NewHTTPError(
		http.StatusMethodNotAllowed,
		fmt.Errorf("method %s not allowed for %s", r.Method, r.URL.Path),
	)
}

func (s *Server) errorHandler(
	w http.ResponseWriter, r *http.Request, err error,
) {
	ip := httputil.ReadUserIP(r)
	errorURL := r.URL.String()
	errorId := uuid.NewString()

	var httpErr httputil.HTTPError
	if !errors.As(err, &httpErr) {
		s.Logger.ErrorNs(
			log.NsServer, "unknown error while handling request", log.KV{
				"id":    errorId,
				"error": err.Error(),
				"url":   errorURL,
				"ip":    ip,
			},
		)
		_ = httputil.WriteString(
			w, http.StatusInternalServerError, "Internal Server Error - "+errorId,
		)
		return
	}

	safeMessage := httpErr.SafeMessage
	if safeMessage == "" {
		safeMessage = http.StatusText(httpErr.HTTPStatus)
	}

	kv := log.KV{
		"id":      errorId,
		"status":  httpErr.HTTPStatus,
		"error":   httpErr.Error(),
		"message": safeMessage,
		"url":     errorURL,
		"ip":      ip,
	}
	if httpErr.HTTPStatus >= http.StatusInternalServerError {
		s.Logger.ErrorNs(log.NsServer, "error while handling request", kv)
	} else {
		s.Logger.DebugNs(log.NsServer, "request rejected", kv)
	}

	_ = httputil.WriteString(w, httpErr.HTTPStatus, safeMessage)
}
