package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dbversion/dbversion/internal/log"
	"github.com/dbversion/dbversion/internal/reporter"
	"github.com/dbversion/dbversion/internal/util/httputil"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// VersionReporter reports the version of the database behind the server.
type VersionReporter interface {
	Report(ctx context.Context) reporter.Result
}

// Config represents the configuration for a dbversiond server.
type Config struct {
	// Logger is the shared dbversion logger.
	Logger log.Logger
	// Reporter answers the requests to the root path.
	Reporter VersionReporter
	// ListenHost is the host to listen on.
	ListenHost string
	// ListenPort is the port to listen on.
	ListenPort string
	// Debug logs every request and the stack of recovered panics.
	Debug bool
}

// Server is the HTTP server of dbversiond.
type Server struct {
	Config
	server *http.Server
}

// NewServer creates a new dbversiond server.
func NewServer(config Config) (*Server, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.Reporter == nil {
		return nil, errors.New("version reporter is required")
	}
	if config.ListenHost == "" {
		config.ListenHost = "0.0.0.0"
	}
	if config.ListenPort == "" {
		config.ListenPort = "5000"
	}

	s := &Server{Config: config}
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.ListenHost, config.ListenPort),
		Handler: s.Handler(),
	}
	return s, nil
}

// Handler returns the root handler with routing, request logging and panic
// recovery in place.
func (s *Server) Handler() http.Handler {
	hf := httputil.CreateHandlerFuncBuilder(s.errorHandler)

	r := mux.NewRouter()
	r.HandleFunc("/", hf(s.indexHandler, httputil.NoCache)).
		Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/version", hf(s.versionHandler)).
		Methods(http.MethodGet, http.MethodHead)
	r.NotFoundHandler = hf(notFoundHandler)
	r.MethodNotAllowedHandler = hf(methodNotAllowedHandler)

	var h http.Handler = r
	h = handlers.CustomLoggingHandler(io.Discard, h, s.logRequest)
	h = handlers.RecoveryHandler(
		handlers.PrintRecoveryStack(s.Debug),
		handlers.RecoveryLogger(recoveryLogger{logger: s.Logger}),
	)(h)
	return h
}

// logRequest writes an access log line at debug level.
func (s *Server) logRequest(_ io.Writer, params handlers.LogFormatterParams) {
	s.Logger.DebugNs(log.NsServer, "request handled", log.KV{
		"method":   params.Request.Method,
		"url":      params.URL.String(),
		"status":   params.StatusCode,
		"size":     params.Size,
		"ip":       httputil.ReadUserIP(params.Request),
		"duration": time.Since(params.TimeStamp).String(),
	})
}

// recoveryLogger routes the panics recovered by gorilla/handlers to the
// JSON logger.
type recoveryLogger struct {
	logger log.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.logger.ErrorNs(log.NsServer, "recovered from panic", log.KV{
		"panic": fmt.Sprint(v...),
	})
}

// Start starts the server and blocks until it is stopped.
func (s *Server) Start() error {
	localAddr := fmt.Sprintf("http://%s:%s", "localhost", s.ListenPort)
	s.Logger.InfoNs(log.NsServer, "server started at "+localAddr, log.KV{
		"listen_host": s.ListenHost,
		"listen_port": s.ListenPort,
		"debug":       s.Debug,
	})

	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop closes the listener and every open connection right away.
func (s *Server) Stop() error {
	return s.server.Close()
}
