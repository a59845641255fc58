package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dbversion/dbversion/internal/log"
	"github.com/dbversion/dbversion/internal/reporter"
	"github.com/dbversion/dbversion/internal/version"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReporter struct {
	result reporter.Result
	panics bool
	calls  int
}

func (f *fakeReporter) Report(ctx context.Context) reporter.Result {
	f.calls++
	if f.panics {
		panic("reporter exploded")
	}
	return f.result
}

func newTestServer(t *testing.T, rp VersionReporter, logs *bytes.Buffer) *Server {
	t.Helper()

	s, err := NewServer(Config{
		Logger:   log.NewLogger(logs, true),
		Reporter: rp,
		Debug:    true,
	})
	require.NoError(t, err)
	return s
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNewServer(t *testing.T) {
	t.Run("requires a logger", func(t *testing.T) {
		_, err := NewServer(Config{Reporter: &fakeReporter{}})
		assert.EqualError(t, err, "logger is required")
	})

	t.Run("requires a reporter", func(t *testing.T) {
		_, err := NewServer(Config{Logger: log.NewLogger(&bytes.Buffer{}, false)})
		assert.EqualError(t, err, "version reporter is required")
	})

	t.Run("defaults", func(t *testing.T) {
		s := newTestServer(t, &fakeReporter{}, &bytes.Buffer{})
		assert.Equal(t, "0.0.0.0", s.ListenHost)
		assert.Equal(t, "5000", s.ListenPort)
		assert.Equal(t, "0.0.0.0:5000", s.server.Addr)
	})
}

func TestIndex_SQLite(t *testing.T) {
	libVersion, _, _ := sqlite3.Version()
	rp := reporter.NewReporter(reporter.Config{
		DatabaseURL: ":memory:",
		Driver:      "sqlite3",
		Query:       "SELECT sqlite_version();",
	})
	s := newTestServer(t, rp, &bytes.Buffer{})

	rec := serve(s, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello from Flask! PostgreSQL version: "+libVersion, rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")
}

func TestIndex_Failures(t *testing.T) {
	tests := []struct {
		name     string
		reporter VersionReporter
	}{
		{
			name: "unreachable database",
			reporter: reporter.NewReporter(reporter.Config{
				DatabaseURL: "postgres://dbversion@127.0.0.1:1/app",
			}),
		},
		{
			name: "authentication failure",
			reporter: &fakeReporter{result: reporter.Failure(
				errors.New(`failed SASL auth: FATAL: password authentication failed for user "dbversion" (SQLSTATE 28P01)`),
			)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.reporter, &bytes.Buffer{})

			rec := serve(s, http.MethodGet, "/")
			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, "Error connecting to database: "), body)
			assert.Greater(t, len(body), len("Error connecting to database: "))
		})
	}
}

func TestIndex_OneReportPerRequest(t *testing.T) {
	fake := &fakeReporter{result: reporter.Success("PostgreSQL 16.2")}
	s := newTestServer(t, fake, &bytes.Buffer{})

	for range 3 {
		rec := serve(s, http.MethodGet, "/")
		assert.Equal(t, "Hello from Flask! PostgreSQL version: PostgreSQL 16.2", rec.Body.String())
	}
	assert.Equal(t, 3, fake.calls)
}

func TestVersion(t *testing.T) {
	s := newTestServer(t, &fakeReporter{}, &bytes.Buffer{})

	rec := serve(s, http.MethodGet, "/version")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, version.Version, rec.Body.String())
}

func TestRouting_Errors(t *testing.T) {
	fake := &fakeReporter{}
	s := newTestServer(t, fake, &bytes.Buffer{})

	t.Run("method not allowed", func(t *testing.T) {
		rec := serve(s, http.MethodPost, "/")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "Method Not Allowed", rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", rec.Body.String())
	})

	assert.Zero(t, fake.calls)
}

func TestRecovery(t *testing.T) {
	logs := &bytes.Buffer{}
	s := newTestServer(t, &fakeReporter{panics: true}, logs)

	rec := serve(s, http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "recovered from panic")
	assert.Contains(t, logs.String(), "reporter exploded")
	assert.Contains(t, logs.String(), "goroutine")
}

func TestAccessLog(t *testing.T) {
	logs := &bytes.Buffer{}
	s := newTestServer(t, &fakeReporter{result: reporter.Success("PostgreSQL 16.2")}, logs)

	serve(s, http.MethodGet, "/")
	assert.Contains(t, logs.String(), `"msg":"request handled"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

func TestErrorHandler_UnknownError(t *testing.T) {
	logs := &bytes.Buffer{}
	s := newTestServer(t, &fakeReporter{}, logs)

	rec := httptest.NewRecorder()
	s.errorHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Internal Server Error - "))
	assert.Contains(t, logs.String(), "disk on fire")
}
