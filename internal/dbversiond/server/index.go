package server

import (
	"net/http"

	"github.com/dbversion/dbversion/internal/util/httputil"
)

// indexHandler reports the database version. Database failures are part of
// the text body and still answered with 200.
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) error {
	result := s.Reporter.Report(r.Context())
	return httputil.WriteString(w, http.StatusOK, result.String())
}
