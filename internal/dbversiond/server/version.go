package server

import (
	"net/http"

	"github.com/dbversion/dbversion/internal/util/httputil"
	"github.com/dbversion/dbversion/internal/version"
)

func (s *Server) versionHandler(w http.ResponseWriter, r *http.Request) error {
	return httputil.WriteString(w, http.StatusOK, version.Version)
}
