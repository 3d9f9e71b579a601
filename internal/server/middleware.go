package server

import (
	"net/http"
	"strings"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
)

// tokenHeader is the bare request header carrying the session credential.
const tokenHeader = "token"

// identityHandler is a handler that runs with a verified caller identity.
type identityHandler func(http.ResponseWriter, *http.Request, auth.Identity)

// authenticated verifies the credential header and passes the decoded
// identity to the wrapped handler. A missing header answers 401; a header
// that fails verification answers 498.
func (s *Server) authenticated(next identityHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(tokenHeader))
		if token == "" {
			writeError(w, r, apperr.New(http.StatusUnauthorized, "authentication token is required"))
			return
		}
		ident, err := s.tokens.Verify(token)
		if err != nil {
			writeError(w, r, apperr.New(apperr.StatusInvalidToken, "invalid or expired token"))
			return
		}
		next(w, r, ident)
	})
}

// requireRole layers a role check on top of authentication.
func (s *Server) requireRole(role string, next identityHandler) http.Handler {
	return s.authenticated(func(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
		if ident.Role != role {
			writeError(w, r, apperr.New(http.StatusForbidden, "you are not authorized to access this resource"))
			return
		}
		next(w, r, ident)
	})
}
