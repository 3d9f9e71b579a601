// Package server is the HTTP surface: routing, credential middleware,
// request validation, and the uniform error body.
package server

import (
	"net/http"
	"strings"

	"jobboard/internal/app"
	"jobboard/internal/auth"
	"jobboard/internal/ratelimit"
	"jobboard/internal/storage"
	"jobboard/internal/store"
)

const (
	roleUser      = store.RoleUser
	roleCompanyHR = store.RoleCompanyHR
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App           *app.App
	Tokens        *auth.TokenManager
	Files         *storage.FileStore
	SignInLimiter *ratelimit.FixedWindowLimiter
	OTPLimiter    *ratelimit.FixedWindowLimiter
}

// Server exposes the job-board HTTP endpoints.
type Server struct {
	app           *app.App
	tokens        *auth.TokenManager
	files         *storage.FileStore
	signInLimiter *ratelimit.FixedWindowLimiter
	otpLimiter    *ratelimit.FixedWindowLimiter
	mux           *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	s := &Server{
		app:           cfg.App,
		tokens:        cfg.Tokens,
		files:         cfg.Files,
		signInLimiter: cfg.SignInLimiter,
		otpLimiter:    cfg.OTPLimiter,
		mux:           http.NewServeMux(),
	}
	s.routes()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// user
	s.mux.HandleFunc("/user/signup", s.handleSignUp)
	s.mux.HandleFunc("/user/SignIn", s.handleSignIn)
	s.mux.Handle("/user/logout", s.authenticated(s.handleLogout))
	s.mux.Handle("/user/updateAccount", s.authenticated(s.handleUpdateAccount))
	s.mux.Handle("/user/deleteAccount", s.authenticated(s.handleDeleteAccount))
	s.mux.Handle("/user/getUserData", s.authenticated(s.handleGetUserData))
	s.mux.HandleFunc("/user/getProfileData", s.handleGetProfileData)
	s.mux.HandleFunc("/user/getAccountsByRecoveryEmail", s.handleAccountsByRecoveryEmail)
	s.mux.Handle("/user/updatePassword", s.authenticated(s.handleUpdatePassword))
	s.mux.HandleFunc("/user/forgetPassword", s.handleForgetPassword)
	s.mux.HandleFunc("/user/verifyOTPAndSetNewPassword", s.handleVerifyOTP)

	// company
	s.mux.Handle("/company/addCompany", s.requireRole(roleCompanyHR, s.handleAddCompany))
	s.mux.Handle("/company/updateCompanyData", s.requireRole(roleCompanyHR, s.handleUpdateCompany))
	s.mux.Handle("/company/deleteCompanyData", s.requireRole(roleCompanyHR, s.handleDeleteCompany))
	s.mux.Handle("/company/searchForCompanyWithName", s.authenticated(s.handleSearchCompanies))
	s.mux.Handle("/company/getCompanyData/", s.requireRole(roleCompanyHR, s.handleGetCompanyData))
	// The applications route carries its id with no slash separator
	// (".../getAllApplicationsForSpecificJob<id>"), so it lands on the
	// subtree fallback and the id is spliced off the path there.
	s.mux.HandleFunc("/company/", s.handleCompanyFallback)

	// job
	s.mux.Handle("/job/addJob", s.requireRole(roleCompanyHR, s.handleAddJob))
	s.mux.Handle("/job/updateJob/", s.requireRole(roleCompanyHR, s.handleUpdateJob))
	s.mux.Handle("/job/deleteJob/", s.requireRole(roleCompanyHR, s.handleDeleteJob))
	s.mux.Handle("/job/JobsWithCompaniesInfo", s.authenticated(s.handleJobsWithCompanies))
	s.mux.Handle("/job/getAllJobsForSpecificCompany", s.authenticated(s.handleJobsForCompany))
	s.mux.Handle("/job/getFilteredJobs", s.authenticated(s.handleFilteredJobs))
	s.mux.Handle("/job/applyToJob", s.requireRole(roleUser, s.handleApplyToJob))

	s.mux.HandleFunc("/", s.handleFallback)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

const applicationsPrefix = "/company/getAllApplicationsForSpecificJob"

func (s *Server) handleCompanyFallback(w http.ResponseWriter, r *http.Request) {
	if id, ok := strings.CutPrefix(r.URL.Path, applicationsPrefix); ok && id != "" && !strings.Contains(id, "/") {
		s.requireRole(roleCompanyHR, func(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
			s.handleApplicationsForJob(w, r, ident, id)
		}).ServeHTTP(w, r)
		return
	}
	notFound(w, r)
}

func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}
