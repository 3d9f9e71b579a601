package server

import (
	"net/http"

	"jobboard/internal/app"
	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/util"
	"jobboard/internal/validate"
)

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req signUpRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := s.app.SignUp(r.Context(), app.SignUpInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      req.Password,
		RecoveryEmail: req.RecoveryEmail,
		DOB:           req.DOB,
		MobileNumber:  req.MobileNumber,
		Role:          req.Role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Account created successfully",
		"user":    user,
	})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.signInLimiter.Allow(util.ClientIP(r)) {
		writeError(w, r, apperr.New(http.StatusTooManyRequests, "too many sign-in attempts, try again later"))
		return
	}
	var req signInRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	user, token, err := s.app.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Signed in successfully",
		"token":   token,
		"user":    user,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if err := s.app.Logout(r.Context(), ident); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Logged out successfully"})
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	var req updateAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := s.app.UpdateAccount(r.Context(), ident, app.UpdateAccountInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		RecoveryEmail: req.RecoveryEmail,
		DOB:           req.DOB,
		MobileNumber:  req.MobileNumber,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Account updated successfully",
		"user":    user,
	})
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	if err := s.app.DeleteAccount(r.Context(), ident); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Account deleted successfully"})
}

func (s *Server) handleGetUserData(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	user, err := s.app.GetUserData(r.Context(), ident)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleGetProfileData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := profileQuery{ID: r.URL.Query().Get("id")}
	if err := validate.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := s.app.GetProfileData(r.Context(), q.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleAccountsByRecoveryEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := recoveryEmailQuery{RecoveryEmail: r.URL.Query().Get("recoveryEmail")}
	if err := validate.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	users, err := s.app.AccountsByRecoveryEmail(r.Context(), q.RecoveryEmail)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"accounts": users,
		"count":    len(users),
	})
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	var req updatePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.app.UpdatePassword(r.Context(), ident, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Password updated successfully"})
}

func (s *Server) handleForgetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req forgetPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	if !s.otpLimiter.Allow(req.Email) {
		writeError(w, r, apperr.New(http.StatusTooManyRequests, "too many OTP requests, try again later"))
		return
	}
	if err := s.app.ForgetPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "OTP sent to your email"})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	var req verifyOTPRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.app.VerifyOTPAndSetNewPassword(r.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Password reset successfully"})
}
