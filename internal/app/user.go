package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/store"
)

const (
	otpLength = 6
	otpTTL    = 10 * time.Minute
)

// SignUpInput carries a validated signup request.
type SignUpInput struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	RecoveryEmail string
	DOB           string
	MobileNumber  string
	Role          string
}

// SignUp creates an offline account. The email pre-check is advisory; the
// unique index arbitrates concurrent signups with the same email.
func (a *App) SignUp(ctx context.Context, in SignUpInput) (store.User, error) {
	_, err := a.store.UserByEmail(ctx, in.Email)
	if err == nil {
		return store.User{}, apperr.New(http.StatusConflict, "email already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.User{}, fmt.Errorf("check email: %w", err)
	}
	hashed, err := a.hasher.Hash(in.Password)
	if err != nil {
		return store.User{}, err
	}
	user := store.User{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Username:      in.FirstName + " " + in.LastName,
		Email:         in.Email,
		Password:      hashed,
		RecoveryEmail: in.RecoveryEmail,
		DOB:           in.DOB,
		MobileNumber:  in.MobileNumber,
		Role:          in.Role,
		Status:        store.StatusOffline,
	}
	if err := a.store.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return store.User{}, apperr.New(http.StatusConflict, "email or mobile number already exists")
		}
		return store.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// SignIn verifies credentials, marks the account online, and issues a
// session credential.
func (a *App) SignIn(ctx context.Context, email, password string) (store.User, string, error) {
	user, err := a.store.UserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, "", apperr.New(http.StatusUnauthorized, "invalid login credentials")
	}
	if err != nil {
		return store.User{}, "", fmt.Errorf("fetch user: %w", err)
	}
	if !a.hasher.Compare(user.Password, password) {
		return store.User{}, "", apperr.New(http.StatusUnauthorized, "invalid login credentials")
	}
	user.Status = store.StatusOnline
	if err := a.store.UpdateUser(ctx, user); err != nil {
		return store.User{}, "", fmt.Errorf("mark online: %w", err)
	}
	token, err := a.tokens.Issue(auth.Identity{
		SubjectID: user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
	})
	if err != nil {
		return store.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Logout marks the account offline.
func (a *App) Logout(ctx context.Context, ident auth.Identity) error {
	user, err := a.userBySubject(ctx, ident)
	if err != nil {
		return err
	}
	user.Status = store.StatusOffline
	if err := a.store.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("mark offline: %w", err)
	}
	return nil
}

// UpdateAccountInput carries account fields to change; empty fields are
// left untouched.
type UpdateAccountInput struct {
	FirstName     string
	LastName      string
	Email         string
	RecoveryEmail string
	DOB           string
	MobileNumber  string
}

// UpdateAccount mutates the caller's account. Blocked while offline.
func (a *App) UpdateAccount(ctx context.Context, ident auth.Identity, in UpdateAccountInput) (store.User, error) {
	user, err := a.onlineUserBySubject(ctx, ident)
	if err != nil {
		return store.User{}, err
	}
	if in.Email != "" && in.Email != user.Email {
		_, err := a.store.UserByEmail(ctx, in.Email)
		if err == nil {
			return store.User{}, apperr.New(http.StatusConflict, "email already exists")
		}
		if !errors.Is(err, store.ErrNotFound) {
			return store.User{}, fmt.Errorf("check email: %w", err)
		}
		user.Email = in.Email
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	user.Username = user.FirstName + " " + user.LastName
	if in.RecoveryEmail != "" {
		user.RecoveryEmail = in.RecoveryEmail
	}
	if in.DOB != "" {
		user.DOB = in.DOB
	}
	if in.MobileNumber != "" {
		user.MobileNumber = in.MobileNumber
	}
	if err := a.store.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return store.User{}, apperr.New(http.StatusConflict, "email or mobile number already exists")
		}
		return store.User{}, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the caller's account. Blocked while offline.
// Dependent companies, jobs, and applications are not cleaned up.
func (a *App) DeleteAccount(ctx context.Context, ident auth.Identity) error {
	user, err := a.onlineUserBySubject(ctx, ident)
	if err != nil {
		return err
	}
	if err := a.store.DeleteUser(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// GetUserData returns the caller's own record. Blocked while offline.
func (a *App) GetUserData(ctx context.Context, ident auth.Identity) (store.User, error) {
	return a.onlineUserBySubject(ctx, ident)
}

// GetProfileData returns another user's public record.
func (a *App) GetProfileData(ctx context.Context, id string) (store.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return store.User{}, err
	}
	user, err := a.store.UserByID(ctx, oid)
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, apperr.New(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return store.User{}, fmt.Errorf("fetch user: %w", err)
	}
	return user, nil
}

// AccountsByRecoveryEmail lists every account sharing a recovery email.
func (a *App) AccountsByRecoveryEmail(ctx context.Context, email string) ([]store.User, error) {
	users, err := a.store.UsersByRecoveryEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("fetch accounts: %w", err)
	}
	return users, nil
}

// UpdatePassword replaces the caller's password after verifying the
// current one.
func (a *App) UpdatePassword(ctx context.Context, ident auth.Identity, current, next string) error {
	user, err := a.userBySubject(ctx, ident)
	if err != nil {
		return err
	}
	if !a.hasher.Compare(user.Password, current) {
		return apperr.New(http.StatusUnauthorized, "current password is incorrect")
	}
	hashed, err := a.hasher.Hash(next)
	if err != nil {
		return err
	}
	user.Password = hashed
	if err := a.store.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ForgetPassword stores a fresh OTP on the account and dispatches it.
func (a *App) ForgetPassword(ctx context.Context, email string) error {
	user, err := a.store.UserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.New(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}
	code, err := generateOTP(otpLength)
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	user.OTP = code
	user.OTPExpire = time.Now().UTC().Add(otpTTL)
	if err := a.store.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	if err := a.mail.SendOTP(ctx, user.Email, code); err != nil {
		return fmt.Errorf("dispatch otp: %w", err)
	}
	return nil
}

// VerifyOTPAndSetNewPassword consumes a pending OTP and sets a new password.
// An expired code is cleared on the spot.
func (a *App) VerifyOTPAndSetNewPassword(ctx context.Context, email, otp, newPassword string) error {
	user, err := a.store.UserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.New(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}
	if user.OTP == "" {
		return apperr.New(http.StatusBadRequest, "no OTP was requested for this account")
	}
	if time.Now().UTC().After(user.OTPExpire) {
		user.OTP = ""
		user.OTPExpire = time.Time{}
		if err := a.store.UpdateUser(ctx, user); err != nil {
			return fmt.Errorf("clear expired otp: %w", err)
		}
		return apperr.New(http.StatusBadRequest, "OTP expired")
	}
	if user.OTP != otp {
		return apperr.New(http.StatusBadRequest, "invalid OTP")
	}
	hashed, err := a.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.OTP = ""
	user.OTPExpire = time.Time{}
	if err := a.store.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("set new password: %w", err)
	}
	return nil
}

func (a *App) userBySubject(ctx context.Context, ident auth.Identity) (store.User, error) {
	oid, err := subjectID(ident)
	if err != nil {
		return store.User{}, err
	}
	user, err := a.store.UserByID(ctx, oid)
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, apperr.New(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return store.User{}, fmt.Errorf("fetch user: %w", err)
	}
	return user, nil
}

// onlineUserBySubject fetches the caller and enforces the online-status
// business rule gating account reads and mutations.
func (a *App) onlineUserBySubject(ctx context.Context, ident auth.Identity) (store.User, error) {
	user, err := a.userBySubject(ctx, ident)
	if err != nil {
		return store.User{}, err
	}
	if user.Status != store.StatusOnline {
		return store.User{}, apperr.New(http.StatusBadRequest, "account must be online to perform this action")
	}
	return user, nil
}
