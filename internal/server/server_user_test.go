package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"jobboard/internal/store"
)

func TestSignUpAndSignIn(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.doJSON(t, http.MethodPost, "/user/signup", "", map[string]any{
		"firstName":     "Ada",
		"lastName":      "Lovelace",
		"email":         "ada@example.com",
		"password":      "correct-horse",
		"recoveryEmail": "ada.backup@example.com",
		"DOB":           "1990-12-10",
		"mobileNumber":  "+201012345678",
		"role":          store.RoleUser,
	})
	if status != http.StatusCreated {
		t.Fatalf("signup expected 201, got %d (%v)", status, body)
	}

	// Duplicate email conflicts.
	status, _ = env.doJSON(t, http.MethodPost, "/user/signup", "", map[string]any{
		"firstName":     "Ada",
		"lastName":      "Again",
		"email":         "ada@example.com",
		"password":      "correct-horse",
		"recoveryEmail": "ada.backup@example.com",
		"DOB":           "1990-12-10",
		"mobileNumber":  "+201087654321",
		"role":          store.RoleUser,
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate signup expected 409, got %d", status)
	}

	// Wrong password.
	status, _ = env.doJSON(t, http.MethodPost, "/user/SignIn", "", map[string]any{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("wrong password expected 401, got %d", status)
	}

	status, body = env.doJSON(t, http.MethodPost, "/user/SignIn", "", map[string]any{
		"email":    "ada@example.com",
		"password": "correct-horse",
	})
	if status != http.StatusOK {
		t.Fatalf("sign in expected 200, got %d (%v)", status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("sign in response missing token")
	}

	// Signed in account is online and can read itself.
	status, body = env.doJSON(t, http.MethodGet, "/user/getUserData", token, nil)
	if status != http.StatusOK {
		t.Fatalf("getUserData expected 200, got %d (%v)", status, body)
	}
	user, _ := body["user"].(map[string]any)
	if user["status"] != store.StatusOnline {
		t.Fatalf("expected online status, got %v", user["status"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password must not appear in responses")
	}
}

func TestSignUpValidationReportsEveryViolation(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.doJSON(t, http.MethodPost, "/user/signup", "", map[string]any{
		"firstName": "Ada",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	msgs, ok := body["message"].([]any)
	if !ok {
		t.Fatalf("validation message must be a list, got %T", body["message"])
	}
	if len(msgs) < 5 {
		t.Fatalf("expected one message per missing field, got %v", msgs)
	}
	if msgs[0] != "lastName is required" {
		t.Fatalf("unexpected first violation %v", msgs[0])
	}
}

func TestOfflineAccountBlockedFromSelfReads(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "offline@example.com", store.RoleUser, store.StatusOffline)

	status, body := env.doJSON(t, http.MethodGet, "/user/getUserData", token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("offline read expected 400, got %d (%v)", status, body)
	}

	status, _ = env.doJSON(t, http.MethodPut, "/user/updateAccount", token, map[string]any{
		"firstName": "Changed",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("offline update expected 400, got %d", status)
	}
}

func TestOTPRecoveryFlow(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(t, "forgetful@example.com", store.RoleUser, store.StatusOffline)

	status, _ := env.doJSON(t, http.MethodPost, "/user/forgetPassword", "", map[string]any{
		"email": user.Email,
	})
	if status != http.StatusCreated {
		t.Fatalf("forgetPassword expected 201, got %d", status)
	}

	stored, err := env.store.UserByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	if len(stored.OTP) != 6 {
		t.Fatalf("expected 6-digit OTP, got %q", stored.OTP)
	}

	// Wrong code.
	wrong := "000000"
	if stored.OTP == wrong {
		wrong = "000001"
	}
	status, _ = env.doJSON(t, http.MethodPut, "/user/verifyOTPAndSetNewPassword", "", map[string]any{
		"email":       user.Email,
		"otp":         wrong,
		"newPassword": "brand-new-pass",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("wrong OTP expected 400, got %d", status)
	}

	// Correct code resets the password and clears the OTP.
	status, _ = env.doJSON(t, http.MethodPut, "/user/verifyOTPAndSetNewPassword", "", map[string]any{
		"email":       user.Email,
		"otp":         stored.OTP,
		"newPassword": "brand-new-pass",
	})
	if status != http.StatusOK {
		t.Fatalf("verify OTP expected 200, got %d", status)
	}
	cleared, err := env.store.UserByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	if cleared.OTP != "" {
		t.Fatal("OTP must be cleared after use")
	}
	status, _ = env.doJSON(t, http.MethodPost, "/user/SignIn", "", map[string]any{
		"email":    user.Email,
		"password": "brand-new-pass",
	})
	if status != http.StatusOK {
		t.Fatalf("sign in with new password expected 200, got %d", status)
	}
}

func TestExpiredOTPRejectedAndCleared(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.createUser(t, "late@example.com", store.RoleUser, store.StatusOffline)

	stored, err := env.store.UserByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	stored.OTP = "123456"
	stored.OTPExpire = time.Now().UTC().Add(-time.Minute)
	if err := env.store.UpdateUser(context.Background(), stored); err != nil {
		t.Fatalf("seed expired otp: %v", err)
	}

	status, body := env.doJSON(t, http.MethodPut, "/user/verifyOTPAndSetNewPassword", "", map[string]any{
		"email":       user.Email,
		"otp":         "123456",
		"newPassword": "brand-new-pass",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expired OTP expected 400, got %d", status)
	}
	if body["message"] != "OTP expired" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	cleared, err := env.store.UserByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	if cleared.OTP != "" {
		t.Fatal("expired OTP must be cleared on verification")
	}
}
