package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobboard/internal/app"
	"jobboard/internal/auth"
	"jobboard/internal/storage"
	"jobboard/internal/store"
)

type stubAssets struct {
	uploads int
}

func (s *stubAssets) Upload(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	s.uploads++
	return "http://assets.test/resumes/" + key, nil
}

func (s *stubAssets) Delete(context.Context, string) error { return nil }

type testEnv struct {
	srv    *httptest.Server
	store  *store.MemoryStore
	tokens *auth.TokenManager
	hasher *auth.PasswordHasher
	assets *stubAssets
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	hasher := auth.NewPasswordHasher(4)
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	mem := store.NewMemoryStore()
	files, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	assets := &stubAssets{}
	appCore, err := app.New(app.Config{
		Store:  mem,
		Hasher: hasher,
		Tokens: tokens,
		Assets: assets,
		Files:  files,
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	s := New(Config{App: appCore, Tokens: tokens, Files: files})
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, store: mem, tokens: tokens, hasher: hasher, assets: assets}
}

// createUser seeds an account directly in the store and issues its credential.
func (e *testEnv) createUser(t *testing.T, email, role, status string) (store.User, string) {
	t.Helper()
	hashed, err := e.hasher.Hash("secret-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := store.User{
		FirstName:     "Test",
		LastName:      "User",
		Username:      "Test User",
		Email:         email,
		Password:      hashed,
		RecoveryEmail: "recovery@example.com",
		DOB:           "1990-01-01",
		MobileNumber:  "+2010000" + primitive.NewObjectID().Hex()[19:],
		Role:          role,
		Status:        status,
	}
	if err := e.store.CreateUser(context.Background(), &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, err := e.tokens.Issue(auth.Identity{
		SubjectID: user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return user, token
}

func (e *testEnv) seedJob(t *testing.T, owner primitive.ObjectID, title string) store.Job {
	t.Helper()
	job := store.Job{
		JobTitle:        title,
		JobLocation:     "remotely",
		WorkingTime:     "full-time",
		SeniorityLevel:  "Senior",
		JobDescription:  "Build and run services",
		TechnicalSkills: []string{"go", "mongodb"},
		SoftSkills:      []string{"communication"},
		AddedBy:         owner,
	}
	if err := e.store.CreateJob(context.Background(), &job); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

// doJSON sends a JSON request with an optional credential header and decodes
// the response body into a generic map.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("token", token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	decoded := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && err != io.EOF {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}
