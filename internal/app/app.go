// Package app is the business core: account, company, job, and application
// operations on top of the store, plus the application-submission workflow.
package app

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/mailer"
	"jobboard/internal/storage"
	"jobboard/internal/store"
)

// LocalFiles removes request-scoped buffered upload files.
type LocalFiles interface {
	Remove(path string) error
}

// Config wires the application core's dependencies.
type Config struct {
	Store  store.Store
	Hasher *auth.PasswordHasher
	Tokens *auth.TokenManager
	Mailer mailer.Mailer
	Assets storage.ObjectStore
	Files  LocalFiles
}

// App exposes the business operations behind the HTTP surface.
type App struct {
	store  store.Store
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
	mail   mailer.Mailer
	assets storage.ObjectStore
	files  LocalFiles
}

// New constructs the application core.
func New(cfg Config) (*App, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Hasher == nil {
		return nil, errors.New("password hasher is required")
	}
	if cfg.Tokens == nil {
		return nil, errors.New("token manager is required")
	}
	if cfg.Assets == nil {
		return nil, errors.New("asset store is required")
	}
	if cfg.Files == nil {
		return nil, errors.New("file store is required")
	}
	mail := cfg.Mailer
	if mail == nil {
		mail = mailer.LogMailer{}
	}
	return &App{
		store:  cfg.Store,
		hasher: cfg.Hasher,
		tokens: cfg.Tokens,
		mail:   mail,
		assets: cfg.Assets,
		files:  cfg.Files,
	}, nil
}

// parseObjectID parses a client-supplied document id.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperr.New(400, "id must be a valid object id")
	}
	return oid, nil
}

// subjectID parses the authenticated subject into an object id.
func subjectID(ident auth.Identity) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(ident.SubjectID))
	if err != nil {
		return primitive.NilObjectID, apperr.New(apperr.StatusInvalidToken, "invalid token subject")
	}
	return id, nil
}

// generateOTP returns a crypto-random numeric code of the given length.
func generateOTP(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
