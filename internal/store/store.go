// Package store persists job-board records in a document database.
// Uniqueness is ultimately enforced by the unique indexes, not by the
// check-then-act pre-checks in the business layer; a losing concurrent
// write surfaces ErrDuplicateKey.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *User) error
	UserByID(ctx context.Context, id primitive.ObjectID) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UsersByRecoveryEmail(ctx context.Context, email string) ([]User, error)
	UpdateUser(ctx context.Context, u User) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// CompanyStore persists companies.
type CompanyStore interface {
	CreateCompany(ctx context.Context, c *Company) error
	CompanyByID(ctx context.Context, id primitive.ObjectID) (Company, error)
	CompanyByHR(ctx context.Context, hrID primitive.ObjectID) (Company, error)
	CompanyByName(ctx context.Context, name string) (Company, error)
	SearchCompaniesByName(ctx context.Context, name string) ([]Company, error)
	UpdateCompany(ctx context.Context, c Company) error
	DeleteCompany(ctx context.Context, id primitive.ObjectID) error
}

// JobStore persists job postings.
type JobStore interface {
	CreateJob(ctx context.Context, j *Job) error
	JobByID(ctx context.Context, id primitive.ObjectID) (Job, error)
	JobsByOwner(ctx context.Context, owner primitive.ObjectID) ([]Job, error)
	FilterJobs(ctx context.Context, f JobFilter) ([]Job, error)
	UpdateJob(ctx context.Context, j Job) error
	DeleteJob(ctx context.Context, id primitive.ObjectID) error
}

// ApplicationStore persists job applications.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, a *Application) error
	ApplicationsByJob(ctx context.Context, jobID primitive.ObjectID) ([]Application, error)
}

// Store aggregates all persistence operations.
type Store interface {
	UserStore
	CompanyStore
	JobStore
	ApplicationStore
}
