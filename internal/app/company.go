package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/store"
)

// CompanyInput carries validated company fields.
type CompanyInput struct {
	CompanyName       string
	Description       string
	Industry          string
	Address           string
	NumberOfEmployees string
	CompanyEmail      string
}

// AddCompany registers a company owned by the authenticated HR user.
// The name pre-check is advisory; the unique indexes arbitrate races.
func (a *App) AddCompany(ctx context.Context, ident auth.Identity, in CompanyInput) (store.Company, error) {
	hrID, err := subjectID(ident)
	if err != nil {
		return store.Company{}, err
	}
	_, err = a.store.CompanyByName(ctx, in.CompanyName)
	if err == nil {
		return store.Company{}, apperr.New(http.StatusConflict, "company name already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.Company{}, fmt.Errorf("check company name: %w", err)
	}
	company := store.Company{
		CompanyName:       in.CompanyName,
		Description:       in.Description,
		Industry:          in.Industry,
		Address:           in.Address,
		NumberOfEmployees: in.NumberOfEmployees,
		CompanyEmail:      in.CompanyEmail,
		CompanyHR:         hrID,
	}
	if err := a.store.CreateCompany(ctx, &company); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return store.Company{}, apperr.New(http.StatusConflict, "company name or email already exists")
		}
		return store.Company{}, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

// UpdateCompany mutates the caller's company. The company is resolved from
// the authenticated identity, not from a client-supplied id.
func (a *App) UpdateCompany(ctx context.Context, ident auth.Identity, in CompanyInput) (store.Company, error) {
	company, err := a.companyBySubject(ctx, ident)
	if err != nil {
		return store.Company{}, err
	}
	if in.CompanyName != "" {
		company.CompanyName = in.CompanyName
	}
	if in.Description != "" {
		company.Description = in.Description
	}
	if in.Industry != "" {
		company.Industry = in.Industry
	}
	if in.Address != "" {
		company.Address = in.Address
	}
	if in.NumberOfEmployees != "" {
		company.NumberOfEmployees = in.NumberOfEmployees
	}
	if in.CompanyEmail != "" {
		company.CompanyEmail = in.CompanyEmail
	}
	if err := a.store.UpdateCompany(ctx, company); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return store.Company{}, apperr.New(http.StatusConflict, "company name or email already exists")
		}
		return store.Company{}, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

// DeleteCompany removes the caller's company. Jobs added by its HR user
// are left in place.
func (a *App) DeleteCompany(ctx context.Context, ident auth.Identity) error {
	company, err := a.companyBySubject(ctx, ident)
	if err != nil {
		return err
	}
	if err := a.store.DeleteCompany(ctx, company.ID); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// SearchCompanies lists companies whose name contains the query,
// case-insensitively.
func (a *App) SearchCompanies(ctx context.Context, name string) ([]store.Company, error) {
	companies, err := a.store.SearchCompaniesByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	return companies, nil
}

// CompanyData returns a company and the jobs its HR user posted.
func (a *App) CompanyData(ctx context.Context, id string) (store.Company, []store.Job, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return store.Company{}, nil, err
	}
	company, err := a.store.CompanyByID(ctx, oid)
	if errors.Is(err, store.ErrNotFound) {
		return store.Company{}, nil, apperr.New(http.StatusNotFound, "company not found")
	}
	if err != nil {
		return store.Company{}, nil, fmt.Errorf("fetch company: %w", err)
	}
	jobs, err := a.store.JobsByOwner(ctx, company.CompanyHR)
	if err != nil {
		return store.Company{}, nil, fmt.Errorf("fetch company jobs: %w", err)
	}
	return company, jobs, nil
}

// JobApplication joins an application with its applicant's account data.
type JobApplication struct {
	store.Application
	Applicant *store.User `json:"applicant"`
}

// ApplicationsForJob lists applications for a job the caller owns.
// Existence is checked before ownership, so a guessed nonexistent id
// yields 404 rather than 403.
func (a *App) ApplicationsForJob(ctx context.Context, ident auth.Identity, jobID string) ([]JobApplication, error) {
	oid, err := parseObjectID(jobID)
	if err != nil {
		return nil, err
	}
	job, err := a.store.JobByID(ctx, oid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.New(http.StatusNotFound, "job not found")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch job: %w", err)
	}
	if err := requireOwner(job.AddedBy, ident, "view applications for this job"); err != nil {
		return nil, err
	}
	apps, err := a.store.ApplicationsByJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch applications: %w", err)
	}
	out := make([]JobApplication, 0, len(apps))
	for _, application := range apps {
		entry := JobApplication{Application: application}
		if applicant, err := a.store.UserByID(ctx, application.UserID); err == nil {
			entry.Applicant = &applicant
		}
		out = append(out, entry)
	}
	return out, nil
}

// companyBySubject resolves the caller's company by its HR owner reference.
func (a *App) companyBySubject(ctx context.Context, ident auth.Identity) (store.Company, error) {
	hrID, err := subjectID(ident)
	if err != nil {
		return store.Company{}, err
	}
	company, err := a.store.CompanyByHR(ctx, hrID)
	if errors.Is(err, store.ErrNotFound) {
		return store.Company{}, apperr.New(http.StatusNotFound, "company not found")
	}
	if err != nil {
		return store.Company{}, fmt.Errorf("fetch company: %w", err)
	}
	return company, nil
}
