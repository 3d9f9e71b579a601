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

// JobInput carries validated job-posting fields.
type JobInput struct {
	JobTitle        string
	JobLocation     string
	WorkingTime     string
	SeniorityLevel  string
	JobDescription  string
	TechnicalSkills []string
	SoftSkills      []string
}

// AddJob posts a job owned by the authenticated HR user.
func (a *App) AddJob(ctx context.Context, ident auth.Identity, in JobInput) (store.Job, error) {
	hrID, err := subjectID(ident)
	if err != nil {
		return store.Job{}, err
	}
	job := store.Job{
		JobTitle:        in.JobTitle,
		JobLocation:     in.JobLocation,
		WorkingTime:     in.WorkingTime,
		SeniorityLevel:  in.SeniorityLevel,
		JobDescription:  in.JobDescription,
		TechnicalSkills: in.TechnicalSkills,
		SoftSkills:      in.SoftSkills,
		AddedBy:         hrID,
	}
	if err := a.store.CreateJob(ctx, &job); err != nil {
		return store.Job{}, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// UpdateJob mutates a job after the resource-first ownership check:
// the job is fetched by the client-supplied id, then its owner is compared
// to the authenticated identity.
func (a *App) UpdateJob(ctx context.Context, ident auth.Identity, id string, in JobInput) (store.Job, error) {
	job, err := a.ownedJob(ctx, ident, id, "update this job")
	if err != nil {
		return store.Job{}, err
	}
	if in.JobTitle != "" {
		job.JobTitle = in.JobTitle
	}
	if in.JobLocation != "" {
		job.JobLocation = in.JobLocation
	}
	if in.WorkingTime != "" {
		job.WorkingTime = in.WorkingTime
	}
	if in.SeniorityLevel != "" {
		job.SeniorityLevel = in.SeniorityLevel
	}
	if in.JobDescription != "" {
		job.JobDescription = in.JobDescription
	}
	if len(in.TechnicalSkills) > 0 {
		job.TechnicalSkills = in.TechnicalSkills
	}
	if len(in.SoftSkills) > 0 {
		job.SoftSkills = in.SoftSkills
	}
	if err := a.store.UpdateJob(ctx, job); err != nil {
		return store.Job{}, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job after the resource-first ownership check.
// Existing applications referencing the job are left in place.
func (a *App) DeleteJob(ctx context.Context, ident auth.Identity, id string) error {
	job, err := a.ownedJob(ctx, ident, id, "delete this job")
	if err != nil {
		return err
	}
	if err := a.store.DeleteJob(ctx, job.ID); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// JobWithCompany pairs a job with its poster's company for display.
// The company is a denormalized join, not an authorization anchor.
type JobWithCompany struct {
	store.Job
	Company *store.Company `json:"company"`
}

// JobsWithCompanies lists every job with its owning company's info.
func (a *App) JobsWithCompanies(ctx context.Context) ([]JobWithCompany, error) {
	jobs, err := a.store.FilterJobs(ctx, store.JobFilter{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	out := make([]JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		entry := JobWithCompany{Job: job}
		if company, err := a.store.CompanyByHR(ctx, job.AddedBy); err == nil {
			entry.Company = &company
		}
		out = append(out, entry)
	}
	return out, nil
}

// JobsForCompany lists jobs posted by the named company's HR user.
func (a *App) JobsForCompany(ctx context.Context, name string) ([]store.Job, error) {
	company, err := a.store.CompanyByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.New(http.StatusNotFound, "company not found")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch company: %w", err)
	}
	jobs, err := a.store.JobsByOwner(ctx, company.CompanyHR)
	if err != nil {
		return nil, fmt.Errorf("fetch jobs: %w", err)
	}
	return jobs, nil
}

// FilteredJobs lists jobs matching the filter. A zero filter matches all;
// the operation is read-only and idempotent.
func (a *App) FilteredJobs(ctx context.Context, f store.JobFilter) ([]store.Job, error) {
	jobs, err := a.store.FilterJobs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("filter jobs: %w", err)
	}
	return jobs, nil
}

func (a *App) ownedJob(ctx context.Context, ident auth.Identity, id, action string) (store.Job, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return store.Job{}, err
	}
	job, err := a.store.JobByID(ctx, oid)
	if errors.Is(err, store.ErrNotFound) {
		return store.Job{}, apperr.New(http.StatusNotFound, "job not found")
	}
	if err != nil {
		return store.Job{}, fmt.Errorf("fetch job: %w", err)
	}
	if err := requireOwner(job.AddedBy, ident, action); err != nil {
		return store.Job{}, err
	}
	return job, nil
}
