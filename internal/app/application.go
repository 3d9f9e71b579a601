package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/storage"
	"jobboard/internal/store"
	"jobboard/internal/util"
)

// ApplyInput carries a multipart application submission. TechSkillsRaw and
// SoftSkillsRaw are JSON arrays encoded as form fields; ResumePath points at
// the request-scoped buffered copy of the uploaded resume.
type ApplyInput struct {
	JobID          string
	TechSkillsRaw  string
	SoftSkillsRaw  string
	ResumePath     string
	ResumeFilename string
}

// ApplyResult reports how far a submission got. Persisted is true once the
// application record exists, even when a later stage fails.
type ApplyResult struct {
	Application store.Application
	Persisted   bool
	ResumeURL   string
}

// ApplyToJob runs the application-submission workflow: decode skills, verify
// the job exists, upload the resume to the asset store, persist the
// application, then drop the local buffered file. A cleanup failure after the
// persist stage surfaces as an error with Persisted still true.
func (a *App) ApplyToJob(ctx context.Context, ident auth.Identity, in ApplyInput) (ApplyResult, error) {
	var res ApplyResult

	userID, err := subjectID(ident)
	if err != nil {
		return res, err
	}
	techSkills, err := decodeSkillList(in.TechSkillsRaw)
	if err != nil {
		return res, apperr.Internal(fmt.Errorf("decode userTechSkills: %w", err))
	}
	softSkills, err := decodeSkillList(in.SoftSkillsRaw)
	if err != nil {
		return res, apperr.Internal(fmt.Errorf("decode userSoftSkills: %w", err))
	}

	jobID, err := parseObjectID(in.JobID)
	if err != nil {
		return res, err
	}
	job, err := a.store.JobByID(ctx, jobID)
	if errors.Is(err, store.ErrNotFound) {
		return res, apperr.New(http.StatusNotFound, "job not found")
	}
	if err != nil {
		return res, fmt.Errorf("fetch job: %w", err)
	}

	if strings.TrimSpace(in.ResumePath) == "" {
		return res, apperr.New(http.StatusBadRequest, "Resume file is required")
	}

	url, err := a.uploadResume(ctx, in.ResumePath, in.ResumeFilename)
	if err != nil {
		return res, err
	}
	res.ResumeURL = url

	application := store.Application{
		JobID:          job.ID,
		UserID:         userID,
		UserTechSkills: techSkills,
		UserSoftSkills: softSkills,
		UserResume:     url,
	}
	if err := a.store.CreateApplication(ctx, &application); err != nil {
		return res, fmt.Errorf("persist application: %w", err)
	}
	res.Application = application
	res.Persisted = true

	if err := a.files.Remove(in.ResumePath); err != nil {
		return res, fmt.Errorf("remove buffered resume: %w", err)
	}
	return res, nil
}

// uploadResume pushes the buffered resume to the asset store under a fresh
// random key and returns its durable URL.
func (a *App) uploadResume(ctx context.Context, path, filename string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open buffered resume: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat buffered resume: %w", err)
	}
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", fmt.Errorf("read buffered resume: %w", err)
	}
	contentType := storage.DetectContentType(head[:n])
	if _, err := f.Seek(0, 0); err != nil {
		return "", fmt.Errorf("rewind buffered resume: %w", err)
	}

	log := util.LoggerFromContext(ctx)
	if contentType == "application/pdf" {
		if pages, err := storage.PDFPageCount(path); err != nil {
			log.Warn("resume page count failed", "error", err)
		} else {
			log.Info("resume received", "pages", pages)
		}
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	url, err := a.assets.Upload(ctx, key, f, info.Size(), contentType)
	if err != nil {
		return "", fmt.Errorf("upload resume: %w", err)
	}
	return url, nil
}

// decodeSkillList parses a JSON array of strings from a form field. An empty
// field is an empty list.
func decodeSkillList(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, err
	}
	return skills, nil
}
