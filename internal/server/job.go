package server

import (
	"net/http"
	"strings"

	"jobboard/internal/app"
	"jobboard/internal/auth"
	"jobboard/internal/store"
	"jobboard/internal/validate"
)

func (s *Server) handleAddJob(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req jobRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	job, err := s.app.AddJob(r.Context(), ident, app.JobInput{
		JobTitle:        req.JobTitle,
		JobLocation:     req.JobLocation,
		WorkingTime:     req.WorkingTime,
		SeniorityLevel:  req.SeniorityLevel,
		JobDescription:  req.JobDescription,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Job added successfully",
		"job":     job,
	})
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	params := idParams{ID: strings.TrimPrefix(r.URL.Path, "/job/updateJob/")}
	if err := validate.Check(params); err != nil {
		writeError(w, r, err)
		return
	}
	var req updateJobRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	job, err := s.app.UpdateJob(r.Context(), ident, params.ID, app.JobInput{
		JobTitle:        req.JobTitle,
		JobLocation:     req.JobLocation,
		WorkingTime:     req.WorkingTime,
		SeniorityLevel:  req.SeniorityLevel,
		JobDescription:  req.JobDescription,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Job updated successfully",
		"job":     job,
	})
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	params := idParams{ID: strings.TrimPrefix(r.URL.Path, "/job/deleteJob/")}
	if err := validate.Check(params); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.app.DeleteJob(r.Context(), ident, params.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Job deleted successfully"})
}

func (s *Server) handleJobsWithCompanies(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	jobs, err := s.app.JobsWithCompanies(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (s *Server) handleJobsForCompany(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := companyNameQuery{Name: r.URL.Query().Get("name")}
	if err := validate.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	jobs, err := s.app.JobsForCompany(r.Context(), q.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (s *Server) handleFilteredJobs(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := r.URL.Query()
	filter := store.JobFilter{
		WorkingTime:    q.Get("workingTime"),
		JobLocation:    q.Get("jobLocation"),
		SeniorityLevel: q.Get("seniorityLevel"),
		JobTitle:       q.Get("jobTitle"),
	}
	if raw := strings.TrimSpace(q.Get("technicalSkills")); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				filter.TechnicalSkills = append(filter.TechnicalSkills, skill)
			}
		}
	}
	jobs, err := s.app.FilteredJobs(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}
