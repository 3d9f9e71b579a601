package server

import (
	"net/http"
	"strings"

	"jobboard/internal/app"
	"jobboard/internal/auth"
	"jobboard/internal/validate"
)

func (s *Server) handleAddCompany(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req companyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	company, err := s.app.AddCompany(r.Context(), ident, app.CompanyInput{
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		CompanyEmail:      req.CompanyEmail,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Company added successfully",
		"company": company,
	})
}

func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	var req updateCompanyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validate.Check(req); err != nil {
		writeError(w, r, err)
		return
	}
	company, err := s.app.UpdateCompany(r.Context(), ident, app.CompanyInput{
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		CompanyEmail:      req.CompanyEmail,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Company updated successfully",
		"company": company,
	})
}

func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request, ident auth.Identity) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	if err := s.app.DeleteCompany(r.Context(), ident); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Company deleted successfully"})
}

func (s *Server) handleSearchCompanies(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := companyNameQuery{Name: r.URL.Query().Get("name")}
	if err := validate.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	companies, err := s.app.SearchCompanies(r.Context(), q.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"companies": companies,
		"count":     len(companies),
	})
}

func (s *Server) handleGetCompanyData(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	params := idParams{ID: strings.TrimPrefix(r.URL.Path, "/company/getCompanyData/")}
	if err := validate.Check(params); err != nil {
		writeError(w, r, err)
		return
	}
	company, jobs, err := s.app.CompanyData(r.Context(), params.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"company": company,
		"jobs":    jobs,
	})
}

func (s *Server) handleApplicationsForJob(w http.ResponseWriter, r *http.Request, ident auth.Identity, id string) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	params := idParams{ID: id}
	if err := validate.Check(params); err != nil {
		writeError(w, r, err)
		return
	}
	applications, err := s.app.ApplicationsForJob(r.Context(), ident, params.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"applications": applications,
		"count":        len(applications),
	})
}
