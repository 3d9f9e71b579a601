package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard/internal/store"
)

func TestJobUpdateOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner, ownerToken := env.createUser(t, "hr1@example.com", store.RoleCompanyHR, store.StatusOnline)
	_, otherToken := env.createUser(t, "hr2@example.com", store.RoleCompanyHR, store.StatusOnline)
	job := env.seedJob(t, owner.ID, "Backend Engineer")

	// Non-owner HR is rejected.
	status, body := env.doJSON(t, http.MethodPut, "/job/updateJob/"+job.ID.Hex(), otherToken, map[string]any{
		"jobTitle": "Hijacked Title",
	})
	if status != http.StatusForbidden {
		t.Fatalf("non-owner expected 403, got %d (%v)", status, body)
	}
	if body["message"] != "only the owner can update this job" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	// Owner succeeds.
	status, body = env.doJSON(t, http.MethodPut, "/job/updateJob/"+job.ID.Hex(), ownerToken, map[string]any{
		"jobTitle": "Staff Backend Engineer",
	})
	if status != http.StatusOK {
		t.Fatalf("owner update expected 200, got %d (%v)", status, body)
	}

	// Unknown job yields 404 before any ownership decision.
	status, _ = env.doJSON(t, http.MethodDelete, "/job/deleteJob/ffffffffffffffffffffffff", otherToken, nil)
	if status != http.StatusNotFound {
		t.Fatalf("unknown job expected 404, got %d", status)
	}
}

func TestFilteredJobsIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	owner, token := env.createUser(t, "hr@example.com", store.RoleCompanyHR, store.StatusOnline)
	env.seedJob(t, owner.ID, "Backend Engineer")
	env.seedJob(t, owner.ID, "Platform Engineer")

	fetch := func() string {
		t.Helper()
		status, body := env.doJSON(t, http.MethodGet, "/job/getFilteredJobs", token, nil)
		if status != http.StatusOK {
			t.Fatalf("expected 200, got %d", status)
		}
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		return string(raw)
	}
	first := fetch()
	second := fetch()
	if first != second {
		t.Fatalf("repeated fetches differ:\n%s\n%s", first, second)
	}

	status, body := env.doJSON(t, http.MethodGet, "/job/getFilteredJobs?jobTitle=platform", token, nil)
	if status != http.StatusOK {
		t.Fatalf("filtered fetch expected 200, got %d", status)
	}
	if body["count"] != float64(1) {
		t.Fatalf("expected one platform job, got %v", body["count"])
	}
}

func TestJobsForCompanyAndCompanyData(t *testing.T) {
	env := newTestEnv(t)
	owner, token := env.createUser(t, "hr@example.com", store.RoleCompanyHR, store.StatusOnline)
	env.seedJob(t, owner.ID, "Backend Engineer")

	status, body := env.doJSON(t, http.MethodPost, "/company/addCompany", token, map[string]any{
		"companyName":       "Initech",
		"description":       "TPS reports",
		"industry":          "software",
		"address":           "branch office",
		"numberOfEmployees": "11-20",
		"companyEmail":      "hello@initech.example",
	})
	if status != http.StatusCreated {
		t.Fatalf("addCompany expected 201, got %d (%v)", status, body)
	}
	company, _ := body["company"].(map[string]any)
	companyID, _ := company["id"].(string)
	if companyID == "" {
		t.Fatalf("missing company id in %v", body)
	}

	status, body = env.doJSON(t, http.MethodGet, "/company/getCompanyData/"+companyID, token, nil)
	if status != http.StatusOK {
		t.Fatalf("getCompanyData expected 200, got %d (%v)", status, body)
	}
	jobs, _ := body["jobs"].([]any)
	if len(jobs) != 1 {
		t.Fatalf("expected the HR's job in company data, got %v", body["jobs"])
	}

	status, body = env.doJSON(t, http.MethodGet, "/job/getAllJobsForSpecificCompany?name=Initech", token, nil)
	if status != http.StatusOK {
		t.Fatalf("jobs for company expected 200, got %d (%v)", status, body)
	}
	if body["count"] != float64(1) {
		t.Fatalf("expected one job, got %v", body["count"])
	}

	status, _ = env.doJSON(t, http.MethodGet, "/job/getAllJobsForSpecificCompany?name=Missing", token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("unknown company expected 404, got %d", status)
	}
}
