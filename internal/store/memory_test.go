package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreEnforcesUserUniqueness(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	first := &User{Email: "a@example.com", MobileNumber: "+201000000001"}
	if err := m.CreateUser(ctx, first); err != nil {
		t.Fatalf("create first user: %v", err)
	}
	dup := &User{Email: "a@example.com", MobileNumber: "+201000000002"}
	if err := m.CreateUser(ctx, dup); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate email error = %v, want ErrDuplicateKey", err)
	}
	dupMobile := &User{Email: "b@example.com", MobileNumber: "+201000000001"}
	if err := m.CreateUser(ctx, dupMobile); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate mobile error = %v, want ErrDuplicateKey", err)
	}
}

func TestMemoryStoreUpdateUserExcludesSelfFromConflict(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	u := &User{Email: "a@example.com", MobileNumber: "+201000000001"}
	if err := m.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := m.UserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	got.FirstName = "Updated"
	if err := m.UpdateUser(ctx, got); err != nil {
		t.Fatalf("update with own email should not conflict: %v", err)
	}
}

func TestMemoryStoreCompanyUniqueness(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	c := &Company{CompanyName: "Acme", CompanyEmail: "hr@acme.com"}
	if err := m.CreateCompany(ctx, c); err != nil {
		t.Fatalf("create company: %v", err)
	}
	dup := &Company{CompanyName: "Acme", CompanyEmail: "other@acme.com"}
	if err := m.CreateCompany(ctx, dup); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate name error = %v, want ErrDuplicateKey", err)
	}
}

func TestMemoryStoreCompanyNameLookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	c := &Company{CompanyName: "Acme Corp", CompanyEmail: "hr@acme.com"}
	if err := m.CreateCompany(ctx, c); err != nil {
		t.Fatalf("create company: %v", err)
	}
	if _, err := m.CompanyByName(ctx, "acme corp"); err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	found, err := m.SearchCompaniesByName(ctx, "ACME")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("search hits = %d, want 1", len(found))
	}
}

func TestMemoryStoreFilterJobs(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	jobs := []*Job{
		{JobTitle: "Backend Engineer", WorkingTime: "full-time", JobLocation: "onsite", SeniorityLevel: "Senior", TechnicalSkills: []string{"go", "mongodb"}},
		{JobTitle: "Frontend Engineer", WorkingTime: "part-time", JobLocation: "remotely", SeniorityLevel: "Junior", TechnicalSkills: []string{"react"}},
	}
	for _, j := range jobs {
		if err := m.CreateJob(ctx, j); err != nil {
			t.Fatalf("create job: %v", err)
		}
	}

	all, err := m.FilterJobs(ctx, JobFilter{})
	if err != nil || len(all) != 2 {
		t.Fatalf("unfiltered = %d jobs err=%v, want 2", len(all), err)
	}

	got, err := m.FilterJobs(ctx, JobFilter{WorkingTime: "full-time", TechnicalSkills: []string{"go"}})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 || got[0].JobTitle != "Backend Engineer" {
		t.Fatalf("filtered jobs = %+v", got)
	}

	none, err := m.FilterJobs(ctx, JobFilter{TechnicalSkills: []string{"cobol"}})
	if err != nil || len(none) != 0 {
		t.Fatalf("no-match filter = %d jobs err=%v, want 0", len(none), err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	u := &User{Email: "a@example.com", MobileNumber: "+201000000001"}
	if err := m.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.UserByID(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("fetch deleted = %v, want ErrNotFound", err)
	}
	if err := m.DeleteUser(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete = %v, want ErrNotFound", err)
	}
}
