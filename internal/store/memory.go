package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps records in-process. It backs tests and emulates the
// unique indexes the Mongo implementation relies on.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[primitive.ObjectID]User
	companies    map[primitive.ObjectID]Company
	jobs         map[primitive.ObjectID]Job
	applications map[primitive.ObjectID]Application

	userOrder    []primitive.ObjectID
	companyOrder []primitive.ObjectID
	jobOrder     []primitive.ObjectID
	appOrder     []primitive.ObjectID
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[primitive.ObjectID]User),
		companies:    make(map[primitive.ObjectID]Company),
		jobs:         make(map[primitive.ObjectID]Job),
		applications: make(map[primitive.ObjectID]Application),
	}
}

// users

func (m *MemoryStore) CreateUser(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.userConflict(u.Email, u.MobileNumber, primitive.NilObjectID) {
		return ErrDuplicateKey
	}
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	m.users[u.ID] = *u
	m.userOrder = append(m.userOrder, u.ID)
	return nil
}

func (m *MemoryStore) userConflict(email, mobile string, exclude primitive.ObjectID) bool {
	for _, existing := range m.users {
		if existing.ID == exclude {
			continue
		}
		if existing.Email == email || existing.MobileNumber == mobile {
			return true
		}
	}
	return false
}

func (m *MemoryStore) UserByID(_ context.Context, id primitive.ObjectID) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryStore) UserByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.userOrder {
		if u, ok := m.users[id]; ok && u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (m *MemoryStore) UsersByRecoveryEmail(_ context.Context, email string) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []User{}
	for _, id := range m.userOrder {
		if u, ok := m.users[id]; ok && u.RecoveryEmail == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *MemoryStore) UpdateUser(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	if m.userConflict(u.Email, u.MobileNumber, u.ID) {
		return ErrDuplicateKey
	}
	u.UpdatedAt = time.Now().UTC()
	m.users[u.ID] = u
	return nil
}

func (m *MemoryStore) DeleteUser(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	m.userOrder = removeID(m.userOrder, id)
	return nil
}

// companies

func (m *MemoryStore) CreateCompany(_ context.Context, c *Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.companyConflict(c.CompanyName, c.CompanyEmail, primitive.NilObjectID) {
		return ErrDuplicateKey
	}
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.companies[c.ID] = *c
	m.companyOrder = append(m.companyOrder, c.ID)
	return nil
}

func (m *MemoryStore) companyConflict(name, email string, exclude primitive.ObjectID) bool {
	for _, existing := range m.companies {
		if existing.ID == exclude {
			continue
		}
		if existing.CompanyName == name || existing.CompanyEmail == email {
			return true
		}
	}
	return false
}

func (m *MemoryStore) CompanyByID(_ context.Context, id primitive.ObjectID) (Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.companies[id]
	if !ok {
		return Company{}, ErrNotFound
	}
	return c, nil
}

func (m *MemoryStore) CompanyByHR(_ context.Context, hrID primitive.ObjectID) (Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.companyOrder {
		if c, ok := m.companies[id]; ok && c.CompanyHR == hrID {
			return c, nil
		}
	}
	return Company{}, ErrNotFound
}

func (m *MemoryStore) CompanyByName(_ context.Context, name string) (Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.companyOrder {
		if c, ok := m.companies[id]; ok && strings.EqualFold(c.CompanyName, name) {
			return c, nil
		}
	}
	return Company{}, ErrNotFound
}

func (m *MemoryStore) SearchCompaniesByName(_ context.Context, name string) ([]Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	needle := strings.ToLower(name)
	out := []Company{}
	for _, id := range m.companyOrder {
		if c, ok := m.companies[id]; ok && strings.Contains(strings.ToLower(c.CompanyName), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemoryStore) UpdateCompany(_ context.Context, c Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.companies[c.ID]; !ok {
		return ErrNotFound
	}
	if m.companyConflict(c.CompanyName, c.CompanyEmail, c.ID) {
		return ErrDuplicateKey
	}
	c.UpdatedAt = time.Now().UTC()
	m.companies[c.ID] = c
	return nil
}

func (m *MemoryStore) DeleteCompany(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.companies[id]; !ok {
		return ErrNotFound
	}
	delete(m.companies, id)
	m.companyOrder = removeID(m.companyOrder, id)
	return nil
}

// jobs

func (m *MemoryStore) CreateJob(_ context.Context, j *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	j.ID = primitive.NewObjectID()
	j.CreatedAt = now
	j.UpdatedAt = now
	m.jobs[j.ID] = *j
	m.jobOrder = append(m.jobOrder, j.ID)
	return nil
}

func (m *MemoryStore) JobByID(_ context.Context, id primitive.ObjectID) (Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j, nil
}

func (m *MemoryStore) JobsByOwner(_ context.Context, owner primitive.ObjectID) ([]Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Job{}
	for _, id := range m.jobOrder {
		if j, ok := m.jobs[id]; ok && j.AddedBy == owner {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *MemoryStore) FilterJobs(_ context.Context, f JobFilter) ([]Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Job{}
	for _, id := range m.jobOrder {
		j, ok := m.jobs[id]
		if !ok {
			continue
		}
		if f.WorkingTime != "" && j.WorkingTime != f.WorkingTime {
			continue
		}
		if f.JobLocation != "" && j.JobLocation != f.JobLocation {
			continue
		}
		if f.SeniorityLevel != "" && j.SeniorityLevel != f.SeniorityLevel {
			continue
		}
		if f.JobTitle != "" && !strings.Contains(strings.ToLower(j.JobTitle), strings.ToLower(f.JobTitle)) {
			continue
		}
		if len(f.TechnicalSkills) > 0 && !anySkillMatch(j.TechnicalSkills, f.TechnicalSkills) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func anySkillMatch(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (m *MemoryStore) UpdateJob(_ context.Context, j Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[j.ID]; !ok {
		return ErrNotFound
	}
	j.UpdatedAt = time.Now().UTC()
	m.jobs[j.ID] = j
	return nil
}

func (m *MemoryStore) DeleteJob(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(m.jobs, id)
	m.jobOrder = removeID(m.jobOrder, id)
	return nil
}

// applications

func (m *MemoryStore) CreateApplication(_ context.Context, a *Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	m.applications[a.ID] = *a
	m.appOrder = append(m.appOrder, a.ID)
	return nil
}

func (m *MemoryStore) ApplicationsByJob(_ context.Context, jobID primitive.ObjectID) ([]Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Application{}
	for _, id := range m.appOrder {
		if a, ok := m.applications[id]; ok && a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	filtered := ids[:0]
	for _, item := range ids {
		if item != id {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
