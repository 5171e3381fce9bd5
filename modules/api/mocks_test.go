package api_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
	"github.com/dmitrymomot/jobboard/svc/company"
	"github.com/dmitrymomot/jobboard/svc/job"
	"github.com/dmitrymomot/jobboard/svc/user"
)

type mockJobs struct{ mock.Mock }

func (m *mockJobs) Create(ctx context.Context, in job.NewJob) (job.Job, error) {
	ret := m.Called(in)
	return ret.Get(0).(job.Job), ret.Error(1)
}

func (m *mockJobs) Find(ctx context.Context, f job.Filter) ([]job.Job, error) {
	ret := m.Called(f)
	jobs, _ := ret.Get(0).([]job.Job)
	return jobs, ret.Error(1)
}

func (m *mockJobs) Get(ctx context.Context, id int64) (job.Job, error) {
	ret := m.Called(id)
	return ret.Get(0).(job.Job), ret.Error(1)
}

func (m *mockJobs) Update(ctx context.Context, id int64, fields sqlbuild.Fields) (job.Job, error) {
	ret := m.Called(id, fields)
	return ret.Get(0).(job.Job), ret.Error(1)
}

func (m *mockJobs) Delete(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockJobs) ByCompany(ctx context.Context, handle string) ([]job.Job, error) {
	ret := m.Called(handle)
	jobs, _ := ret.Get(0).([]job.Job)
	return jobs, ret.Error(1)
}

type mockCompanies struct{ mock.Mock }

func (m *mockCompanies) Create(ctx context.Context, in company.NewCompany) (company.Company, error) {
	ret := m.Called(in)
	return ret.Get(0).(company.Company), ret.Error(1)
}

func (m *mockCompanies) Find(ctx context.Context, f company.Filter) ([]company.Company, error) {
	ret := m.Called(f)
	companies, _ := ret.Get(0).([]company.Company)
	return companies, ret.Error(1)
}

func (m *mockCompanies) Get(ctx context.Context, handle string) (company.Company, error) {
	ret := m.Called(handle)
	return ret.Get(0).(company.Company), ret.Error(1)
}

func (m *mockCompanies) Update(ctx context.Context, handle string, fields sqlbuild.Fields) (company.Company, error) {
	ret := m.Called(handle, fields)
	return ret.Get(0).(company.Company), ret.Error(1)
}

func (m *mockCompanies) Delete(ctx context.Context, handle string) error {
	return m.Called(handle).Error(0)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Register(ctx context.Context, in user.NewUser) (user.User, error) {
	ret := m.Called(in)
	return ret.Get(0).(user.User), ret.Error(1)
}

func (m *mockUsers) Authenticate(ctx context.Context, username, password string) (user.User, error) {
	ret := m.Called(username, password)
	return ret.Get(0).(user.User), ret.Error(1)
}

func (m *mockUsers) FindAll(ctx context.Context) ([]user.User, error) {
	ret := m.Called()
	users, _ := ret.Get(0).([]user.User)
	return users, ret.Error(1)
}

func (m *mockUsers) Get(ctx context.Context, username string) (user.User, error) {
	ret := m.Called(username)
	return ret.Get(0).(user.User), ret.Error(1)
}

func (m *mockUsers) Update(ctx context.Context, username string, fields sqlbuild.Fields) (user.User, error) {
	ret := m.Called(username, fields)
	return ret.Get(0).(user.User), ret.Error(1)
}

func (m *mockUsers) Delete(ctx context.Context, username string) error {
	return m.Called(username).Error(0)
}

func (m *mockUsers) Apply(ctx context.Context, username string, jobID int64) error {
	return m.Called(username, jobID).Error(0)
}
