package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func ptrResult[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// --- Mock workflow, shared by every approvable service ---
type mockWorkflow[T any] struct {
	mock.Mock
}

func (m *mockWorkflow[T]) Submit(ctx context.Context, id string, actor domain.Actor) (*T, error) {
	return ptrResult[T](m.Called(ctx, id, actor))
}
func (m *mockWorkflow[T]) Approve(ctx context.Context, id string, actor domain.Actor) (*T, error) {
	return ptrResult[T](m.Called(ctx, id, actor))
}
func (m *mockWorkflow[T]) Reject(ctx context.Context, id string, reason string, actor domain.Actor) (*T, error) {
	return ptrResult[T](m.Called(ctx, id, reason, actor))
}
func (m *mockWorkflow[T]) Revise(ctx context.Context, id string, actor domain.Actor) (*T, error) {
	return ptrResult[T](m.Called(ctx, id, actor))
}

// --- Mock LeaseService ---
type MockLeaseService struct {
	mockWorkflow[domain.Lease]
}

func (m *MockLeaseService) CreateLease(ctx context.Context, req dto.CreateLeaseRequest, actor domain.Actor) (*domain.Lease, error) {
	return ptrResult[domain.Lease](m.Called(ctx, req, actor))
}
func (m *MockLeaseService) UpdateLease(ctx context.Context, leaseID string, req dto.UpdateLeaseRequest, actor domain.Actor) (*domain.Lease, error) {
	return ptrResult[domain.Lease](m.Called(ctx, leaseID, req, actor))
}
func (m *MockLeaseService) GetLeaseByID(ctx context.Context, leaseID string, actor domain.Actor) (*domain.Lease, error) {
	return ptrResult[domain.Lease](m.Called(ctx, leaseID, actor))
}
func (m *MockLeaseService) ListLeases(ctx context.Context, params dto.ListLeasesParams, actor domain.Actor) (*dto.ListLeasesResponse, error) {
	return ptrResult[dto.ListLeasesResponse](m.Called(ctx, params, actor))
}
func (m *MockLeaseService) GetEffectiveTerms(ctx context.Context, leaseID string, asOf domain.Date, actor domain.Actor) (*dto.LeaseTermsResponse, error) {
	return ptrResult[dto.LeaseTermsResponse](m.Called(ctx, leaseID, asOf, actor))
}
func (m *MockLeaseService) CalculateRentDue(ctx context.Context, leaseID string, req dto.RentDueRequest, actor domain.Actor) (*dto.RentDueResponse, error) {
	return ptrResult[dto.RentDueResponse](m.Called(ctx, leaseID, req, actor))
}
func (m *MockLeaseService) GetBillingSchedule(ctx context.Context, leaseID string, actor domain.Actor) (*dto.BillingScheduleResponse, error) {
	return ptrResult[dto.BillingScheduleResponse](m.Called(ctx, leaseID, actor))
}

var _ portssvc.LeaseSvcFacade = (*MockLeaseService)(nil)

// --- Mock master data services ---
type MockProjectService struct {
	mockWorkflow[domain.Project]
}

func (m *MockProjectService) CreateProject(ctx context.Context, req dto.ProjectRequest, actor domain.Actor) (*domain.Project, error) {
	return ptrResult[domain.Project](m.Called(ctx, req, actor))
}
func (m *MockProjectService) UpdateProject(ctx context.Context, projectID string, req dto.ProjectRequest, actor domain.Actor) (*domain.Project, error) {
	return ptrResult[domain.Project](m.Called(ctx, projectID, req, actor))
}
func (m *MockProjectService) GetProjectByID(ctx context.Context, projectID string, actor domain.Actor) (*domain.Project, error) {
	return ptrResult[domain.Project](m.Called(ctx, projectID, actor))
}
func (m *MockProjectService) ListProjects(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Project, error) {
	args := m.Called(ctx, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

type MockUnitService struct {
	mockWorkflow[domain.Unit]
}

func (m *MockUnitService) CreateUnit(ctx context.Context, req dto.UnitRequest, actor domain.Actor) (*domain.Unit, error) {
	return ptrResult[domain.Unit](m.Called(ctx, req, actor))
}
func (m *MockUnitService) UpdateUnit(ctx context.Context, unitID string, req dto.UnitRequest, actor domain.Actor) (*domain.Unit, error) {
	return ptrResult[domain.Unit](m.Called(ctx, unitID, req, actor))
}
func (m *MockUnitService) GetUnitByID(ctx context.Context, unitID string, actor domain.Actor) (*domain.Unit, error) {
	return ptrResult[domain.Unit](m.Called(ctx, unitID, actor))
}
func (m *MockUnitService) ListUnits(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Unit, error) {
	args := m.Called(ctx, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

var _ portssvc.UnitSvcFacade = (*MockUnitService)(nil)

type MockPartyService struct {
	mockWorkflow[domain.Party]
}

func (m *MockPartyService) CreateParty(ctx context.Context, req dto.PartyRequest, actor domain.Actor) (*domain.Party, error) {
	return ptrResult[domain.Party](m.Called(ctx, req, actor))
}
func (m *MockPartyService) UpdateParty(ctx context.Context, partyID string, req dto.PartyRequest, actor domain.Actor) (*domain.Party, error) {
	return ptrResult[domain.Party](m.Called(ctx, partyID, req, actor))
}
func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string, actor domain.Actor) (*domain.Party, error) {
	return ptrResult[domain.Party](m.Called(ctx, partyID, actor))
}
func (m *MockPartyService) ListParties(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Party, error) {
	args := m.Called(ctx, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

// --- Mock OwnershipService ---
type MockOwnershipService struct {
	mock.Mock
}

func (m *MockOwnershipService) AssignOwnership(ctx context.Context, req dto.AssignOwnershipRequest, actor domain.Actor) (*domain.OwnershipRecord, error) {
	return ptrResult[domain.OwnershipRecord](m.Called(ctx, req, actor))
}
func (m *MockOwnershipService) RemoveOwnership(ctx context.Context, req dto.RemoveOwnershipRequest, actor domain.Actor) (*domain.OwnershipRecord, error) {
	return ptrResult[domain.OwnershipRecord](m.Called(ctx, req, actor))
}
func (m *MockOwnershipService) ListOwnershipHistory(ctx context.Context, unitID string, actor domain.Actor) ([]domain.OwnershipRecord, error) {
	args := m.Called(ctx, unitID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnershipRecord), args.Error(1)
}

var _ portssvc.OwnershipSvcFacade = (*MockOwnershipService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return ptrResult[domain.User](m.Called(ctx, userID))
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return ptrResult[domain.User](m.Called(ctx, username))
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actor domain.Actor) (*domain.User, error) {
	return ptrResult[domain.User](m.Called(ctx, req, actor))
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.Actor) (*domain.User, error) {
	return ptrResult[domain.User](m.Called(ctx, userID, req, actor))
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, actor domain.Actor) error {
	return m.Called(ctx, userID, actor).Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	return ptrResult[domain.User](m.Called(ctx, username, password))
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	return ptrResult[domain.Currency](m.Called(ctx, currencyCode))
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actor domain.Actor) (*domain.Currency, error) {
	return ptrResult[domain.Currency](m.Called(ctx, req, actor))
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)
