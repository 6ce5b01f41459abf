package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

// --- Mock UnitRepository ---
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockUnitRepository) ListUnits(ctx context.Context, filter portsrepo.MasterDataFilter) ([]domain.Unit, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

func (m *MockUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) UpdateUnit(ctx context.Context, unit domain.Unit, expectedVersion int64) error {
	args := m.Called(ctx, unit, expectedVersion)
	return args.Error(0)
}

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, filter portsrepo.MasterDataFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project, expectedVersion int64) error {
	args := m.Called(ctx, project, expectedVersion)
	return args.Error(0)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, filter portsrepo.MasterDataFilter) ([]domain.Party, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party, expectedVersion int64) error {
	args := m.Called(ctx, party, expectedVersion)
	return args.Error(0)
}

// --- Mock OwnershipRepository ---
type MockOwnershipRepository struct {
	mock.Mock
}

func (m *MockOwnershipRepository) FindActiveOwnership(ctx context.Context, unitID string) (*domain.OwnershipRecord, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnershipRecord), args.Error(1)
}

func (m *MockOwnershipRepository) ListOwnershipByUnit(ctx context.Context, unitID string) ([]domain.OwnershipRecord, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnershipRecord), args.Error(1)
}

func (m *MockOwnershipRepository) SaveOwnership(ctx context.Context, record domain.OwnershipRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOwnershipRepository) EndOwnership(ctx context.Context, record domain.OwnershipRecord, expectedVersion int64) error {
	args := m.Called(ctx, record, expectedVersion)
	return args.Error(0)
}

// --- Mock ApprovalEventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.ApprovalEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// recordingMetrics counts observations by outcome.
type recordingMetrics struct {
	mu          sync.Mutex
	transitions map[string]int
	casRetries  int
	rentCalcs   int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{transitions: map[string]int{}}
}

func (r *recordingMetrics) ObserveTransition(entity domain.EntityType, event domain.WorkflowEvent, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions[fmt.Sprintf("%s/%s/%s", entity, event, outcome)]++
}

func (r *recordingMetrics) ObserveCASRetry(domain.EntityType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.casRetries++
}

func (r *recordingMetrics) ObserveRentCalculation(domain.RentModel, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rentCalcs++
}

func (r *recordingMetrics) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transitions[key]
}

// memLeaseStore is an in-memory LeaseRepositoryFacade that honours the
// compare-and-swap contract of the pgsql repository.
type memLeaseStore struct {
	mu     sync.Mutex
	leases map[string]domain.Lease
	// beforeWrite, when set, runs inside UpdateLeaseApproval before the
	// version check. Tests use it to interleave a competing writer.
	beforeWrite func()
}

func newMemLeaseStore(leases ...domain.Lease) *memLeaseStore {
	s := &memLeaseStore{leases: map[string]domain.Lease{}}
	for _, l := range leases {
		s.leases[l.LeaseID] = cloneLease(l)
	}
	return s
}

func cloneLease(l domain.Lease) domain.Lease {
	l.Escalations = append([]domain.EscalationStep(nil), l.Escalations...)
	return l
}

func (s *memLeaseStore) get(id string) domain.Lease {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLease(s.leases[id])
}

func (s *memLeaseStore) FindLeaseByID(_ context.Context, id string) (*domain.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leases[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("lease " + id + " not found")
	}
	c := cloneLease(l)
	return &c, nil
}

func (s *memLeaseStore) ListLeases(_ context.Context, f portsrepo.LeaseFilter) ([]domain.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Lease
	for _, l := range s.leases {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.ProjectID != "" && l.ProjectID != f.ProjectID {
			continue
		}
		if f.UnitID != "" && l.UnitID != f.UnitID {
			continue
		}
		if f.AfterCreatedAt != nil {
			if l.CreatedAt.After(*f.AfterCreatedAt) ||
				(l.CreatedAt.Equal(*f.AfterCreatedAt) && l.LeaseID >= f.AfterID) {
				continue
			}
		}
		out = append(out, cloneLease(l))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].LeaseID > out[j].LeaseID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *memLeaseStore) SaveLease(_ context.Context, l domain.Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.PreviousRevisionID != "" {
		for _, other := range s.leases {
			if other.PreviousRevisionID == l.PreviousRevisionID {
				return apperrors.NewConflictError("revision already exists")
			}
		}
	}
	s.leases[l.LeaseID] = cloneLease(l)
	return nil
}

func (s *memLeaseStore) UpdateLease(_ context.Context, l domain.Lease, expected int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.casLocked(l, expected)
}

func (s *memLeaseStore) UpdateLeaseApproval(_ context.Context, l domain.Lease, expected int64) error {
	if s.beforeWrite != nil {
		hook := s.beforeWrite
		s.beforeWrite = nil
		hook()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.casLocked(l, expected); err != nil {
		return err
	}
	if l.Status == domain.StatusApproved && l.PreviousRevisionID != "" {
		prev := s.leases[l.PreviousRevisionID]
		prev.SupersededByID = l.LeaseID
		prev.Version++
		s.leases[prev.LeaseID] = prev
	}
	return nil
}

func (s *memLeaseStore) casLocked(l domain.Lease, expected int64) error {
	current, ok := s.leases[l.LeaseID]
	if !ok {
		return apperrors.NewNotFoundError("lease " + l.LeaseID + " not found")
	}
	if current.Version != expected {
		return apperrors.NewAppError(409, "lease was modified concurrently", apperrors.ErrStaleVersion)
	}
	s.leases[l.LeaseID] = cloneLease(l)
	return nil
}
