package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/SscSPs/lease_management_app/internal/utils"
	"github.com/SscSPs/lease_management_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultLeasePageSize = 20

// leaseService implements LeaseSvcFacade. Workflow methods come from the
// embedded approvalWorkflow.
type leaseService struct {
	*approvalWorkflow[domain.Lease, *domain.Lease]
	leaseRepo    portsrepo.LeaseRepositoryFacade
	unitRepo     portsrepo.UnitRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	rules        domain.LeaseRules
	calculator   domain.RentCalculator
}

// LeaseServiceOption is a functional option for configuring the lease service
type LeaseServiceOption func(*leaseService)

// WithEventPublisher publishes committed workflow transitions.
func WithEventPublisher(p ports.ApprovalEventPublisher) LeaseServiceOption {
	return func(s *leaseService) { s.publisher = p }
}

// WithMetrics records workflow and rent calculation metrics.
func WithMetrics(m ports.WorkflowMetrics) LeaseServiceOption {
	return func(s *leaseService) { s.metrics = m }
}

// WithLeaseRules replaces the default validation rules.
func WithLeaseRules(rules domain.LeaseRules) LeaseServiceOption {
	return func(s *leaseService) { s.rules = rules }
}

// WithHybridPolicy selects how hybrid rent is combined.
func WithHybridPolicy(policy domain.HybridPolicy) LeaseServiceOption {
	return func(s *leaseService) { s.calculator.Hybrid = policy }
}

// WithUnitRepository enables the unit-belongs-to-project check.
func WithUnitRepository(repo portsrepo.UnitRepositoryFacade) LeaseServiceOption {
	return func(s *leaseService) { s.unitRepo = repo }
}

// WithCurrencyRepository enables the currency master check and display precision.
func WithCurrencyRepository(repo portsrepo.CurrencyReader) LeaseServiceOption {
	return func(s *leaseService) { s.currencyRepo = repo }
}

// WithClock fixes the service's notion of now.
func WithClock(now func() time.Time) LeaseServiceOption {
	return func(s *leaseService) { s.Now = now }
}

// NewLeaseService creates a new lease service with the provided options
func NewLeaseService(repo portsrepo.LeaseRepositoryFacade, options ...LeaseServiceOption) portssvc.LeaseSvcFacade {
	svc := &leaseService{
		leaseRepo:  repo,
		rules:      domain.DefaultLeaseRules(),
		calculator: domain.RentCalculator{Hybrid: domain.HybridSum},
	}
	svc.approvalWorkflow = &approvalWorkflow[domain.Lease, *domain.Lease]{
		entity:      domain.EntityLease,
		load:        repo.FindLeaseByID,
		saveState:   func(ctx context.Context, l *domain.Lease, v int64) error { return repo.UpdateLeaseApproval(ctx, *l, v) },
		saveContent: func(ctx context.Context, l *domain.Lease, v int64) error { return repo.UpdateLease(ctx, *l, v) },
		validate:    svc.validateLease,
	}

	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure leaseService implements the LeaseSvcFacade interface
var _ portssvc.LeaseSvcFacade = (*leaseService)(nil)

// validateLease runs the domain invariants and the reference checks that
// need a repository, reporting every violation together.
func (s *leaseService) validateLease(ctx context.Context, l *domain.Lease) error {
	ve := &apperrors.ValidationError{}
	if err := l.ValidateWith(s.rules); err != nil && !errors.As(err, &ve) {
		return err
	}

	if s.unitRepo != nil && l.UnitID != "" {
		unit, err := s.unitRepo.FindUnitByID(ctx, l.UnitID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			ve.Add("unit_id", l.UnitID, "does not exist")
		case err != nil:
			return err
		case l.ProjectID != "" && unit.ProjectID != l.ProjectID:
			ve.Add("unit_id", l.UnitID, "does not belong to project "+l.ProjectID)
		}
	}
	if s.currencyRepo != nil && !ve.HasField("currency") {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, l.Currency); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			ve.Add("currency", l.Currency, "is not a configured currency")
		}
	}
	return ve.OrNil()
}

func (s *leaseService) CreateLease(ctx context.Context, req dto.CreateLeaseRequest, actor domain.Actor) (*domain.Lease, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityEdit); err != nil {
		return nil, err
	}

	now := s.now()
	lease := domain.Lease{
		LeaseID:     uuid.NewString(),
		Revision:    1,
		Approval:    domain.NewDraftApproval(),
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}
	req.ApplyTo(&lease)

	if err := s.validateLease(ctx, &lease); err != nil {
		s.LogInfo(ctx, "Lease rejected by validation", slog.String("error", err.Error()))
		return nil, err
	}
	if err := s.leaseRepo.SaveLease(ctx, lease); err != nil {
		s.LogError(ctx, err, "Failed to save lease", slog.String("lease_id", lease.LeaseID))
		return nil, err
	}

	s.LogInfo(ctx, "Lease created successfully",
		slog.String("lease_id", lease.LeaseID),
		slog.String("unit_id", lease.UnitID))
	return &lease, nil
}

func (s *leaseService) UpdateLease(ctx context.Context, leaseID string, req dto.UpdateLeaseRequest, actor domain.Actor) (*domain.Lease, error) {
	current, err := s.leaseRepo.FindLeaseByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.StatusApproved {
		return s.createRevision(ctx, current, req, actor)
	}

	return s.Edit(ctx, leaseID, req.Version, actor, func(l *domain.Lease) error {
		req.ApplyTo(l)
		return s.validateLease(ctx, l)
	})
}

// createRevision records changed terms of an approved lease as a new lease
// that goes straight to review. The approved lease stays in force until the
// revision is approved, at which point it is marked superseded.
func (s *leaseService) createRevision(ctx context.Context, current *domain.Lease, req dto.UpdateLeaseRequest, actor domain.Actor) (*domain.Lease, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityEdit); err != nil {
		return nil, err
	}
	if req.Version != nil && *req.Version != current.Version {
		return nil, apperrors.NewAppError(http.StatusConflict,
			fmt.Sprintf("lease %s is at version %d, not %d", current.LeaseID, current.Version, *req.Version),
			apperrors.ErrStaleVersion)
	}
	if current.SupersededByID != "" {
		return nil, apperrors.NewConflictError(fmt.Sprintf(
			"lease %s has been superseded by %s; edit the latest revision", current.LeaseID, current.SupersededByID))
	}

	now := s.now()
	revision := domain.Lease{
		LeaseID:            uuid.NewString(),
		Revision:           current.Revision + 1,
		PreviousRevisionID: current.LeaseID,
		Approval: domain.Approval{
			Status:      domain.StatusPendingApproval,
			SubmittedBy: actor.UserID,
			SubmittedAt: &now,
		},
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}
	req.ApplyTo(&revision)

	if err := s.validateLease(ctx, &revision); err != nil {
		s.observe(domain.EventSubmit, err)
		return nil, err
	}
	// A second open revision of the same lease violates uq_leases_previous_revision.
	if err := s.leaseRepo.SaveLease(ctx, revision); err != nil {
		s.LogError(ctx, err, "Failed to save lease revision",
			slog.String("lease_id", current.LeaseID),
			slog.Int("revision", revision.Revision))
		s.observe(domain.EventSubmit, err)
		return nil, err
	}

	s.LogInfo(ctx, "Lease revision submitted",
		slog.String("lease_id", revision.LeaseID),
		slog.String("previous_revision_id", current.LeaseID),
		slog.Int("revision", revision.Revision))
	s.publish(ctx, domain.ApprovalEvent{
		EntityType: domain.EntityLease,
		EntityID:   revision.LeaseID,
		Event:      domain.EventSubmit,
		From:       domain.StatusDraft,
		To:         domain.StatusPendingApproval,
		ActorID:    actor.UserID,
		Version:    revision.Version,
		OccurredAt: now,
	})
	s.observe(domain.EventSubmit, nil)
	return &revision, nil
}

func (s *leaseService) GetLeaseByID(ctx context.Context, leaseID string, actor domain.Actor) (*domain.Lease, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}
	lease, err := s.leaseRepo.FindLeaseByID(ctx, leaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load lease", slog.String("lease_id", leaseID))
		}
		return nil, err
	}
	return lease, nil
}

func (s *leaseService) ListLeases(ctx context.Context, params dto.ListLeasesParams, actor domain.Actor) (*dto.ListLeasesResponse, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLeasePageSize
	}
	filter := portsrepo.LeaseFilter{
		Status:    domain.ApprovalStatus(params.Status),
		ProjectID: params.ProjectID,
		UnitID:    params.UnitID,
		Limit:     limit + 1, // one extra row tells us whether a next page exists
	}
	if params.NextToken != "" {
		createdAt, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("next_token", params.NextToken, "is not a valid page token")
		}
		filter.AfterCreatedAt = &createdAt
		filter.AfterID = id
	}

	leases, err := s.leaseRepo.ListLeases(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leases")
		return nil, err
	}

	var nextToken *string
	if len(leases) > limit {
		leases = leases[:limit]
		last := leases[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.LeaseID)
		nextToken = &token
	}
	resp := dto.ToListLeasesResponse(leases, nextToken)
	return &resp, nil
}

func (s *leaseService) GetEffectiveTerms(ctx context.Context, leaseID string, asOf domain.Date, actor domain.Actor) (*dto.LeaseTermsResponse, error) {
	if asOf.IsZero() {
		return nil, apperrors.NewValidationError("as_of", nil, "is required")
	}
	lease, err := s.GetLeaseByID(ctx, leaseID, actor)
	if err != nil {
		return nil, err
	}
	terms, err := domain.EffectiveTermsAsOf(lease, asOf)
	if err != nil {
		return nil, err
	}
	resp := dto.ToLeaseTermsResponse(lease, asOf, terms)
	return &resp, nil
}

func (s *leaseService) CalculateRentDue(ctx context.Context, leaseID string, req dto.RentDueRequest, actor domain.Actor) (*dto.RentDueResponse, error) {
	ve := &apperrors.ValidationError{}
	if req.PeriodStart.IsZero() {
		ve.Add("period_start", nil, "is required")
	}
	if req.PeriodEnd.IsZero() {
		ve.Add("period_end", nil, "is required")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	lease, err := s.GetLeaseByID(ctx, leaseID, actor)
	if err != nil {
		return nil, err
	}

	var revenue *domain.Money
	if req.ReportedRevenue != nil {
		currency := req.ReportedRevenueCurrency
		if currency == "" {
			currency = lease.Currency
		}
		m := domain.NewMoney(*req.ReportedRevenue, currency)
		revenue = &m
	}

	started := time.Now()
	due, err := s.calculator.RentDueFor(lease, domain.Period{Start: req.PeriodStart, End: req.PeriodEnd}, revenue)
	if s.metrics != nil {
		s.metrics.ObserveRentCalculation(lease.RentModel, time.Since(started))
	}
	if err != nil {
		s.LogInfo(ctx, "Rent calculation failed",
			slog.String("lease_id", leaseID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.RentDueResponse{
		LeaseID:     lease.LeaseID,
		RentModel:   string(lease.RentModel),
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		AmountDue:   due.Amount,
		Currency:    due.Currency,
		Display:     utils.FormatMoney(due, s.currencyFor(ctx, due.Currency)),
	}, nil
}

func (s *leaseService) GetBillingSchedule(ctx context.Context, leaseID string, actor domain.Actor) (*dto.BillingScheduleResponse, error) {
	lease, err := s.GetLeaseByID(ctx, leaseID, actor)
	if err != nil {
		return nil, err
	}
	lines, err := s.calculator.BillingSchedule(lease)
	if err != nil {
		return nil, err
	}
	resp := dto.ToBillingScheduleResponse(lease, lines)
	return &resp, nil
}

// currencyFor looks up display precision. Unknown currencies format with
// the default precision.
func (s *leaseService) currencyFor(ctx context.Context, code string) *domain.Currency {
	if s.currencyRepo == nil {
		return nil
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		s.LogDebug(ctx, "Currency lookup failed, using default precision", slog.String("currency", code))
		return nil
	}
	return currency
}
