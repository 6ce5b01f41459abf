package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the currency master service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actor domain.Actor) (*domain.Currency, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityAdmin); err != nil {
		return nil, err
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err == nil {
		return nil, apperrors.NewConflictError("currency " + req.CurrencyCode + " already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	precision := domain.DefaultCurrencyPrecision
	if req.Precision != nil {
		precision = *req.Precision
	}
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Precision:    precision,
		AuditFields:  domain.NewAuditFields(actor.UserID, s.now()),
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", req.CurrencyCode))
		return nil, err
	}

	s.LogInfo(ctx, "Currency created successfully", slog.String("currency_code", currency.CurrencyCode))
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, err
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
