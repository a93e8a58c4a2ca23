package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/platform/cache"
	"github.com/SscSPs/backoffice_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// ledgerService records income and expenses and owns the commission lifecycle.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	salespeople domain.SalespersonRoster
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithSalespeople sets the roster commissions may be attributed to.
func WithSalespeople(roster domain.SalespersonRoster) LedgerServiceOption {
	return func(s *ledgerService) {
		s.salespeople = roster
	}
}

// WithLedgerReportCache sets the cache invalidated after every ledger write.
func WithLedgerReportCache(c cache.ReportCache) LedgerServiceOption {
	return func(s *ledgerService) {
		s.reportCache = c
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: newBaseService(nil),
		ledgerRepo:  repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RecordEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.RecordedEntry, error) {
	entry := req.ToDomain()
	if err := validateEntity(nil, entry); err != nil {
		return nil, err
	}

	var commission *domain.Commission
	if entry.Type == domain.Income && entry.AppliesCommission {
		if !s.salespeople.Contains(*entry.Salesperson) {
			return nil, fmt.Errorf("%w: salesperson %q is not on the roster", apperrors.ErrValidation, *entry.Salesperson)
		}
		salesperson := strings.TrimSpace(*entry.Salesperson)
		entry.Salesperson = &salesperson
		amount := accounting.ComputeCommission(entry.Amount)
		entry.CommissionAmount = &amount
	} else {
		entry.AppliesCommission = false
		entry.Salesperson = nil
		entry.CommissionAmount = nil
	}

	now := s.Now()
	entry.ID = uuid.NewString()
	entry.Stamp(userID, now)

	if entry.CommissionAmount != nil {
		commission = &domain.Commission{
			CommissionID:    uuid.NewString(),
			LedgerEntryID:   entry.ID,
			Date:            entry.Date,
			Salesperson:     *entry.Salesperson,
			Amount:          *entry.CommissionAmount,
			RelatedClientID: entry.ClientID,
		}
		commission.Stamp(userID, now)
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry, commission); err != nil {
		s.LogError(ctx, err, "Failed to record ledger entry",
			slog.String("entry_type", string(entry.Type)), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to record ledger entry: %w", err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Ledger entry recorded",
		slog.String("entry_id", entry.ID),
		slog.String("entry_type", string(entry.Type)),
		slog.Bool("commission", commission != nil))
	return &domain.RecordedEntry{Entry: entry, Commission: commission}, nil
}

func (s *ledgerService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}
	s.InvalidateReports(ctx)
	s.LogInfo(ctx, "Ledger entry deleted", slog.String("entry_id", entryID), slog.String("user_id", userID))
	return nil
}

func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntryByID(ctx, entryID)
}

func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	period, err := parsePeriod(params.From, params.To)
	if err != nil {
		return nil, err
	}
	filter := domain.LedgerFilter{
		Period:    period,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if params.Type != "" {
		t := domain.EntryType(params.Type)
		if !t.IsValid() {
			return nil, apperrors.NewValidationError("type must be income or expense")
		}
		filter.Type = &t
	}

	entries, next, err := s.ledgerRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, err
	}
	return &dto.ListLedgerEntriesResponse{Entries: entries, NextToken: next}, nil
}

func (s *ledgerService) ListCommissions(ctx context.Context, paid *bool, period domain.Period) ([]domain.Commission, error) {
	return s.ledgerRepo.ListCommissions(ctx, paid, period)
}

func (s *ledgerService) MarkCommissionPaid(ctx context.Context, commissionID string, userID string) (*domain.Commission, error) {
	if err := s.ledgerRepo.MarkCommissionPaid(ctx, commissionID, s.Now(), userID); err != nil {
		return nil, err
	}
	s.InvalidateReports(ctx)
	s.LogInfo(ctx, "Commission marked paid", slog.String("commission_id", commissionID), slog.String("user_id", userID))
	return s.ledgerRepo.FindCommissionByID(ctx, commissionID)
}

func (s *ledgerService) Salespeople() domain.SalespersonRoster {
	return s.salespeople
}

// parsePeriod turns optional YYYY-MM-DD bounds into an inclusive period.
func parsePeriod(from, to string) (domain.Period, error) {
	start, err := dto.ParseDateParam(from, false)
	if err != nil {
		return domain.Period{}, apperrors.NewValidationError("from must be YYYY-MM-DD")
	}
	end, err := dto.ParseDateParam(to, true)
	if err != nil {
		return domain.Period{}, apperrors.NewValidationError("to must be YYYY-MM-DD")
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.Period{}, apperrors.NewValidationError("to must not be before from")
	}
	return domain.Period{From: start, To: end}, nil
}
