package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	repo    *MockLedgerRepository
	cache   *MockReportCache
	service portssvc.LedgerSvcFacade
	ctx     context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.repo = new(MockLedgerRepository)
	suite.cache = new(MockReportCache)
	suite.ctx = context.Background()
	suite.service = services.NewLedgerService(
		suite.repo,
		services.WithSalespeople(domain.SalespersonRoster{"Ana Ruiz", "Luis Herrera"}),
		services.WithLedgerReportCache(suite.cache),
	)
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.repo.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func incomeRequest(amount string) dto.CreateLedgerEntryRequest {
	return dto.CreateLedgerEntryRequest{
		Date:           time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Type:           domain.Income,
		IncomeCategory: "Venta de Software",
		Amount:         decimal.RequireFromString(amount),
	}
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_IncomeWithCommission() {
	req := incomeRequest("500")
	req.AppliesCommission = true
	salesperson := " Ana Ruiz "
	req.Salesperson = &salesperson

	suite.repo.On("SaveEntry", suite.ctx,
		mock.MatchedBy(func(e domain.LedgerEntry) bool {
			return e.ID != "" && e.CommissionAmount != nil && e.CommissionAmount.Equal(decimal.NewFromInt(20))
		}),
		mock.MatchedBy(func(c *domain.Commission) bool {
			return c != nil && c.Amount.Equal(decimal.NewFromInt(20)) && c.Salesperson == "Ana Ruiz" && !c.Paid
		}),
	).Return(nil).Once()
	suite.cache.On("Invalidate", suite.ctx).Return(nil).Once()

	recorded, err := suite.service.RecordEntry(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(recorded.Commission)
	suite.Equal(recorded.Entry.ID, recorded.Commission.LedgerEntryID)
	suite.Equal("user-1", recorded.Entry.CreatedBy)
	suite.Equal(recorded.Entry.Date, recorded.Commission.Date)
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_IncomeWithoutCommission() {
	req := incomeRequest("1000")

	suite.repo.On("SaveEntry", suite.ctx,
		mock.MatchedBy(func(e domain.LedgerEntry) bool { return e.CommissionAmount == nil && e.Salesperson == nil }),
		mock.MatchedBy(func(c *domain.Commission) bool { return c == nil }),
	).Return(nil).Once()
	suite.cache.On("Invalidate", suite.ctx).Return(nil).Once()

	recorded, err := suite.service.RecordEntry(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Nil(recorded.Commission)
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_SalespersonNotOnRoster() {
	req := incomeRequest("500")
	req.AppliesCommission = true
	unknown := "Pedro Picapiedra"
	req.Salesperson = &unknown

	_, err := suite.service.RecordEntry(suite.ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.repo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_InvalidEntry() {
	req := dto.CreateLedgerEntryRequest{
		Date:            time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Type:            domain.Expense,
		ExpenseCategory: "Hosting",
		Amount:          decimal.NewFromInt(-5),
	}

	_, err := suite.service.RecordEntry(suite.ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Contains(err.Error(), "amount must be positive")
}

func (suite *LedgerServiceTestSuite) TestRecordEntry_RepositoryError() {
	suite.repo.On("SaveEntry", suite.ctx, mock.Anything, mock.Anything).Return(fmt.Errorf("connection reset")).Once()

	_, err := suite.service.RecordEntry(suite.ctx, incomeRequest("10"), "user-1")

	suite.Require().Error(err)
	suite.Contains(err.Error(), "connection reset")
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_NotFound() {
	suite.repo.On("DeleteEntry", suite.ctx, "missing").Return(apperrors.NewNotFoundError("ledger entry missing not found")).Once()

	err := suite.service.DeleteEntry(suite.ctx, "missing", "user-1")

	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *LedgerServiceTestSuite) TestMarkCommissionPaid() {
	paidAt := time.Now()
	suite.repo.On("MarkCommissionPaid", suite.ctx, "c-1", mock.AnythingOfType("time.Time"), "user-1").Return(nil).Once()
	suite.repo.On("FindCommissionByID", suite.ctx, "c-1").
		Return(&domain.Commission{CommissionID: "c-1", Paid: true, PaidAt: &paidAt}, nil).Once()
	suite.cache.On("Invalidate", suite.ctx).Return(nil).Once()

	c, err := suite.service.MarkCommissionPaid(suite.ctx, "c-1", "user-1")

	suite.Require().NoError(err)
	suite.True(c.Paid)
}

func (suite *LedgerServiceTestSuite) TestMarkCommissionPaid_AlreadyPaid() {
	suite.repo.On("MarkCommissionPaid", suite.ctx, "c-1", mock.AnythingOfType("time.Time"), "user-1").
		Return(fmt.Errorf("%w: commission c-1 is already paid", apperrors.ErrInvalidTransition)).Once()

	_, err := suite.service.MarkCommissionPaid(suite.ctx, "c-1", "user-1")

	suite.True(errors.Is(err, apperrors.ErrInvalidTransition))
}

func (suite *LedgerServiceTestSuite) TestListEntries_PassesFilter() {
	token := "abc"
	income := domain.Income
	suite.repo.On("ListEntries", suite.ctx, mock.MatchedBy(func(f domain.LedgerFilter) bool {
		return f.Limit == 25 && f.Type != nil && *f.Type == income &&
			f.Period.From != nil && f.Period.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.NextToken == &token
	})).Return([]domain.LedgerEntry{{ID: "e-1"}}, nil, nil).Once()

	resp, err := suite.service.ListEntries(suite.ctx, dto.ListLedgerEntriesParams{
		From: "2024-01-01", Type: "income", Limit: 25, NextToken: &token,
	})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.Nil(resp.NextToken)
}

func (suite *LedgerServiceTestSuite) TestListEntries_InvalidParams() {
	_, err := suite.service.ListEntries(suite.ctx, dto.ListLedgerEntriesParams{From: "10/01/2024"})
	suite.True(errors.Is(err, apperrors.ErrValidation))

	_, err = suite.service.ListEntries(suite.ctx, dto.ListLedgerEntriesParams{From: "2024-02-01", To: "2024-01-01"})
	suite.True(errors.Is(err, apperrors.ErrValidation))

	_, err = suite.service.ListEntries(suite.ctx, dto.ListLedgerEntriesParams{Type: "transfer"})
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *LedgerServiceTestSuite) TestSalespeople() {
	suite.Equal(domain.SalespersonRoster{"Ana Ruiz", "Luis Herrera"}, suite.service.Salespeople())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
