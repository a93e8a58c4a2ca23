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

type PayrollServiceTestSuite struct {
	suite.Suite
	repo      *MockPayrollRepository
	employees *MockCRUDRepository[domain.Employee]
	service   portssvc.PayrollSvcFacade
	ctx       context.Context
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.repo = new(MockPayrollRepository)
	suite.employees = new(MockCRUDRepository[domain.Employee])
	suite.ctx = context.Background()
	suite.service = services.NewPayrollService(suite.repo, services.WithEmployeeReader(suite.employees))
}

func (suite *PayrollServiceTestSuite) TearDownTest() {
	suite.repo.AssertExpectations(suite.T())
	suite.employees.AssertExpectations(suite.T())
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func pendingRecord() *domain.PayrollRecord {
	return &domain.PayrollRecord{
		PayrollID:   "p-1",
		EmployeeID:  "emp-1",
		PeriodStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		BaseSalary:  decimal.NewFromInt(1000),
		Bonuses:     decimal.NewFromInt(200),
		Deductions:  decimal.NewFromInt(50),
		NetSalary:   decimal.NewFromInt(1150),
		Status:      domain.PayrollPending,
	}
}

func (suite *PayrollServiceTestSuite) TestCreatePayroll_ComputesNet() {
	req := dto.CreatePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		BaseSalary:  decimal.NewFromInt(1000),
		Bonuses:     decPtr("200"),
		Deductions:  decPtr("50"),
	}
	suite.employees.On("FindByID", suite.ctx, "emp-1").Return(&domain.Employee{ID: "emp-1"}, nil).Once()
	suite.repo.On("SavePayroll", suite.ctx, mock.MatchedBy(func(r domain.PayrollRecord) bool {
		return r.NetSalary.Equal(decimal.NewFromInt(1150)) && r.Status == domain.PayrollPending && r.PayrollID != ""
	})).Return(nil).Once()

	rec, err := suite.service.CreatePayroll(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1150).Equal(rec.NetSalary))
	suite.Equal("user-1", rec.CreatedBy)
}

func (suite *PayrollServiceTestSuite) TestCreatePayroll_UnknownEmployee() {
	suite.employees.On("FindByID", suite.ctx, "ghost").Return(nil, apperrors.NewNotFoundError("employee ghost not found")).Once()

	_, err := suite.service.CreatePayroll(suite.ctx, dto.CreatePayrollRequest{
		EmployeeID:  "ghost",
		PeriodStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		BaseSalary:  decimal.NewFromInt(1000),
	}, "user-1")

	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *PayrollServiceTestSuite) TestUpdatePayroll_RecomputesNet() {
	suite.repo.On("FindPayrollByID", suite.ctx, "p-1").Return(pendingRecord(), nil).Once()
	suite.repo.On("UpdatePayroll", suite.ctx, mock.MatchedBy(func(r domain.PayrollRecord) bool {
		return r.NetSalary.Equal(decimal.NewFromInt(1450)) && r.LastUpdatedBy == "user-2"
	}), domain.PayrollPending).Return(nil).Once()

	rec, err := suite.service.UpdatePayroll(suite.ctx, "p-1", dto.UpdatePayrollRequest{Bonuses: decPtr("500")}, "user-2")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1450).Equal(rec.NetSalary))
}

func (suite *PayrollServiceTestSuite) TestUpdatePayroll_RejectsTerminalRecord() {
	rec := pendingRecord()
	rec.Status = domain.PayrollPaid
	suite.repo.On("FindPayrollByID", suite.ctx, "p-1").Return(rec, nil).Once()

	_, err := suite.service.UpdatePayroll(suite.ctx, "p-1", dto.UpdatePayrollRequest{Bonuses: decPtr("1")}, "user-1")

	suite.True(errors.Is(err, apperrors.ErrInvalidTransition))
}

func (suite *PayrollServiceTestSuite) TestTransitionStatus_PaidSetsPaymentDate() {
	suite.repo.On("FindPayrollByID", suite.ctx, "p-1").Return(pendingRecord(), nil).Once()
	suite.repo.On("UpdatePayroll", suite.ctx, mock.MatchedBy(func(r domain.PayrollRecord) bool {
		return r.Status == domain.PayrollPaid && r.PaymentDate != nil
	}), domain.PayrollPending).Return(nil).Once()

	rec, err := suite.service.TransitionStatus(suite.ctx, "p-1", dto.PayrollStatusRequest{Status: domain.PayrollPaid}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.PayrollPaid, rec.Status)
	suite.NotNil(rec.PaymentDate)
}

func (suite *PayrollServiceTestSuite) TestTransitionStatus_IllegalTransitions() {
	cases := []struct {
		from domain.PayrollStatus
		to   domain.PayrollStatus
	}{
		{domain.PayrollPaid, domain.PayrollPending},
		{domain.PayrollCancelled, domain.PayrollPaid},
		{domain.PayrollPending, domain.PayrollPending},
	}
	for _, tc := range cases {
		rec := pendingRecord()
		rec.Status = tc.from
		suite.repo.On("FindPayrollByID", suite.ctx, "p-1").Return(rec, nil).Once()

		_, err := suite.service.TransitionStatus(suite.ctx, "p-1", dto.PayrollStatusRequest{Status: tc.to}, "user-1")

		suite.True(errors.Is(err, apperrors.ErrInvalidTransition), "%s -> %s", tc.from, tc.to)
	}
	suite.repo.AssertNotCalled(suite.T(), "UpdatePayroll", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestUpdatePayroll_CancelledInBetween() {
	suite.repo.On("FindPayrollByID", suite.ctx, "p-1").Return(pendingRecord(), nil).Once()
	suite.repo.On("UpdatePayroll", suite.ctx, mock.AnythingOfType("domain.PayrollRecord"), domain.PayrollPending).
		Return(fmt.Errorf("%w: payroll record p-1 is now Cancelado, expected Pendiente", apperrors.ErrInvalidTransition)).Once()

	_, err := suite.service.UpdatePayroll(suite.ctx, "p-1", dto.UpdatePayrollRequest{Bonuses: decPtr("500")}, "user-2")

	suite.True(errors.Is(err, apperrors.ErrInvalidTransition))
}

func (suite *PayrollServiceTestSuite) TestTransitionStatus_ExpectsStatusItRead() {
	suite.repo.On("FindPayrollByID", suite.ctx, "p-1").Return(pendingRecord(), nil).Once()
	suite.repo.On("UpdatePayroll", suite.ctx, mock.MatchedBy(func(r domain.PayrollRecord) bool {
		return r.Status == domain.PayrollCancelled
	}), domain.PayrollPending).
		Return(fmt.Errorf("%w: payroll record p-1 is now Pagado, expected Pendiente", apperrors.ErrInvalidTransition)).Once()

	_, err := suite.service.TransitionStatus(suite.ctx, "p-1", dto.PayrollStatusRequest{Status: domain.PayrollCancelled}, "user-1")

	suite.True(errors.Is(err, apperrors.ErrInvalidTransition))
}

func (suite *PayrollServiceTestSuite) TestPreviewNet() {
	resp := suite.service.PreviewNet(dto.PayrollPreviewRequest{BaseSalary: decimal.NewFromInt(800)})
	suite.True(decimal.NewFromInt(800).Equal(resp.NetSalary))

	resp = suite.service.PreviewNet(dto.PayrollPreviewRequest{
		BaseSalary: decimal.NewFromInt(100),
		Deductions: decPtr("150"),
	})
	suite.True(decimal.NewFromInt(-50).Equal(resp.NetSalary))
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
