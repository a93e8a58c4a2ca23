package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/handlers"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/utils/export"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	jwtSecret     string
	userID        string
	leads         *MockCRUDService[domain.Lead]
	clients       *MockClientService
	ledger        *MockLedgerService
	payroll       *MockPayrollService
	exchangeRates *MockExchangeRateService
	reporting     *MockReportingService
	notifications *MockNotificationService
}

// generateTestToken creates a signed JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "backoffice-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.leads = new(MockCRUDService[domain.Lead])
	suite.clients = new(MockClientService)
	suite.ledger = new(MockLedgerService)
	suite.payroll = new(MockPayrollService)
	suite.exchangeRates = new(MockExchangeRateService)
	suite.reporting = new(MockReportingService)
	suite.notifications = new(MockNotificationService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		JWTIssuer:    "backoffice-test",
		IsProduction: true,
	}
	container := &portssvc.ServiceContainer{
		Clients:       suite.clients,
		Leads:         suite.leads,
		Ledger:        suite.ledger,
		Payroll:       suite.payroll,
		ExchangeRate:  suite.exchangeRates,
		Reporting:     suite.reporting,
		Notifications: suite.notifications,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth_IsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestAPI_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.leads.AssertNotCalled(suite.T(), "List", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateLead_Success() {
	created := &domain.Lead{ID: uuid.NewString(), Name: "Acme", Status: "Nuevo"}
	suite.leads.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.Lead) bool {
		return l.Name == "Acme"
	}), suite.userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/leads", map[string]any{"name": "Acme"})

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.Lead
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(created.ID, got.ID)
	suite.Equal("Nuevo", got.Status)
	suite.leads.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateLead_ValidationError() {
	suite.leads.On("Create", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: Name is required", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/leads", map[string]any{"company": "Acme"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Name is required")
}

func (suite *HandlerTestSuite) TestGetLead_NotFound() {
	suite.leads.On("Get", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("lead missing not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/leads/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListLeads_DefaultPaging() {
	suite.leads.On("List", mock.Anything, domain.ListOptions{Limit: 50}).
		Return([]domain.Lead{{ID: "l1"}, {ID: "l2"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/leads", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListResponse[domain.Lead]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Items, 2)
	suite.Equal(50, got.Limit)
}

func (suite *HandlerTestSuite) TestListLeads_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/leads?from=01-02-2024", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.leads.AssertNotCalled(suite.T(), "List", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteLead_NoContent() {
	suite.leads.On("Delete", mock.Anything, "l1", suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/leads/l1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.leads.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestMarkProjectionPaid_AlreadyPaid() {
	suite.clients.On("MarkProjectionPaid", mock.Anything, "c1", 0, suite.userID).
		Return(nil, fmt.Errorf("%w: projection 0 already paid", apperrors.ErrInvalidTransition)).Once()

	w := suite.do(http.MethodPost, "/api/v1/clients/c1/projections/0/pay", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateLead_ConcurrentEditConflict() {
	suite.leads.On("Update", mock.Anything, "l1", mock.AnythingOfType("*domain.Lead"), suite.userID).
		Return(nil, fmt.Errorf("failed to update lead: %w", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPut, "/api/v1/leads/l1", map[string]any{"name": "Acme", "status": "Contactado"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "modified concurrently")
}

func (suite *HandlerTestSuite) TestMarkProjectionPaid_ConcurrentPayment() {
	suite.clients.On("MarkProjectionPaid", mock.Anything, "c1", 1, suite.userID).
		Return(nil, fmt.Errorf("%w: clients c1 was changed by another request", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/clients/c1/projections/1/pay", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestMarkProjectionPaid_BadIndex() {
	w := suite.do(http.MethodPost, "/api/v1/clients/c1/projections/first/pay", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRecordEntry_WithCommission() {
	salesperson := "Ana"
	recorded := &domain.RecordedEntry{
		Entry: domain.LedgerEntry{ID: "e1", Type: domain.Income, Amount: decimal.NewFromInt(1000)},
		Commission: &domain.Commission{
			CommissionID:  "c1",
			LedgerEntryID: "e1",
			Salesperson:   salesperson,
			Amount:        decimal.NewFromInt(40),
		},
	}
	suite.ledger.On("RecordEntry", mock.Anything, mock.MatchedBy(func(r dto.CreateLedgerEntryRequest) bool {
		return r.AppliesCommission && r.Amount.Equal(decimal.NewFromInt(1000))
	}), suite.userID).Return(recorded, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger", map[string]any{
		"date":              "2024-03-01T00:00:00Z",
		"type":              "income",
		"incomeCategory":    "Servicios",
		"amount":            "1000",
		"appliesCommission": true,
		"salesperson":       salesperson,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.RecordedEntry
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().NotNil(got.Commission)
	suite.True(got.Commission.Amount.Equal(decimal.NewFromInt(40)))
}

func (suite *HandlerTestSuite) TestRecordEntry_RejectsUnknownType() {
	w := suite.do(http.MethodPost, "/api/v1/ledger", map[string]any{
		"date":   "2024-03-01T00:00:00Z",
		"type":   "transfer",
		"amount": "10",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "RecordEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPayCommission_AlreadyPaid() {
	suite.ledger.On("MarkCommissionPaid", mock.Anything, "c1", suite.userID).
		Return(nil, fmt.Errorf("%w: commission c1 already paid", apperrors.ErrInvalidTransition)).Once()

	w := suite.do(http.MethodPost, "/api/v1/commissions/c1/pay", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPayrollStatus_FinalStateConflict() {
	suite.payroll.On("TransitionStatus", mock.Anything, "p1", mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: Pagado -> Pendiente", apperrors.ErrInvalidTransition)).Once()

	w := suite.do(http.MethodPost, "/api/v1/payroll/p1/status", map[string]any{"status": "Pendiente"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPayrollStatus_UnknownStatus() {
	w := suite.do(http.MethodPost, "/api/v1/payroll/p1/status", map[string]any{"status": "Archivado"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPayrollPreview() {
	suite.payroll.On("PreviewNet", mock.Anything).
		Return(dto.PayrollPreviewResponse{NetSalary: decimal.NewFromInt(1150)}).Once()

	w := suite.do(http.MethodPost, "/api/v1/payroll/preview", map[string]any{
		"baseSalary": "1000", "bonuses": "200", "deductions": "50",
	})

	suite.Equal(http.StatusOK, w.Code)
	var got dto.PayrollPreviewResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.NetSalary.Equal(decimal.NewFromInt(1150)))
}

func (suite *HandlerTestSuite) TestListPayroll_FiltersByStatus() {
	suite.payroll.On("ListPayroll", mock.Anything, mock.MatchedBy(func(f domain.PayrollFilter) bool {
		return f.Status != nil && *f.Status == domain.PayrollPending && f.EmployeeID == nil
	})).Return([]domain.PayrollRecord{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/payroll?status=Pendiente", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCurrentRate_Missing() {
	suite.exchangeRates.On("CurrentRate", mock.Anything).
		Return(nil, fmt.Errorf("%w: no USD->NIO rate", apperrors.ErrMissingConfiguration)).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/current", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestNetProfit_RoundsFigures() {
	report := &domain.NetProfitReport{
		TotalIncome:      decimal.RequireFromString("1000.005"),
		TotalExpenses:    decimal.NewFromInt(0),
		TotalCommissions: decimal.NewFromInt(0),
		NetProfit:        decimal.RequireFromString("1000.005"),
		Split: domain.ProfitSplit{
			CompanyShare:  decimal.RequireFromString("700.0035"),
			InvestorShare: decimal.RequireFromString("300.0015"),
		},
	}
	suite.reporting.On("NetProfit", mock.Anything, domain.Period{}).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/net-profit", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.NetProfitResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(domain.ReportingCurrency, got.Currency)
	suite.True(got.NetProfit.Equal(decimal.NewFromInt(1000)), got.NetProfit.String())
	suite.True(got.Split.CompanyShare.Add(got.Split.InvestorShare).Equal(got.NetProfit))
}

func (suite *HandlerTestSuite) TestNetProfit_SourceFailure() {
	suite.reporting.On("NetProfit", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewFetchError("ledger entries", fmt.Errorf("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/net-profit", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *HandlerTestSuite) TestMonthlyExport_ReturnsWorkbook() {
	months := []domain.MonthlyTotal{
		{Year: 2024, Month: 1, Income: decimal.NewFromInt(500), Expense: decimal.NewFromInt(200)},
	}
	suite.reporting.On("MonthlyTrend", mock.Anything, mock.Anything).Return(months, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/monthly/export?from=2024-01-01&to=2024-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(export.ContentType, w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "tendencia-mensual.xlsx")
	suite.True(bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "xlsx is a zip container")
}

func (suite *HandlerTestSuite) TestUpcomingNotifications_DefaultWindow() {
	suite.notifications.On("Upcoming", mock.Anything, 7).Return([]domain.Notification{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/notifications/upcoming", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.notifications.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpcomingNotifications_WindowTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/notifications/upcoming?days=400", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
