package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getSummary)
		reportingGroup.GET("/net-profit", h.getNetProfit)
		reportingGroup.GET("/net-profit/export", h.exportNetProfit)
		reportingGroup.GET("/monthly", h.getMonthly)
		reportingGroup.GET("/monthly/export", h.exportMonthly)
		reportingGroup.GET("/categories", h.getCategories)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/accounts", h.getAccounts)
		reportingGroup.GET("/commissions", h.getCommissions)
		reportingGroup.GET("/payroll", h.getPayroll)
		reportingGroup.GET("/client-reconciliation", h.getClientReconciliation)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Income, expenses, liabilities, commissions, net profit and its split, plus account totals in the reporting currency
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "A report source could not be read"
// @Failure 503 {object} map[string]string "Exchange rate not configured"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.Summary(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to generate summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(*summary))
}

// getNetProfit godoc
// @Summary Net profit report
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} dto.NetProfitResponse
// @Failure 502 {object} map[string]string "A report source could not be read"
// @Security BearerAuth
// @Router /reports/net-profit [get]
func (h *reportingHandler) getNetProfit(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.NetProfit(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to generate net profit report")
		return
	}
	c.JSON(http.StatusOK, dto.ToNetProfitResponse(*report))
}

// exportNetProfit godoc
// @Summary Net profit report as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /reports/net-profit/export [get]
func (h *reportingHandler) exportNetProfit(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.NetProfit(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to generate net profit report")
		return
	}
	resp := dto.ToNetProfitResponse(*report)
	sheet := export.Sheet{
		Name:    "Utilidad Neta",
		Headers: []string{"Concepto", "Monto (" + string(resp.Currency) + ")"},
		Rows: [][]any{
			{"Ingresos", resp.TotalIncome.InexactFloat64()},
			{"Gastos", resp.TotalExpenses.InexactFloat64()},
			{"Pasivos corrientes", resp.CurrentLiabilities.InexactFloat64()},
			{"Comisiones", resp.TotalCommissions.InexactFloat64()},
			{"Utilidad neta", resp.NetProfit.InexactFloat64()},
			{"Empresa", resp.Split.CompanyShare.InexactFloat64()},
			{"Inversionistas", resp.Split.InvestorShare.InexactFloat64()},
		},
	}
	h.sendWorkbook(c, "utilidad-neta.xlsx", sheet)
}

// getMonthly godoc
// @Summary Monthly income and expense trend
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {array} dto.MonthlyTotalResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthly(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	months, err := h.reportingService.MonthlyTrend(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to generate monthly report")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyResponse(months))
}

// exportMonthly godoc
// @Summary Monthly trend as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /reports/monthly/export [get]
func (h *reportingHandler) exportMonthly(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	months, err := h.reportingService.MonthlyTrend(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to generate monthly report")
		return
	}
	sheet := export.Sheet{
		Name:    "Tendencia Mensual",
		Headers: []string{"Mes", "Ingresos", "Gastos", "Neto"},
	}
	for _, m := range dto.ToMonthlyResponse(months) {
		sheet.Rows = append(sheet.Rows, []any{
			m.YearMonth, m.Income.InexactFloat64(), m.Expense.InexactFloat64(), m.Net.InexactFloat64(),
		})
	}
	h.sendWorkbook(c, "tendencia-mensual.xlsx", sheet)
}

func (h *reportingHandler) sendWorkbook(c *gin.Context, filename string, sheets ...export.Sheet) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, sheets...); err != nil {
		logger.Error("Failed to render workbook", slog.String("file", filename), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render spreadsheet"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// getCategories godoc
// @Summary Totals per category for one entry type
// @Tags reports
// @Produce json
// @Param type query string true "income or expense"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid type"
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) getCategories(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	t := domain.EntryType(c.DefaultQuery("type", string(domain.Income)))
	cats, err := h.reportingService.CategoryBreakdown(c.Request.Context(), period, t)
	if err != nil {
		respondError(c, err, "Failed to generate category report")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(t, cats))
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 503 {object} map[string]string "Exchange rate not configured"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(*report))
}

// getAccounts godoc
// @Summary Account balances in the reporting currency
// @Tags reports
// @Produce json
// @Success 200 {object} dto.AccountSummaryResponse
// @Failure 503 {object} map[string]string "Exchange rate not configured"
// @Security BearerAuth
// @Router /reports/accounts [get]
func (h *reportingHandler) getAccounts(c *gin.Context) {
	summary, err := h.reportingService.AccountSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to generate account summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountSummaryResponse(*summary))
}

// getCommissions godoc
// @Summary Commissions per salesperson
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} dto.CommissionReportResponse
// @Security BearerAuth
// @Router /reports/commissions [get]
func (h *reportingHandler) getCommissions(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	report, err := h.reportingService.CommissionReport(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to generate commission report")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommissionReportResponse(*report))
}

// getPayroll godoc
// @Summary Payroll totals
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} dto.PayrollSummaryResponse
// @Security BearerAuth
// @Router /reports/payroll [get]
func (h *reportingHandler) getPayroll(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.PayrollSummary(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to generate payroll summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollSummaryResponse(*summary))
}

// getClientReconciliation godoc
// @Summary Clients whose stored debt differs from cost minus amount paid
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ClientReconciliationResponse
// @Security BearerAuth
// @Router /reports/client-reconciliation [get]
func (h *reportingHandler) getClientReconciliation(c *gin.Context) {
	drifts, err := h.reportingService.ClientReconciliation(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to generate client reconciliation")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientReconciliationResponse(drifts))
}
