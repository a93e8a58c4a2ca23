package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests for payroll records.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// registerPayrollRoutes registers payroll routes.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll")
	{
		payroll.POST("", h.createPayroll)
		payroll.GET("", h.listPayroll)
		payroll.POST("/preview", h.previewNet)
		payroll.GET("/:id", h.getPayroll)
		payroll.PUT("/:id", h.updatePayroll)
		payroll.POST("/:id/status", h.transitionStatus)
	}
}

// createPayroll godoc
// @Summary Create a payroll record
// @Description Net salary is computed as base + bonuses - deductions. New records start as Pendiente.
// @Tags payroll
// @Accept json
// @Produce json
// @Param payroll body dto.CreatePayrollRequest true "Payroll record"
// @Success 201 {object} domain.PayrollRecord
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /payroll [post]
func (h *payrollHandler) createPayroll(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.payrollService.CreatePayroll(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create payroll record")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payroll record created",
		slog.String("payroll_id", record.PayrollID), slog.String("user_id", userID))
	c.JSON(http.StatusCreated, record)
}

// listPayroll godoc
// @Summary List payroll records
// @Tags payroll
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Param status query string false "Pendiente, Pagado or Cancelado"
// @Param from query string false "Period end from (YYYY-MM-DD)"
// @Param to query string false "Period end to (YYYY-MM-DD)"
// @Success 200 {array} domain.PayrollRecord
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /payroll [get]
func (h *payrollHandler) listPayroll(c *gin.Context) {
	var params dto.ListPayrollParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}

	filter := domain.PayrollFilter{Period: period}
	if params.EmployeeID != "" {
		filter.EmployeeID = &params.EmployeeID
	}
	if params.Status != "" {
		status := domain.PayrollStatus(params.Status)
		filter.Status = &status
	}

	records, err := h.payrollService.ListPayroll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list payroll records")
		return
	}
	if records == nil {
		records = []domain.PayrollRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// getPayroll godoc
// @Summary Get a payroll record
// @Tags payroll
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} domain.PayrollRecord
// @Failure 404 {object} map[string]string "Payroll record not found"
// @Security BearerAuth
// @Router /payroll/{id} [get]
func (h *payrollHandler) getPayroll(c *gin.Context) {
	record, err := h.payrollService.GetPayrollByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get payroll record")
		return
	}
	c.JSON(http.StatusOK, record)
}

// updatePayroll godoc
// @Summary Update a pending payroll record
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Payroll ID"
// @Param payroll body dto.UpdatePayrollRequest true "Changed fields"
// @Success 200 {object} domain.PayrollRecord
// @Failure 404 {object} map[string]string "Payroll record not found"
// @Failure 409 {object} map[string]string "Record is no longer pending"
// @Security BearerAuth
// @Router /payroll/{id} [put]
func (h *payrollHandler) updatePayroll(c *gin.Context) {
	var req dto.UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.payrollService.UpdatePayroll(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update payroll record")
		return
	}
	c.JSON(http.StatusOK, record)
}

// transitionStatus godoc
// @Summary Change payroll status
// @Description Pendiente may move to Pagado or Cancelado. Pagado and Cancelado are final.
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Payroll ID"
// @Param status body dto.PayrollStatusRequest true "Target status"
// @Success 200 {object} domain.PayrollRecord
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Security BearerAuth
// @Router /payroll/{id}/status [post]
func (h *payrollHandler) transitionStatus(c *gin.Context) {
	var req dto.PayrollStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.payrollService.TransitionStatus(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to change payroll status")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payroll status changed",
		slog.String("payroll_id", record.PayrollID), slog.String("status", string(record.Status)))
	c.JSON(http.StatusOK, record)
}

// previewNet godoc
// @Summary Preview the net salary for unsaved inputs
// @Tags payroll
// @Accept json
// @Produce json
// @Param inputs body dto.PayrollPreviewRequest true "Salary inputs"
// @Success 200 {object} dto.PayrollPreviewResponse
// @Security BearerAuth
// @Router /payroll/preview [post]
func (h *payrollHandler) previewNet(c *gin.Context) {
	var req dto.PayrollPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.payrollService.PreviewNet(req))
}
