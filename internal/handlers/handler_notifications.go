package handlers

import (
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type notificationParams struct {
	Days int `form:"days,default=7" binding:"min=0,max=365"`
}

type notificationHandler struct {
	notificationService portssvc.NotificationSvc
}

func registerNotificationRoutes(rg *gin.RouterGroup, ns portssvc.NotificationSvc) {
	h := &notificationHandler{notificationService: ns}
	rg.GET("/notifications/upcoming", h.upcoming)
}

// upcoming godoc
// @Summary Upcoming payments
// @Description Unpaid client payment projections due within the window (overdue ones included) and pending payroll whose period has ended
// @Tags notifications
// @Produce json
// @Param days query int false "Look-ahead window in days" default(7)
// @Success 200 {array} domain.Notification
// @Failure 400 {object} map[string]string "Invalid window"
// @Security BearerAuth
// @Router /notifications/upcoming [get]
func (h *notificationHandler) upcoming(c *gin.Context) {
	var params notificationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	items, err := h.notificationService.Upcoming(c.Request.Context(), params.Days)
	if err != nil {
		respondError(c, err, "Failed to load notifications")
		return
	}
	if items == nil {
		items = []domain.Notification{}
	}
	c.JSON(http.StatusOK, items)
}
