package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// registerClientRoutes mounts the client CRUD routes plus payment projection tracking.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := &clientHandler{clientService: clientService}

	clients := registerCRUDRoutes[domain.Client](rg, "/clients", clientService, "client")
	clients.POST("/:id/projections/:index/pay", h.markProjectionPaid)
}

// markProjectionPaid godoc
// @Summary Mark a client payment projection as paid
// @Description Flags the projection, adds its amount to amountPaid and recomputes debt
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Param index path int true "Projection index"
// @Success 200 {object} domain.Client
// @Failure 400 {object} map[string]string "Invalid index"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 409 {object} map[string]string "Projection already paid or client changed by another request"
// @Security BearerAuth
// @Router /clients/{id}/projections/{index}/pay [post]
func (h *clientHandler) markProjectionPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Projection index must be an integer"})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	client, err := h.clientService.MarkProjectionPaid(c.Request.Context(), c.Param("id"), index, userID)
	if err != nil {
		respondError(c, err, "Failed to mark payment projection paid")
		return
	}
	logger.Info("Payment projection marked paid", slog.String("client_id", client.ID), slog.Int("index", index))
	c.JSON(http.StatusOK, client)
}
