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

// crudHandler exposes one CRUDService as a REST resource.
type crudHandler[T any] struct {
	service portssvc.CRUDService[T]
	kind    string
}

func newCRUDHandler[T any](svc portssvc.CRUDService[T], kind string) *crudHandler[T] {
	return &crudHandler[T]{service: svc, kind: kind}
}

// registerCRUDRoutes mounts POST, GET, GET /:id, PUT /:id and DELETE /:id under path.
func registerCRUDRoutes[T any](rg *gin.RouterGroup, path string, svc portssvc.CRUDService[T], kind string) *gin.RouterGroup {
	h := newCRUDHandler(svc, kind)

	group := rg.Group(path)
	{
		group.POST("", h.create)
		group.GET("", h.list)
		group.GET("/:id", h.get)
		group.PUT("/:id", h.update)
		group.DELETE("/:id", h.delete)
	}
	return group
}

func (h *crudHandler[T]) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), &entity, userID)
	if err != nil {
		respondError(c, err, "Failed to create "+h.kind)
		return
	}
	logger.Info("Created "+h.kind, slog.String("user_id", userID))
	c.JSON(http.StatusCreated, created)
}

func (h *crudHandler[T]) list(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), domain.ListOptions{
		Limit:  params.Limit,
		Offset: params.Offset,
		Period: period,
	})
	if err != nil {
		respondError(c, err, "Failed to list "+h.kind)
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse[T]{Items: items, Limit: params.Limit, Offset: params.Offset})
}

func (h *crudHandler[T]) get(c *gin.Context) {
	entity, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve "+h.kind)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *crudHandler[T]) update(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &entity, userID)
	if err != nil {
		respondError(c, err, "Failed to update "+h.kind)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *crudHandler[T]) delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete "+h.kind)
		return
	}
	c.Status(http.StatusNoContent)
}
