package api

import (
	"net/http"

	reqdto "groomer-crm/internal/handler/dto/request"
	resdto "groomer-crm/internal/handler/dto/response"
	"groomer-crm/internal/handler/middleware"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	commands commands.ServiceCommands
	queries  queries.ServiceQueries
}

func NewServiceHandler(commands commands.ServiceCommands, queries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{commands: commands, queries: queries}
}

// @Summary List services
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Only active services"
// @Success 200 {array} queries.ServiceView
// @Router /api/services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var q reqdto.ServiceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	services, err := h.queries.List(c.Request.Context(), ownerID, q.Active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// @Summary Create service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 200 {object} queries.ServiceView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.commands.Update(c.Request.Context(), ownerID, id, req.ToDomain()); err != nil {
		respondError(c, err)
		return
	}

	svc, err := h.queries.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// @Summary Toggle service
// @Description Flip is_active
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id}/toggle [patch]
func (h *ServiceHandler) Toggle(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	active, err := h.commands.Toggle(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleResponse{ID: id, IsActive: active})
}

// @Summary Delete service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), ownerID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
