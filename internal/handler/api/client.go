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

type ClientHandler struct {
	commands commands.ClientCommands
	queries  queries.ClientQueries
}

func NewClientHandler(commands commands.ClientCommands, queries queries.ClientQueries) *ClientHandler {
	return &ClientHandler{commands: commands, queries: queries}
}

// @Summary List clients
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ClientView
// @Router /api/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	clients, err := h.queries.List(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// @Summary Get client
// @Description Client with its pets
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} queries.ClientDetailView
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	client, err := h.queries.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary Create client
// @Description Free plan accounts are limited to 10 clients
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ClientRequest true "Client"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req reqdto.ClientRequest
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

// @Summary Update client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Param id path string true "Client ID"
// @Param request body reqdto.ClientRequest true "Client"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.commands.Update(c.Request.Context(), ownerID, id, req.ToDomain()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete client
// @Description Deletes the client's pets and their appointments with it
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
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
