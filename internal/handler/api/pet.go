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

type PetHandler struct {
	commands commands.PetCommands
	queries  queries.PetQueries
}

func NewPetHandler(commands commands.PetCommands, queries queries.PetQueries) *PetHandler {
	return &PetHandler{commands: commands, queries: queries}
}

// @Summary List pets
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param client_id query string false "Only pets of this client"
// @Success 200 {array} queries.PetView
// @Router /api/pets [get]
func (h *PetHandler) List(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var q reqdto.PetListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	pets, err := h.queries.List(c.Request.Context(), ownerID, q.ClientFilter())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

// @Summary Get pet
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} queries.PetView
// @Failure 404 {object} httperr.Response
// @Router /api/pets/{id} [get]
func (h *PetHandler) Get(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	p, err := h.queries.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Create pet
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PetRequest true "Pet"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pets [post]
func (h *PetHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req reqdto.PetRequest
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

// @Summary Update pet
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Param id path string true "Pet ID"
// @Param request body reqdto.PetRequest true "Pet"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pets/{id} [put]
func (h *PetHandler) Update(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	var req reqdto.PetRequest
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

// @Summary Delete pet
// @Tags pets
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/pets/{id} [delete]
func (h *PetHandler) Delete(c *gin.Context) {
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
