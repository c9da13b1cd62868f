package api

import (
	"net/http"

	reqdto "groomer-crm/internal/handler/dto/request"
	"groomer-crm/internal/handler/middleware"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SettingsHandler struct {
	commands commands.SettingsCommands
	queries  queries.SettingsQueries
}

func NewSettingsHandler(commands commands.SettingsCommands, queries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{commands: commands, queries: queries}
}

// @Summary Get settings
// @Description Created with defaults on first read
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.SettingsView
// @Router /api/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	h.respond(c, ownerID)
}

// @Summary Save settings
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SettingsRequest true "Settings"
// @Success 200 {object} queries.SettingsView
// @Failure 400 {object} httperr.Response
// @Router /api/settings [put]
func (h *SettingsHandler) Save(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req reqdto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.commands.Save(c.Request.Context(), ownerID, req.ToDomain()); err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, ownerID)
}

func (h *SettingsHandler) respond(c *gin.Context, ownerID uuid.UUID) {
	view, err := h.queries.Get(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
