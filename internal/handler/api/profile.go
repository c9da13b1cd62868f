package api

import (
	"net/http"

	reqdto "groomer-crm/internal/handler/dto/request"
	"groomer-crm/internal/handler/middleware"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	commands commands.ProfileCommands
	queries  queries.UserQueries
}

func NewProfileHandler(commands commands.ProfileCommands, queries queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{commands: commands, queries: queries}
}

// @Summary Update profile
// @Description Rename the signed-in account. Email changes are not supported.
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile"
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 400 {object} httperr.Response
// @Router /api/profile [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.commands.Rename(c.Request.Context(), userID, req.Name); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
