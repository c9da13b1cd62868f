package api

import (
	"net/http"

	"groomer-crm/internal/handler/httperr"
	"groomer-crm/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses the :id route parameter. On failure it has already written
// the 400 response.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// ownerAndID resolves the signed-in owner and the :id parameter together,
// which is what every item route needs.
func ownerAndID(c *gin.Context) (ownerID, id uuid.UUID, ok bool) {
	if ownerID, ok = middleware.MustUserID(c); !ok {
		return
	}
	id, ok = pathID(c)
	return
}
