// Package httperr holds the error envelope shared by every endpoint:
//
//	{"error": {"message": "..."}, "detail": {...}}
//
// detail is omitted unless the failure carries structured context, such as
// the conflicting appointment on a 409.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Message struct {
	Message string `json:"message"`
}

type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

func Internal() Response {
	return New(http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError writes the envelope and keeps err on the gin context so the
// request logger can report the cause behind the public message.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}
	resp := New(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
