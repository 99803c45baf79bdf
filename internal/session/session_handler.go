package session

import (
	"net/http"

	"iakwe-hr/internal/shared/apperror"
	"iakwe-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Me returns the current actor as resolved from the bearer token.
func (h *Handler) Me(c *gin.Context) {
	actor, err := FromGin(c)
	if err != nil {
		e := apperror.ErrUnauthorized
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, actor, nil)
}
