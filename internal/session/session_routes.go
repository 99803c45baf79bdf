package session

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /me behind the given guards (normally the JWT
// middleware; session cannot import middleware without a cycle).
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards ...gin.HandlerFunc) {
	handlers := append(guards, handler.Me)
	r.GET("/me", handlers...)
}
