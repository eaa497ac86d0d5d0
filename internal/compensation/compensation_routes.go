package compensation

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the compensation endpoints. submitGuards run before
// Submit only.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	submitGuards ...gin.HandlerFunc,
) {
	r.POST("/submit-compensation/:id", append(submitGuards, handler.Submit)...)
	r.GET("/compensation/:id", handler.GetByEmployeeID)
}
