package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /employee. createGuards run before Create only.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	createGuards ...gin.HandlerFunc,
) {
	employees := r.Group("/employee")
	{
		employees.POST("", append(createGuards, handler.Create)...)
		employees.GET("/:id", handler.GetByID)
		employees.PUT("/:id", handler.Update)
	}
}
