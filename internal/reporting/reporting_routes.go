package reporting

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/reporting/:id", handler.GetByEmployeeID)
}
