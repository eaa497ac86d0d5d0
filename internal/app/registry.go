package app

import (
	"net/http"

	"go-directory/internal/compensation"
	"go-directory/internal/employee"
	"go-directory/internal/middleware"
	"go-directory/internal/reporting"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type modules struct {
	employeeRepo          employee.Repository
	compensationRepo      compensation.Repository
	employeePublisher     employee.EventPublisher
	compensationPublisher compensation.EventPublisher
	rdb                   *redis.Client
}

func registerModules(router *gin.Engine, m modules) {
	// --- Services ---
	employeeService := employee.NewService(m.employeeRepo, m.employeePublisher)
	reportingService := reporting.NewService(reporting.NewResolver(m.employeeRepo))
	compensationService := compensation.NewService(m.compensationRepo, m.employeeRepo, m.compensationPublisher)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	reportingHandler := reporting.NewHandler(reportingService)
	compensationHandler := compensation.NewHandler(compensationService)

	idempotent := middleware.Idempotency(m.rdb)

	// --- Routes Registration ---
	root := router.Group("")
	{
		employee.RegisterRoutes(root, employeeHandler, idempotent)
		reporting.RegisterRoutes(root, reportingHandler)
		compensation.RegisterRoutes(root, compensationHandler, idempotent)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
