package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.POST("/auth/login", h.login)
	api.GET("/system/health", h.healthCheck)

	// Всё остальное - только с действующим токеном
	authorized := api.Group("")
	authorized.Use(JWTAuthMiddleware(h.authService, h.logger))
	{
		authorized.GET("/auth/me", h.currentUser)
		authorized.GET("/agency/:id", h.getAgency)
		authorized.GET("/stats", h.getStats)

		// Маршруты для управления инцидентами
		incidents := authorized.Group("/incidents")
		{
			incidents.POST("", h.createIncident)
			incidents.GET("", h.listIncidents)
			incidents.GET("/:id", h.getIncident)
			incidents.PATCH("/:id/status", h.setIncidentStatus)
			incidents.POST("/:id/close", h.closeIncident)
			incidents.POST("/:id/assign", h.assignUnit)
			incidents.POST("/:id/unassign", h.unassignUnit)
			incidents.POST("/:id/notes", h.addNote)
		}

		// Маршруты для управления юнитами
		units := authorized.Group("/units")
		{
			units.GET("", h.listUnits)
			units.PATCH("/:id/status", h.setUnitStatus)
			units.POST("", h.createUnit)
			units.DELETE("/:id", h.removeUnit)
		}

		// Административные маршруты за проверкой супервизора
		authorized.POST("/supervisor/verify", h.verifySupervisor)
		users := authorized.Group("/users")
		{
			users.GET("", h.listUsers)
			users.PATCH("/:id/suspend", h.suspendUser)
			users.PATCH("/:id/unsuspend", h.unsuspendUser)
			users.PATCH("/:id/role", h.setUserRole)
			users.DELETE("/:id", h.terminateUser)
		}
	}
}
