package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter создает gin.Engine с общими middleware.
// RequestLogger стоит снаружи Recovery, чтобы запрос с паникой тоже попал в лог со статусом 500.
func NewRouter(log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(log), gin.Recovery())
	return router
}

// RegisterRoutes регистрирует корневой маршрут и все маршруты API v1
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.home)

	api := router.Group("/api/v1")

	ambulances := api.Group("/ambulances")
	{
		ambulances.POST("", h.createAmbulance)
		ambulances.GET("", h.listAmbulances)
		ambulances.GET("/:id", h.getAmbulance)
		ambulances.PUT("/:id", h.updateAmbulance)
		ambulances.DELETE("/:id", h.deleteAmbulance)
		ambulances.PUT("/:id/location", h.updateAmbulanceLocation)
		ambulances.GET("/:id/emergencies", h.listAssignedEmergencies)
	}

	hospitals := api.Group("/hospitals")
	{
		hospitals.POST("", h.createHospital)
		hospitals.GET("", h.listHospitals)
		hospitals.GET("/:id", h.getHospital)
		hospitals.PUT("/:id", h.updateHospital)
		hospitals.DELETE("/:id", h.deleteHospital)
		hospitals.PUT("/:id/beds", h.updateHospitalBeds)
	}

	volunteers := api.Group("/volunteers")
	{
		volunteers.POST("", h.createVolunteer)
		volunteers.GET("", h.listVolunteers)
		volunteers.GET("/:id", h.getVolunteer)
		volunteers.PUT("/:id", h.updateVolunteer)
		volunteers.DELETE("/:id", h.deleteVolunteer)
		volunteers.PUT("/:id/location", h.updateVolunteerLocation)
	}

	emergencies := api.Group("/emergencies")
	{
		emergencies.POST("", h.createEmergency)
		emergencies.GET("", h.listEmergencies)
		emergencies.GET("/:id", h.getEmergency)
		emergencies.PUT("/:id", h.updateEmergency)
		emergencies.DELETE("/:id", h.deleteEmergency)
		emergencies.PATCH("/:id/status", h.updateEmergencyStatus)
		emergencies.POST("/:id/accept", h.acceptEmergency)
		emergencies.POST("/:id/reject", h.rejectEmergency)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
