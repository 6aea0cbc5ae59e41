package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

// HomeMessage - фиксированный ответ корневого эндпоинта
const HomeMessage = "Backend + Database Connected Successfully 🚑"

// Services - набор сервисов, которые обслуживает Handler
type Services struct {
	Ambulances  service.AmbulanceService
	Hospitals   service.HospitalService
	Volunteers  service.VolunteerService
	Emergencies service.EmergencyService
	Health      service.HealthService
}

type Handler struct {
	services Services
	logger   *logrus.Logger
}

func NewHandler(services Services, logger *logrus.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// home отвечает фиксированным сообщением. Маршрут лежит вне /api/v1, поэтому в Swagger не описан.
func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: HomeMessage})
}

// @Summary Get application health status
// @Description Pings PostgreSQL and Redis
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Failure 503 {object} map[string]string "Dependency unavailable"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.services.Health.Check(c.Request.Context()); err != nil {
		h.logger.WithError(err).WithField("method", "healthCheck").Error("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID читает :id из пути; при ошибке отвечает 400
func parseID(c *gin.Context, param, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return 0, false
	}
	return id, true
}

// bindJSON разбирает тело запроса; при ошибке отвечает 400
func bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// bindOptionalJSON как bindJSON, но пустое тело не считается ошибкой и оставляет dst нулевым
func bindOptionalJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return page, pageSize
}

// respondError переводит ошибку сервиса в HTTP-ответ: ErrNotFound - 404, остальное - 500
func respondError(c *gin.Context, log *logrus.Entry, err error, entity string) {
	if errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Warn(entity + " not found")
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}
	log.WithError(err).Error("Service call failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
