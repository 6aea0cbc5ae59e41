package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create an ambulance
// @Tags Ambulances
// @Accept json
// @Produce json
// @Param ambulance body AmbulanceRequest true "Ambulance"
// @Success 201 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulances [post]
func (h *Handler) createAmbulance(c *gin.Context) {
	log := h.logger.WithField("method", "createAmbulance")
	var input AmbulanceRequest
	if !bindJSON(c, log, &input) {
		return
	}

	model := AmbulanceRequestToModel(input)
	if err := h.services.Ambulances.CreateAmbulance(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "ambulance")
		return
	}
	c.JSON(http.StatusCreated, ModelToAmbulanceResponse(model))
}

// @Summary List ambulances
// @Tags Ambulances
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} AmbulanceResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulances [get]
func (h *Handler) listAmbulances(c *gin.Context) {
	log := h.logger.WithField("method", "listAmbulances")
	page, pageSize := pagination(c)

	ambulances, err := h.services.Ambulances.ListAmbulances(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, log, err, "ambulance")
		return
	}
	c.JSON(http.StatusOK, mapSlice(ambulances, ModelToAmbulanceResponse))
}

// @Summary Get ambulance by ID
// @Tags Ambulances
// @Produce json
// @Param id path int true "Ambulance ID"
// @Success 200 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid ambulance ID"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id} [get]
func (h *Handler) getAmbulance(c *gin.Context) {
	id, ok := parseID(c, "id", "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAmbulance").WithField("id", id)

	ambulance, err := h.services.Ambulances.GetAmbulance(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "ambulance")
		return
	}
	c.JSON(http.StatusOK, ModelToAmbulanceResponse(ambulance))
}

// @Summary Update an ambulance
// @Tags Ambulances
// @Accept json
// @Produce json
// @Param id path int true "Ambulance ID"
// @Param ambulance body AmbulanceRequest true "Ambulance"
// @Success 200 {object} AmbulanceResponse
// @Failure 400 {object} map[string]string "Invalid ambulance ID or request body"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id} [put]
func (h *Handler) updateAmbulance(c *gin.Context) {
	id, ok := parseID(c, "id", "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateAmbulance").WithField("id", id)
	var input AmbulanceRequest
	if !bindJSON(c, log, &input) {
		return
	}

	model := AmbulanceRequestToModel(input)
	model.ID = id
	if err := h.services.Ambulances.UpdateAmbulance(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "ambulance")
		return
	}
	c.JSON(http.StatusOK, ModelToAmbulanceResponse(model))
}

// @Summary Delete an ambulance
// @Tags Ambulances
// @Param id path int true "Ambulance ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id} [delete]
func (h *Handler) deleteAmbulance(c *gin.Context) {
	id, ok := parseID(c, "id", "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteAmbulance").WithField("id", id)

	if err := h.services.Ambulances.DeleteAmbulance(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "ambulance")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update ambulance location
// @Description Stores the coordinates and emits LOCATION_UPDATE
// @Tags Ambulances
// @Accept json
// @Produce json
// @Param id path int true "Ambulance ID"
// @Param location body LocationRequest true "Coordinates"
// @Success 200 {object} LocationResponse
// @Failure 404 {object} map[string]string "Ambulance not found"
// @Router /ambulances/{id}/location [put]
func (h *Handler) updateAmbulanceLocation(c *gin.Context) {
	id, ok := parseID(c, "id", "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateAmbulanceLocation").WithField("id", id)
	var input LocationRequest
	if !bindJSON(c, log, &input) {
		return
	}

	if err := h.services.Ambulances.UpdateLocation(c.Request.Context(), id, input.Latitude, input.Longitude); err != nil {
		respondError(c, log, err, "ambulance")
		return
	}
	c.JSON(http.StatusOK, LocationResponse{ID: id, Latitude: input.Latitude, Longitude: input.Longitude})
}

// @Summary List emergencies assigned to an ambulance
// @Description Emergencies with this ambulance_id whose status is not completed. The ambulance itself is not looked up.
// @Tags Ambulances
// @Produce json
// @Param id path int true "Ambulance ID"
// @Success 200 {array} EmergencyResponse
// @Router /ambulances/{id}/emergencies [get]
func (h *Handler) listAssignedEmergencies(c *gin.Context) {
	id, ok := parseID(c, "id", "ambulance")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listAssignedEmergencies").WithField("ambulance_id", id)

	emergencies, err := h.services.Emergencies.ListAssigned(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, mapSlice(emergencies, ModelToEmergencyResponse))
}
