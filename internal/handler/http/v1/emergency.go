package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create an emergency
// @Description Stores the emergency (status defaults to pending) and emits NEW_EMERGENCY. ambulance_id and hospital_id are not checked against existing records.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param emergency body EmergencyRequest true "Emergency"
// @Success 201 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	log := h.logger.WithField("method", "createEmergency")
	var input EmergencyRequest
	if !bindJSON(c, log, &input) {
		return
	}

	model := EmergencyRequestToModel(input)
	if err := h.services.Emergencies.CreateEmergency(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusCreated, ModelToEmergencyResponse(model))
}

// @Summary List emergencies
// @Description Newest first
// @Tags Emergencies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} EmergencyResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [get]
func (h *Handler) listEmergencies(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencies")
	page, pageSize := pagination(c)

	emergencies, err := h.services.Emergencies.ListEmergencies(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, mapSlice(emergencies, ModelToEmergencyResponse))
}

// @Summary Get emergency by ID
// @Tags Emergencies
// @Produce json
// @Param id path int true "Emergency ID"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id} [get]
func (h *Handler) getEmergency(c *gin.Context) {
	id, ok := parseID(c, "id", "emergency")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getEmergency").WithField("id", id)

	emergency, err := h.services.Emergencies.GetEmergency(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}

// @Summary Update an emergency
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param id path int true "Emergency ID"
// @Param emergency body EmergencyRequest true "Emergency"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID or request body"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id} [put]
func (h *Handler) updateEmergency(c *gin.Context) {
	id, ok := parseID(c, "id", "emergency")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateEmergency").WithField("id", id)
	var input EmergencyRequest
	if !bindJSON(c, log, &input) {
		return
	}

	model := EmergencyRequestToModel(input)
	model.ID = id
	if err := h.services.Emergencies.UpdateEmergency(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(model))
}

// @Summary Delete an emergency
// @Tags Emergencies
// @Param id path int true "Emergency ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id} [delete]
func (h *Handler) deleteEmergency(c *gin.Context) {
	id, ok := parseID(c, "id", "emergency")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteEmergency").WithField("id", id)

	if err := h.services.Emergencies.DeleteEmergency(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update emergency status
// @Description Writes status (and ambulance_id when given) and emits STATUS_UPDATE. Any status string is accepted.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param id path int true "Emergency ID"
// @Param status body StatusRequest true "Status"
// @Success 200 {object} EmergencyResponse
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id}/status [patch]
func (h *Handler) updateEmergencyStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "emergency")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateEmergencyStatus").WithField("id", id)
	var input StatusRequest
	if !bindJSON(c, log, &input) {
		return
	}

	emergency, err := h.services.Emergencies.UpdateStatus(c.Request.Context(), id, input.Status, input.AmbulanceID)
	if err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}

// @Summary Accept an emergency
// @Description Sets status accepted and ambulance_id from the body. An empty body accepts without an ambulance.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param id path int true "Emergency ID"
// @Param accept body AcceptRequest false "Ambulance"
// @Success 200 {object} EmergencyResponse
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id}/accept [post]
func (h *Handler) acceptEmergency(c *gin.Context) {
	id, ok := parseID(c, "id", "emergency")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "acceptEmergency").WithField("id", id)
	var input AcceptRequest
	if !bindOptionalJSON(c, log, &input) {
		return
	}

	emergency, err := h.services.Emergencies.AcceptEmergency(c.Request.Context(), id, input.AmbulanceID)
	if err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}

// @Summary Reject an emergency
// @Description Returns the emergency to pending and clears ambulance_id
// @Tags Emergencies
// @Produce json
// @Param id path int true "Emergency ID"
// @Success 200 {object} EmergencyResponse
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id}/reject [post]
func (h *Handler) rejectEmergency(c *gin.Context) {
	id, ok := parseID(c, "id", "emergency")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "rejectEmergency").WithField("id", id)

	emergency, err := h.services.Emergencies.RejectEmergency(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "emergency")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}
