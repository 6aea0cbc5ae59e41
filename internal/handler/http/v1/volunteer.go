package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a volunteer
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param volunteer body VolunteerRequest true "Volunteer"
// @Success 201 {object} VolunteerResponse
// @Router /volunteers [post]
func (h *Handler) createVolunteer(c *gin.Context) {
	log := h.logger.WithField("method", "createVolunteer")
	var input VolunteerRequest
	if !bindJSON(c, log, &input) {
		return
	}

	model := VolunteerRequestToModel(input)
	if err := h.services.Volunteers.CreateVolunteer(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "volunteer")
		return
	}
	c.JSON(http.StatusCreated, ModelToVolunteerResponse(model))
}

// @Summary List volunteers
// @Tags Volunteers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} VolunteerResponse
// @Router /volunteers [get]
func (h *Handler) listVolunteers(c *gin.Context) {
	log := h.logger.WithField("method", "listVolunteers")
	page, pageSize := pagination(c)

	volunteers, err := h.services.Volunteers.ListVolunteers(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, log, err, "volunteer")
		return
	}
	c.JSON(http.StatusOK, mapSlice(volunteers, ModelToVolunteerResponse))
}

// @Summary Get volunteer by ID
// @Tags Volunteers
// @Produce json
// @Param id path int true "Volunteer ID"
// @Success 200 {object} VolunteerResponse
// @Router /volunteers/{id} [get]
func (h *Handler) getVolunteer(c *gin.Context) {
	id, ok := parseID(c, "id", "volunteer")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getVolunteer").WithField("id", id)

	volunteer, err := h.services.Volunteers.GetVolunteer(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "volunteer")
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(volunteer))
}

// @Summary Update a volunteer
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param id path int true "Volunteer ID"
// @Param volunteer body VolunteerRequest true "Volunteer"
// @Success 200 {object} VolunteerResponse
// @Router /volunteers/{id} [put]
func (h *Handler) updateVolunteer(c *gin.Context) {
	id, ok := parseID(c, "id", "volunteer")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateVolunteer").WithField("id", id)
	var input VolunteerRequest
	if !bindJSON(c, log, &input) {
		return
	}

	model := VolunteerRequestToModel(input)
	model.ID = id
	if err := h.services.Volunteers.UpdateVolunteer(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "volunteer")
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(model))
}

// @Summary Delete a volunteer
// @Tags Volunteers
// @Param id path int true "Volunteer ID"
// @Success 204 "No Content"
// @Router /volunteers/{id} [delete]
func (h *Handler) deleteVolunteer(c *gin.Context) {
	id, ok := parseID(c, "id", "volunteer")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteVolunteer").WithField("id", id)

	if err := h.services.Volunteers.DeleteVolunteer(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "volunteer")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update volunteer location
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param id path int true "Volunteer ID"
// @Param location body LocationRequest true "Coordinates"
// @Success 200 {object} LocationResponse
// @Router /volunteers/{id}/location [put]
func (h *Handler) updateVolunteerLocation(c *gin.Context) {
	id, ok := parseID(c, "id", "volunteer")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateVolunteerLocation").WithField("id", id)
	var input LocationRequest
	if !bindJSON(c, log, &input) {
		return
	}

	if err := h.services.Volunteers.UpdateLocation(c.Request.Context(), id, input.Latitude, input.Longitude); err != nil {
		respondError(c, log, err, "volunteer")
		return
	}
	c.JSON(http.StatusOK, LocationResponse{ID: id, Latitude: input.Latitude, Longitude: input.Longitude})
}
