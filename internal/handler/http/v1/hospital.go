package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a hospital
// @Tags Hospitals
// @Accept json
// @Produce json
// @Param hospital body HospitalRequest true "Hospital"
// @Success 201 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /hospitals [post]
func (h *Handler) createHospital(c *gin.Context) {
	log := h.logger.WithField("method", "createHospital")
	var input HospitalRequest
	if !bindJSON(c, log, &input) {
		return
	}

	model := HospitalRequestToModel(input)
	if err := h.services.Hospitals.CreateHospital(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "hospital")
		return
	}
	c.JSON(http.StatusCreated, ModelToHospitalResponse(model))
}

// @Summary List hospitals
// @Tags Hospitals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} HospitalResponse
// @Router /hospitals [get]
func (h *Handler) listHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "listHospitals")
	page, pageSize := pagination(c)

	hospitals, err := h.services.Hospitals.ListHospitals(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, log, err, "hospital")
		return
	}
	c.JSON(http.StatusOK, mapSlice(hospitals, ModelToHospitalResponse))
}

// @Summary Get hospital by ID
// @Tags Hospitals
// @Produce json
// @Param id path int true "Hospital ID"
// @Success 200 {object} HospitalResponse
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /hospitals/{id} [get]
func (h *Handler) getHospital(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getHospital").WithField("id", id)

	hospital, err := h.services.Hospitals.GetHospital(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "hospital")
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}

// @Summary Update a hospital
// @Tags Hospitals
// @Accept json
// @Produce json
// @Param id path int true "Hospital ID"
// @Param hospital body HospitalRequest true "Hospital"
// @Success 200 {object} HospitalResponse
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /hospitals/{id} [put]
func (h *Handler) updateHospital(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateHospital").WithField("id", id)
	var input HospitalRequest
	if !bindJSON(c, log, &input) {
		return
	}

	model := HospitalRequestToModel(input)
	model.ID = id
	if err := h.services.Hospitals.UpdateHospital(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "hospital")
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(model))
}

// @Summary Delete a hospital
// @Tags Hospitals
// @Param id path int true "Hospital ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /hospitals/{id} [delete]
func (h *Handler) deleteHospital(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteHospital").WithField("id", id)

	if err := h.services.Hospitals.DeleteHospital(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "hospital")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update available beds
// @Description Overwrites icu_available and beds_available and emits BEDS_UPDATE. Counts are stored as sent.
// @Tags Hospitals
// @Accept json
// @Produce json
// @Param id path int true "Hospital ID"
// @Param beds body BedsRequest true "Bed counts"
// @Success 200 {object} HospitalResponse
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /hospitals/{id}/beds [put]
func (h *Handler) updateHospitalBeds(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateHospitalBeds").WithField("id", id)
	var input BedsRequest
	if !bindJSON(c, log, &input) {
		return
	}

	ctx := c.Request.Context()
	if err := h.services.Hospitals.UpdateBeds(ctx, id, input.ICUAvailable, input.BedsAvailable); err != nil {
		respondError(c, log, err, "hospital")
		return
	}
	hospital, err := h.services.Hospitals.GetHospital(ctx, id)
	if err != nil {
		respondError(c, log, err, "hospital")
		return
	}
	c.JSON(http.StatusOK, ModelToHospitalResponse(hospital))
}
