package v1

import "github.com/shenikar/emergency_dispatch/internal/models"

func AmbulanceRequestToModel(dto AmbulanceRequest) *models.Ambulance {
	return &models.Ambulance{
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Status:    dto.Status,
	}
}

func ModelToAmbulanceResponse(model *models.Ambulance) *AmbulanceResponse {
	return &AmbulanceResponse{
		ID:        model.ID,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Status:    model.Status,
	}
}

func HospitalRequestToModel(dto HospitalRequest) *models.Hospital {
	return &models.Hospital{
		Name:          dto.Name,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		ICUAvailable:  dto.ICUAvailable,
		BedsAvailable: dto.BedsAvailable,
	}
}

func ModelToHospitalResponse(model *models.Hospital) *HospitalResponse {
	return &HospitalResponse{
		ID:            model.ID,
		Name:          model.Name,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		ICUAvailable:  model.ICUAvailable,
		BedsAvailable: model.BedsAvailable,
	}
}

func VolunteerRequestToModel(dto VolunteerRequest) *models.Volunteer {
	return &models.Volunteer{
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Available: dto.Available,
	}
}

func ModelToVolunteerResponse(model *models.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:        model.ID,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Available: model.Available,
	}
}

// EmergencyRequestToModel преобразует DTO в доменную модель. Id из тела не берется никогда.
func EmergencyRequestToModel(dto EmergencyRequest) *models.Emergency {
	return &models.Emergency{
		Description: dto.Description,
		Severity:    dto.Severity,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		AmbulanceID: dto.AmbulanceID,
		HospitalID:  dto.HospitalID,
		Status:      dto.Status,
	}
}

// ModelToEmergencyResponse преобразует доменную модель в DTO для ответа
func ModelToEmergencyResponse(model *models.Emergency) *EmergencyResponse {
	return &EmergencyResponse{
		ID:          model.ID,
		Description: model.Description,
		Severity:    model.Severity,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		AmbulanceID: model.AmbulanceID,
		HospitalID:  model.HospitalID,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// mapSlice преобразует слайс моделей в слайс DTO
func mapSlice[M any, R any](items []*M, fn func(*M) *R) []*R {
	responses := make([]*R, len(items))
	for i, item := range items {
		responses[i] = fn(item)
	}
	return responses
}
