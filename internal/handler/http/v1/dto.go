package v1

import "time"

// Тела запросов проверяются только по типам JSON: диапазоны и перечисления не ограничены.

// AmbulanceRequest DTO для создания и обновления машины скорой помощи
// @Description DTO для создания и обновления машины скорой помощи
type AmbulanceRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
}

// AmbulanceResponse DTO для ответа с информацией о машине
// @Description DTO для ответа с информацией о машине
type AmbulanceResponse struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
}

// HospitalRequest DTO для создания и обновления больницы
// @Description DTO для создания и обновления больницы
type HospitalRequest struct {
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ICUAvailable  int     `json:"icu_available"`
	BedsAvailable int     `json:"beds_available"`
}

// HospitalResponse DTO для ответа с информацией о больнице
// @Description DTO для ответа с информацией о больнице
type HospitalResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ICUAvailable  int     `json:"icu_available"`
	BedsAvailable int     `json:"beds_available"`
}

// BedsRequest DTO для обновления свободных мест
type BedsRequest struct {
	ICUAvailable  int `json:"icu_available"`
	BedsAvailable int `json:"beds_available"`
}

// VolunteerRequest DTO для создания и обновления волонтера
// @Description DTO для создания и обновления волонтера
type VolunteerRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Available string  `json:"available"`
}

// VolunteerResponse DTO для ответа с информацией о волонтере
type VolunteerResponse struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Available string  `json:"available"`
}

// LocationRequest DTO для обновления координат машины или волонтера
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationResponse DTO для ответа после обновления координат
type LocationResponse struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EmergencyRequest DTO для создания и обновления вызова
// @Description DTO для создания и обновления вызова
type EmergencyRequest struct {
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AmbulanceID *int64  `json:"ambulance_id"`
	HospitalID  *int64  `json:"hospital_id"`
	Status      string  `json:"status"`
}

// EmergencyResponse DTO для ответа с информацией о вызове
// @Description DTO для ответа с информацией о вызове
type EmergencyResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	AmbulanceID *int64    `json:"ambulance_id"`
	HospitalID  *int64    `json:"hospital_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusRequest DTO для смены статуса вызова
type StatusRequest struct {
	Status      string `json:"status"`
	AmbulanceID *int64 `json:"ambulance_id,omitempty"`
}

// AcceptRequest DTO для принятия вызова машиной
type AcceptRequest struct {
	AmbulanceID *int64 `json:"ambulance_id"`
}

// MessageResponse DTO корневого эндпоинта
type MessageResponse struct {
	Message string `json:"message"`
}
