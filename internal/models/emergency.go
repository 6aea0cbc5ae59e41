package models

import "time"

const (
	EmergencyStatusPending        = "pending"
	EmergencyStatusAccepted       = "accepted"
	EmergencyStatusArrivedAtScene = "arrived_at_scene"
	EmergencyStatusCompleted      = "completed"
)

// Emergency - вызов. AmbulanceID и HospitalID ссылаются на другие таблицы
// только по соглашению об именах, существование записей не проверяется.
type Emergency struct {
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
