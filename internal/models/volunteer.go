package models

// Volunteer - волонтер. Available хранится текстом, а не bool.
type Volunteer struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Available string  `json:"available"`
}
