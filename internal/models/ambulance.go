package models

// Ambulance - машина скорой помощи. Status - произвольный текст.
type Ambulance struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
}
