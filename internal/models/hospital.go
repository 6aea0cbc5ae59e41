package models

// Hospital - больница с количеством свободных мест. Счетчики ничем не ограничены.
type Hospital struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ICUAvailable  int     `json:"icu_available"`
	BedsAvailable int     `json:"beds_available"`
}
