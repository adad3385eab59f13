package dto

import "time"

// PropertyDTO is the listing view annotated with the like flag
type PropertyDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int       `json:"price"`
	Address      string    `json:"address"`
	MetroStation string    `json:"metro_station"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Rooms        int       `json:"rooms"`
	Area         float64   `json:"area"`
	Floor        int       `json:"floor"`
	TotalFloors  int       `json:"total_floors"`
	PropertyType string    `json:"property_type"`
	Photos       []string  `json:"photos"`
	Amenities    []string  `json:"amenities"`
	CreatedAt    time.Time `json:"created_at"`
	IsLiked      bool      `json:"is_liked"`
}
