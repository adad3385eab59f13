package models

import "time"

// Property is a rental listing document in the properties collection,
// location carries a 2dsphere index. Only active properties are discoverable.
type Property struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Price        int       `bson:"price" json:"price"`
	Address      string    `bson:"address" json:"address"`
	MetroStation string    `bson:"metro_station" json:"metro_station"`
	Location     GeoPoint  `bson:"location" json:"location"`
	Rooms        int       `bson:"rooms" json:"rooms"`
	Area         float64   `bson:"area" json:"area"` // square meters
	Floor        int       `bson:"floor" json:"floor"`
	TotalFloors  int       `bson:"total_floors" json:"total_floors"`
	PropertyType string    `bson:"property_type" json:"property_type"` // "apartment", "room", "studio"
	Photos       []string  `bson:"photos" json:"photos"`
	Amenities    []string  `bson:"amenities" json:"amenities"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
}

// PropertyWithDistance is a property as produced by the $geoNear stage
type PropertyWithDistance struct {
	Property `bson:",inline"`
	Distance float64 `bson:"distance" json:"distance"`
}
