package models

import "time"

// GeoPoint is a GeoJSON point, coordinates ordered [longitude, latitude]
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(longitude, latitude float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{longitude, latitude}}
}

func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// User is the profile document stored in the users collection.
// telegram_id carries a unique index, location a 2dsphere index.
type User struct {
	ID              string    `bson:"id" json:"id"`
	TelegramID      int64     `bson:"telegram_id" json:"telegram_id"`
	Username        string    `bson:"username,omitempty" json:"username,omitempty"`
	FirstName       string    `bson:"first_name" json:"first_name"`
	LastName        string    `bson:"last_name,omitempty" json:"last_name,omitempty"`
	ProfilePhotoURL string    `bson:"profile_photo_url,omitempty" json:"profile_photo_url,omitempty"`
	Age             int       `bson:"age" json:"age"`
	Gender          string    `bson:"gender,omitempty" json:"gender,omitempty"`
	About           string    `bson:"about,omitempty" json:"about,omitempty"`
	PriceRangeMin   int       `bson:"price_range_min" json:"price_range_min"`
	PriceRangeMax   int       `bson:"price_range_max" json:"price_range_max"`
	MetroStation    string    `bson:"metro_station" json:"metro_station"`
	SearchRadius    int       `bson:"search_radius" json:"search_radius"` // kilometers
	Location        GeoPoint  `bson:"location" json:"location"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
}

// UserWithDistance is a user candidate as produced by the $geoNear stage,
// distance in meters from the querying profile's point.
type UserWithDistance struct {
	User     `bson:",inline"`
	Distance float64 `bson:"distance" json:"distance"`
}
