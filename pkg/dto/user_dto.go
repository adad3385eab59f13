package dto

import "time"

// UserCreateDTO is the profile submission payload
type UserCreateDTO struct {
	TelegramID      int64   `json:"telegram_id"`
	Username        string  `json:"username,omitempty"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name,omitempty"`
	ProfilePhotoURL string  `json:"profile_photo_url,omitempty"`
	Age             int     `json:"age"`
	Gender          string  `json:"gender,omitempty"`
	About           string  `json:"about,omitempty"`
	PriceRangeMin   int     `json:"price_range_min"`
	PriceRangeMax   int     `json:"price_range_max"`
	MetroStation    string  `json:"metro_station"`
	SearchRadius    int     `json:"search_radius"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// UserUpdateDTO is a partial update: only non-nil fields are applied.
// Latitude and longitude must be supplied together to move the point.
type UserUpdateDTO struct {
	Age           *int     `json:"age,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	About         *string  `json:"about,omitempty"`
	PriceRangeMin *int     `json:"price_range_min,omitempty"`
	PriceRangeMax *int     `json:"price_range_max,omitempty"`
	MetroStation  *string  `json:"metro_station,omitempty"`
	SearchRadius  *int     `json:"search_radius,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// UserDTO is the user-facing profile view, annotated with whether the
// requesting user already liked it. Optional fields stay absent, not zeroed.
type UserDTO struct {
	ID              string    `json:"id"`
	Username        string    `json:"username,omitempty"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	Age             int       `json:"age"`
	Gender          string    `json:"gender,omitempty"`
	About           string    `json:"about,omitempty"`
	PriceRangeMin   int       `json:"price_range_min"`
	PriceRangeMax   int       `json:"price_range_max"`
	MetroStation    string    `json:"metro_station"`
	SearchRadius    int       `json:"search_radius"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	CreatedAt       time.Time `json:"created_at"`
	IsLiked         bool      `json:"is_liked"`
}
