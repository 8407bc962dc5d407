package core

import "time"

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserProfile struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// PredictionRecord is a stored prediction as returned by the API.
type PredictionRecord struct {
	ID            uint      `json:"id"`
	Suburb        string    `json:"suburb"`
	PropertyType  string    `json:"property_type"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Parking       int       `json:"parking"`
	LandSize      float64   `json:"land_size"`
	BuildingSize  float64   `json:"building_size"`
	Postcode      string    `json:"postcode"`
	SchoolsNearby int       `json:"schools_nearby"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
}
