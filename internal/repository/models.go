package repository

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type Prediction struct {
	ID            uint      `gorm:"primaryKey"`
	Suburb        string    `gorm:"size:128"`
	PropertyType  string    `gorm:"size:64"`
	Bedrooms      int       `gorm:"not null;default:0"`
	Bathrooms     int       `gorm:"not null;default:0"`
	Parking       int       `gorm:"not null;default:0"`
	LandSize      float64   `gorm:"not null;default:0"`
	BuildingSize  float64   `gorm:"not null;default:0"`
	Postcode      string    `gorm:"size:16"`
	SchoolsNearby int       `gorm:"not null;default:0"`
	Price         float64   `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
}
