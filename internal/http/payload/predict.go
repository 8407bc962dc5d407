package payload

import (
	"houseprice/internal/predict"

	"github.com/jellydator/validation"
)

// PredictRequest carries the property features. Every field is required, so the
// numeric ones are pointers to tell a missing field from a zero.
type PredictRequest struct {
	Suburb        string   `json:"suburb"`
	PropertyType  string   `json:"property_type"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	Parking       *int     `json:"parking"`
	LandSize      *float64 `json:"land_size"`
	BuildingSize  *float64 `json:"building_size"`
	Postcode      string   `json:"postcode"`
	SchoolsNearby *int     `json:"schools_nearby"`
}

const (
	maxRooms       = 50
	maxSchools     = 100
	maxLandSqm     = 1_000_000.0
	maxBuildingSqm = 100_000.0
)

// IgnoreUnknownFields lets clients send extra property attributes.
func (p PredictRequest) IgnoreUnknownFields() bool {
	return true
}

func (p PredictRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Suburb, validation.Required, validation.RuneLength(1, 128)),
		validation.Field(&p.PropertyType, validation.Required, validation.RuneLength(1, 64)),
		validation.Field(&p.Bedrooms, validation.NotNil, validation.Min(0), validation.Max(maxRooms)),
		validation.Field(&p.Bathrooms, validation.NotNil, validation.Min(0), validation.Max(maxRooms)),
		validation.Field(&p.Parking, validation.NotNil, validation.Min(0), validation.Max(maxRooms)),
		validation.Field(&p.LandSize, validation.NotNil, validation.Min(0.0), validation.Max(maxLandSqm)),
		validation.Field(&p.BuildingSize, validation.NotNil, validation.Min(0.0), validation.Max(maxBuildingSqm)),
		validation.Field(&p.Postcode, validation.Required, validation.RuneLength(1, 16)),
		validation.Field(&p.SchoolsNearby, validation.NotNil, validation.Min(0), validation.Max(maxSchools)),
	)
}

// ToFeatures converts a validated request. Missing numbers become zero.
func (p PredictRequest) ToFeatures() predict.Features {
	return predict.Features{
		Suburb:        p.Suburb,
		PropertyType:  p.PropertyType,
		Bedrooms:      deref(p.Bedrooms),
		Bathrooms:     deref(p.Bathrooms),
		Parking:       deref(p.Parking),
		LandSize:      deref(p.LandSize),
		BuildingSize:  deref(p.BuildingSize),
		Postcode:      p.Postcode,
		SchoolsNearby: deref(p.SchoolsNearby),
	}
}

func deref[T int | float64](v *T) T {
	if v == nil {
		return 0
	}
	return *v
}
