package predict

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidFeatures = errors.New("invalid property features")

// Features describes a single property to price.
type Features struct {
	Suburb        string
	PropertyType  string
	Bedrooms      int
	Bathrooms     int
	Parking       int
	LandSize      float64
	BuildingSize  float64
	Postcode      string
	SchoolsNearby int
}

// Validate rejects negative counts and sizes.
func (f Features) Validate() error {
	counts := []struct {
		name  string
		value float64
	}{
		{"bedrooms", float64(f.Bedrooms)},
		{"bathrooms", float64(f.Bathrooms)},
		{"parking", float64(f.Parking)},
		{"land_size", f.LandSize},
		{"building_size", f.BuildingSize},
		{"schools_nearby", float64(f.SchoolsNearby)},
	}

	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidFeatures, c.name)
		}
	}
	return nil
}

// Values flattens the features into a payload keyed by field name.
func (f Features) Values() map[string]any {
	return map[string]any{
		"suburb":         f.Suburb,
		"property_type":  f.PropertyType,
		"bedrooms":       f.Bedrooms,
		"bathrooms":      f.Bathrooms,
		"parking":        f.Parking,
		"land_size":      f.LandSize,
		"building_size":  f.BuildingSize,
		"postcode":       f.Postcode,
		"schools_nearby": f.SchoolsNearby,
	}
}

// finitePrice rejects estimates that overflowed, which only happens for
// implausibly large features.
func finitePrice(price float64) (float64, error) {
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return 0, fmt.Errorf("%w: features are out of range", ErrInvalidFeatures)
	}
	return price, nil
}
