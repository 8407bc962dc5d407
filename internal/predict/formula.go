package predict

import "context"

// Formula is a fixed linear price model over the numeric features.
type Formula struct {
	Base         float64
	Bedroom      float64
	Bathroom     float64
	ParkingSpace float64
	LandSqm      float64
	BuildingSqm  float64
}

func DefaultFormula() Formula {
	return Formula{
		Base:         500000,
		Bedroom:      80000,
		Bathroom:     60000,
		ParkingSpace: 20000,
		LandSqm:      500,
		BuildingSqm:  1200,
	}
}

func (f Formula) Estimate(_ context.Context, features Features) (float64, error) {
	if err := features.Validate(); err != nil {
		return 0, err
	}

	price := f.Base +
		float64(features.Bedrooms)*f.Bedroom +
		float64(features.Bathrooms)*f.Bathroom +
		float64(features.Parking)*f.ParkingSpace +
		features.LandSize*f.LandSqm +
		features.BuildingSize*f.BuildingSqm

	return finitePrice(price)
}
