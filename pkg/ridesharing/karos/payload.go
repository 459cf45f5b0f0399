package karos

import (
	"github.com/travigo/ridesharing/pkg/ctdf"
)

type ride struct {
	ID string `json:"id"`

	Driver struct {
		Alias       string   `json:"alias"`
		Gender      string   `json:"gender"`
		Grade       *float64 `json:"grade"`
		ReviewCount int      `json:"review_count"`
		Picture     string   `json:"picture"`
	} `json:"driver"`

	PickupLatitude  float64 `json:"pickup_lat"`
	PickupLongitude float64 `json:"pickup_lng"`
	PickupAddress   string  `json:"pickup_address"`
	PickupDate      int64   `json:"pickup_date"`

	DropoffLatitude  float64 `json:"dropoff_lat"`
	DropoffLongitude float64 `json:"dropoff_lng"`
	DropoffAddress   string  `json:"dropoff_address"`
	DropoffDate      int64   `json:"dropoff_date"`

	JourneyPolyline string `json:"journey_polyline"`
	Distance        int    `json:"distance"`

	Price struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`

	AvailableSeats int `json:"available_seats"`
	TotalSeats     int `json:"total_seats"`

	Operator string `json:"operator"`
	WebURL   string `json:"web_url"`
}

func (r ride) located() bool {
	return (r.PickupLatitude != 0 || r.PickupLongitude != 0) && (r.DropoffLatitude != 0 || r.DropoffLongitude != 0)
}

func (r ride) pickup() ctdf.Place {
	return ctdf.Place{
		Name:     r.PickupAddress,
		Location: ctdf.NewPoint(r.PickupLatitude, r.PickupLongitude),
	}
}

func (r ride) dropoff() ctdf.Place {
	return ctdf.Place{
		Name:     r.DropoffAddress,
		Location: ctdf.NewPoint(r.DropoffLatitude, r.DropoffLongitude),
	}
}
