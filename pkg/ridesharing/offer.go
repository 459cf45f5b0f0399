package ridesharing

import (
	"time"

	"github.com/travigo/ridesharing/pkg/ctdf"
)

type Role string

const (
	RoleDriver Role = "driver"
	RoleRider  Role = "rider"
)

// Offer is the provider independent form of a ridesharing ad. Only connectors build them.
type Offer struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	Mode       ctdf.Mode `json:"mode"`
	Role       Role      `json:"role"`

	Pickup  ctdf.Place `json:"pickup"`
	Dropoff ctdf.Place `json:"dropoff"`

	DepartureDateTime time.Time `json:"departure_date_time"`
	ArrivalDateTime   time.Time `json:"arrival_date_time"`

	Shape    *ctdf.LineString `json:"shape"`
	Distance int              `json:"distance"`

	Price Price      `json:"price"`
	Seats ctdf.Seats `json:"seats"`

	Driver ctdf.Driver `json:"driver"`

	Network  string `json:"network"`
	Operator string `json:"operator"`
	URL      string `json:"url"`
}

type Price struct {
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	Unit     PriceUnit `json:"unit"`
}

func (o Offer) Duration() time.Duration {
	return o.ArrivalDateTime.Sub(o.DepartureDateTime)
}
