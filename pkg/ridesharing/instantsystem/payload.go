package instantsystem

import (
	"encoding/json"

	"github.com/travigo/ridesharing/pkg/ctdf"
)

type searchResponse struct {
	Total    int               `json:"total"`
	Journeys []json.RawMessage `json:"journeys"`
	URL      string            `json:"url"`
}

type journey struct {
	ID            string `json:"id"`
	DepartureDate string `json:"departureDate"`
	ArrivalDate   string `json:"arrivalDate"`
	Duration      int    `json:"duration"`
	Distance      int    `json:"distance"`
	URL           string `json:"url"`
	Paths         []path `json:"paths"`
}

type path struct {
	Mode          string        `json:"mode"`
	From          point         `json:"from"`
	To            point         `json:"to"`
	DepartureDate string        `json:"departureDate"`
	ArrivalDate   string        `json:"arrivalDate"`
	Shape         string        `json:"shape"`
	RideSharingAd rideSharingAd `json:"rideSharingAd"`
}

type point struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// located is false when the provider left the coordinates out
func (p point) located() bool {
	return p.Lat != 0 || p.Lon != 0
}

func (p point) place() ctdf.Place {
	return ctdf.Place{
		Name:     p.Name,
		Location: ctdf.NewPoint(p.Lat, p.Lon),
	}
}

type rideSharingAd struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	From point  `json:"from"`
	To   point  `json:"to"`
	User struct {
		Alias    string `json:"alias"`
		Gender   string `json:"gender"`
		ImageURL string `json:"imageUrl"`
		Rating   struct {
			Rate  float64 `json:"rate"`
			Count int     `json:"count"`
		} `json:"rating"`
	} `json:"user"`
	Price struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
	Vehicle struct {
		AvailableSeats int  `json:"availableSeats"`
		TotalSeats     *int `json:"totalSeats"`
	} `json:"vehicle"`
}
