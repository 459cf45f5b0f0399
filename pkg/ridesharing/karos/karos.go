package karos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

const (
	defaultOperator = "Karos"

	nativeRatingMin = 1
	nativeRatingMax = 5

	searchWindow = 30 * time.Minute
)

// Connector talks to the Karos carpooling search endpoint. Prices are returned in whole currency
// units and timestamps as unix seconds.
type Connector struct {
	Config ridesharing.ProviderConfig
	Client *http.Client
}

func New(config ridesharing.ProviderConfig, client *http.Client) *Connector {
	if config.PriceUnit == "" {
		config.PriceUnit = ridesharing.PriceUnitMajor
	}

	return &Connector{
		Config: config,
		Client: client,
	}
}

func (c *Connector) Provider() ridesharing.ProviderConfig {
	return c.Config
}

func (c *Connector) Fetch(ctx context.Context, request ridesharing.Request) ([]ridesharing.Offer, error) {
	query := url.Values{}
	query.Set("departure_lat", fmt.Sprintf("%f", request.Origin.Latitude()))
	query.Set("departure_lng", fmt.Sprintf("%f", request.Origin.Longitude()))
	query.Set("arrival_lat", fmt.Sprintf("%f", request.Destination.Latitude()))
	query.Set("arrival_lng", fmt.Sprintf("%f", request.Destination.Longitude()))
	query.Set("departure_date", fmt.Sprint(request.DateTime.Unix()))
	query.Set("time_delta", fmt.Sprint(int(searchWindow.Seconds())))

	httpRequest, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", c.Config.ServiceURL, query.Encode()), nil)
	if err != nil {
		return nil, ridesharing.NewConnectorError(c.Config.ID, ridesharing.ErrorKindUnsupportedConfig, err)
	}
	httpRequest.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Config.APIKey))

	body, err := ridesharing.Call(ctx, c.Client, httpRequest, c.Config.ID)
	if err != nil {
		return nil, err
	}

	return c.Translate(body)
}

func (c *Connector) Translate(body []byte) ([]ridesharing.Offer, error) {
	var rawRides []json.RawMessage
	if err := json.Unmarshal(body, &rawRides); err != nil {
		return nil, ridesharing.NewConnectorError(c.Config.ID, ridesharing.ErrorKindInvalidResponse, err)
	}

	offers := []ridesharing.Offer{}

	for index, rawRide := range rawRides {
		var ride ride
		if err := json.Unmarshal(rawRide, &ride); err != nil {
			log.Warn().Err(err).Str("provider", c.Config.ID).Int("index", index).Msg("Skipping undecodable ride")
			continue
		}

		offer, err := c.translateRide(ride)
		if err != nil {
			log.Warn().Err(err).Str("provider", c.Config.ID).Str("ride", ride.ID).Msg("Skipping ride")
			continue
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

func (c *Connector) translateRide(ride ride) (ridesharing.Offer, error) {
	if ride.ID == "" {
		return ridesharing.Offer{}, fmt.Errorf("%w: ride without id", ridesharing.ErrOfferTranslation)
	}
	if !ride.located() {
		return ridesharing.Offer{}, fmt.Errorf("%w: ride without pickup or dropoff coordinates", ridesharing.ErrOfferTranslation)
	}
	if ride.PickupDate == 0 || ride.DropoffDate < ride.PickupDate {
		return ridesharing.Offer{}, fmt.Errorf("%w: invalid pickup and dropoff dates", ridesharing.ErrOfferTranslation)
	}

	shape, err := ridesharing.DecodePolyline(ride.JourneyPolyline)
	if err != nil {
		shape = nil
	}

	var grade float64
	reviewCount := ride.Driver.ReviewCount
	if ride.Driver.Grade != nil {
		grade = *ride.Driver.Grade
	} else {
		reviewCount = 0
	}

	totalSeats := ride.TotalSeats
	if totalSeats < ride.AvailableSeats {
		totalSeats = ride.AvailableSeats
	}

	return ridesharing.Offer{
		ID:         ride.ID,
		ProviderID: c.Config.ID,
		Mode:       c.Config.PrimaryMode(),
		Role:       ridesharing.RoleDriver,

		Pickup:  ride.pickup(),
		Dropoff: ride.dropoff(),

		DepartureDateTime: time.Unix(ride.PickupDate, 0).UTC(),
		ArrivalDateTime:   time.Unix(ride.DropoffDate, 0).UTC(),

		Shape:    shape,
		Distance: ride.Distance,

		Price: ridesharing.Price{
			Amount:   ride.Price.Amount,
			Currency: ride.Price.Currency,
			Unit:     c.Config.PriceUnit,
		},
		Seats: ctdf.Seats{
			Available: ride.AvailableSeats,
			Total:     totalSeats,
		},

		Driver: ctdf.Driver{
			Alias:  ride.Driver.Alias,
			Gender: ridesharing.NormaliseGender(ride.Driver.Gender),
			Image:  ride.Driver.Picture,
			Rating: ridesharing.NewRating(c.Config, grade, reviewCount, nativeRatingMin, nativeRatingMax),
		},

		Network:  c.Config.Network,
		Operator: c.Config.OperatorName(ride.Operator, defaultOperator),
		URL:      ride.WebURL,
	}, nil
}
