package instantsystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

const (
	defaultOperator = "Instant System"

	pathModeRidesharingAd = "RIDESHARINGAD"
	adTypeDriver          = "DRIVER"

	nativeRatingMin = 0
	nativeRatingMax = 5

	searchRadius = 200
	minNbResult  = 1
)

type Connector struct {
	Config ridesharing.ProviderConfig
	Client *http.Client
}

func New(config ridesharing.ProviderConfig, client *http.Client) *Connector {
	if config.PriceUnit == "" {
		config.PriceUnit = ridesharing.PriceUnitMinor
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
	query.Set("from", fmt.Sprintf("%f,%f", request.Origin.Latitude(), request.Origin.Longitude()))
	query.Set("to", fmt.Sprintf("%f,%f", request.Destination.Latitude(), request.Destination.Longitude()))
	query.Set("fromDateTime", request.DateTime.Format(time.RFC3339))
	query.Set("radius", fmt.Sprint(searchRadius))
	query.Set("minNbResult", fmt.Sprint(minNbResult))
	query.Set("network", c.Config.Network)

	httpRequest, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", c.Config.ServiceURL, query.Encode()), nil)
	if err != nil {
		return nil, ridesharing.NewConnectorError(c.Config.ID, ridesharing.ErrorKindUnsupportedConfig, err)
	}
	httpRequest.Header.Set("Authorization", fmt.Sprintf("apiKey %s", c.Config.APIKey))

	body, err := ridesharing.Call(ctx, c.Client, httpRequest, c.Config.ID)
	if err != nil {
		return nil, err
	}

	return c.Translate(body)
}

// Translate converts a search response into offers, journeys that cannot be understood are
// skipped individually
func (c *Connector) Translate(body []byte) ([]ridesharing.Offer, error) {
	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, ridesharing.NewConnectorError(c.Config.ID, ridesharing.ErrorKindInvalidResponse, err)
	}

	offers := []ridesharing.Offer{}

	for index, rawJourney := range response.Journeys {
		var journey journey
		if err := json.Unmarshal(rawJourney, &journey); err != nil {
			log.Warn().Err(err).Str("provider", c.Config.ID).Int("index", index).Msg("Skipping undecodable journey")
			continue
		}

		offer, err := c.translateJourney(journey)
		if err != nil {
			log.Warn().Err(err).Str("provider", c.Config.ID).Str("journey", journey.ID).Msg("Skipping journey")
			continue
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

func (c *Connector) translateJourney(journey journey) (ridesharing.Offer, error) {
	var adPath *path
	for i := range journey.Paths {
		if journey.Paths[i].Mode == pathModeRidesharingAd {
			adPath = &journey.Paths[i]
			break
		}
	}
	if adPath == nil {
		return ridesharing.Offer{}, fmt.Errorf("%w: no %s path", ridesharing.ErrOfferTranslation, pathModeRidesharingAd)
	}

	ad := adPath.RideSharingAd
	if ad.ID == "" {
		return ridesharing.Offer{}, fmt.Errorf("%w: ad without id", ridesharing.ErrOfferTranslation)
	}

	if !adPath.From.located() || !adPath.To.located() {
		return ridesharing.Offer{}, fmt.Errorf("%w: ad %s path without coordinates", ridesharing.ErrOfferTranslation, ad.ID)
	}

	departure, err := time.Parse(time.RFC3339, adPath.DepartureDate)
	if err != nil {
		return ridesharing.Offer{}, errors.Join(ridesharing.ErrOfferTranslation, err)
	}
	arrival, err := time.Parse(time.RFC3339, adPath.ArrivalDate)
	if err != nil {
		return ridesharing.Offer{}, errors.Join(ridesharing.ErrOfferTranslation, err)
	}
	if arrival.Before(departure) {
		return ridesharing.Offer{}, fmt.Errorf("%w: arrival before departure", ridesharing.ErrOfferTranslation)
	}

	role := ridesharing.RoleDriver
	if ad.Type != "" && ad.Type != adTypeDriver {
		role = ridesharing.RoleRider
	}

	shape, err := ridesharing.DecodePolyline(adPath.Shape)
	if err != nil {
		log.Debug().Err(err).Str("provider", c.Config.ID).Str("ad", ad.ID).Msg("Ignoring unreadable shape")
		shape = nil
	}

	totalSeats := ad.Vehicle.AvailableSeats
	if ad.Vehicle.TotalSeats != nil {
		totalSeats = *ad.Vehicle.TotalSeats
	}

	return ridesharing.Offer{
		ID:         ad.ID,
		ProviderID: c.Config.ID,
		Mode:       c.Config.PrimaryMode(),
		Role:       role,

		Pickup:  adPath.From.place(),
		Dropoff: adPath.To.place(),

		DepartureDateTime: departure,
		ArrivalDateTime:   arrival,

		Shape:    shape,
		Distance: journey.Distance,

		Price: ridesharing.Price{
			Amount:   ad.Price.Amount,
			Currency: ad.Price.Currency,
			Unit:     c.Config.PriceUnit,
		},
		Seats: ctdf.Seats{
			Available: ad.Vehicle.AvailableSeats,
			Total:     totalSeats,
		},

		Driver: ctdf.Driver{
			Alias:  ad.User.Alias,
			Gender: ridesharing.NormaliseGender(ad.User.Gender),
			Image:  ad.User.ImageURL,
			Rating: ridesharing.NewRating(c.Config, ad.User.Rating.Rate, ad.User.Rating.Count, nativeRatingMin, nativeRatingMax),
		},

		Network:  c.Config.Network,
		Operator: c.Config.OperatorName("", defaultOperator),
		URL:      journey.URL,
	}, nil
}
