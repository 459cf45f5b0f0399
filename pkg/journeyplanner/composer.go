package journeyplanner

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

const DefaultWalkingSpeed = 1.12

var journeyNamespace = uuid.MustParse("3c6e0b8a-9d2f-5a41-8e7b-61f4d0c2a953")

var (
	ErrSkeletonComposition   = errors.New("skeleton composition failed")
	ErrOfferGeometryMismatch = errors.New("offer does not match placeholder geometry")
)

// Composer splices offers into the placeholder section of skeleton journeys
type Composer struct {
	// WalkingSpeed in metres per second for the crow fly legs around the offer
	WalkingSpeed float64
	// MaxAnchorDistance in metres between the placeholder ends and the offer pickup/dropoff, 0 disables the check
	MaxAnchorDistance float64
	Currencies        ridesharing.CurrencyTable
}

func NewComposer() *Composer {
	return &Composer{
		WalkingSpeed: DefaultWalkingSpeed,
		Currencies:   ridesharing.DefaultCurrencyTable(),
	}
}

// PlaceholderRequest builds the provider request for the leg the skeleton leaves open
func PlaceholderRequest(skeleton *ctdf.Journey) (ridesharing.Request, error) {
	index, exists := skeleton.PlaceholderIndex()
	if !exists {
		return ridesharing.Request{}, fmt.Errorf("%w: journey %s has no placeholder section", ErrSkeletonComposition, skeleton.ID)
	}

	placeholder := skeleton.Sections[index]
	if !placeholder.Validate() {
		return ridesharing.Request{}, fmt.Errorf("%w: journey %s placeholder section %d is missing coordinates or times", ErrSkeletonComposition, skeleton.ID, index)
	}

	return ridesharing.Request{
		Origin:      placeholder.From.Location,
		Destination: placeholder.To.Location,
		DateTime:    placeholder.DepartureDateTime,
		Mode:        placeholder.Mode,
	}, nil
}

// Compose produces one composite journey per usable offer. Offers that cannot be reconciled
// with the placeholder are dropped, a malformed skeleton fails as a whole.
func (c *Composer) Compose(responseContext *ResponseContext, skeletonIndex int, skeleton *ctdf.Journey, offers []ridesharing.Offer) ([]*ctdf.Journey, error) {
	if _, err := PlaceholderRequest(skeleton); err != nil {
		return nil, err
	}

	composites := []*ctdf.Journey{}

	for _, offer := range offers {
		composite, err := c.composeOffer(responseContext, skeletonIndex, skeleton, offer)
		if err != nil {
			log.Warn().Err(err).
				Str("journey", skeleton.ID).
				Str("provider", offer.ProviderID).
				Str("offer", offer.ID).
				Msg("Dropping ridesharing offer")
			continue
		}

		composites = append(composites, composite)
	}

	return composites, nil
}

func (c *Composer) composeOffer(responseContext *ResponseContext, skeletonIndex int, skeleton *ctdf.Journey, offer ridesharing.Offer) (*ctdf.Journey, error) {
	placeholderIndex, _ := skeleton.PlaceholderIndex()
	placeholder := skeleton.Sections[placeholderIndex]

	if !offer.Pickup.Location.IsValid() || !offer.Dropoff.Location.IsValid() {
		return nil, fmt.Errorf("%w: offer has no pickup or dropoff location", ErrOfferGeometryMismatch)
	}

	if c.MaxAnchorDistance > 0 {
		pickupDistance := placeholder.From.Location.Distance(&offer.Pickup.Location)
		dropoffDistance := placeholder.To.Location.Distance(&offer.Dropoff.Location)

		if pickupDistance > c.MaxAnchorDistance || dropoffDistance > c.MaxAnchorDistance {
			return nil, fmt.Errorf("%w: pickup %.0fm and dropoff %.0fm away", ErrOfferGeometryMismatch, pickupDistance, dropoffDistance)
		}
	}

	compositeID := uuid.NewSHA1(journeyNamespace, []byte(fmt.Sprintf("%d|%s|%s|%s", skeletonIndex, skeleton.ID, offer.ProviderID, offer.ID))).String()

	nested := &ctdf.Journey{
		ID:   fmt.Sprintf("%s:ridesharing", compositeID),
		Tags: []string{},
		DataSource: &ctdf.DataSourceReference{
			Provider:   offer.ProviderID,
			Network:    offer.Network,
			Identifier: offer.ID,
		},
		SkeletonIndex: skeletonIndex,
		OfferID:       offerKey(offer),
	}

	ridesharingSection := c.ridesharingSection(fmt.Sprintf("%s:1", nested.ID), offer)

	approach := c.walkingSection(fmt.Sprintf("%s:0", nested.ID), placeholder.From, offer.Pickup, time.Time{}, offer.DepartureDateTime)
	egress := c.walkingSection(fmt.Sprintf("%s:2", nested.ID), offer.Dropoff, placeholder.To, offer.ArrivalDateTime, time.Time{})

	ticket := responseContext.Ticket(offer, c.Currencies, ridesharingSection.ID)
	ridesharingSection.Links = []ctdf.Link{
		{
			Rel:  ctdf.LinkRelRidesharingAd,
			Type: ctdf.LinkTypeRidesharingAd,
			ID:   offer.ID,
		},
		{
			Rel:      ctdf.LinkRelTickets,
			Type:     ctdf.LinkTypeTicket,
			ID:       ticket.ID,
			Internal: true,
		},
	}

	nested.Sections = []*ctdf.Section{approach, ridesharingSection, egress}
	nested.ComputeAggregates()

	responseContext.RegisterOffer(offer)

	composite := skeleton.Clone()
	composite.ID = compositeID
	composite.Type = ""
	composite.Tags = []string{}
	composite.SkeletonIndex = skeletonIndex
	composite.OfferID = offerKey(offer)
	composite.Sections[placeholderIndex].RidesharingJourneys = []*ctdf.Journey{nested}

	return composite, nil
}

func (c *Composer) ridesharingSection(id string, offer ridesharing.Offer) *ctdf.Section {
	geometry := offer.Shape
	if geometry == nil || len(geometry.Coordinates) < 2 {
		geometry = ctdf.NewLineString(offer.Pickup.Location, offer.Dropoff.Location)
	}

	length := offer.Distance
	if length <= 0 {
		length = int(math.Round(geometry.Length()))
	}

	return &ctdf.Section{
		ID:   id,
		Type: ctdf.SectionTypeRidesharing,
		Mode: offer.Mode,

		From: offer.Pickup,
		To:   offer.Dropoff,

		DepartureDateTime: offer.DepartureDateTime,
		ArrivalDateTime:   offer.ArrivalDateTime,

		Duration: int(offer.Duration().Seconds()),
		Length:   length,

		GeoJSON: geometry,

		RidesharingInformations: &ctdf.RidesharingInformations{
			Operator: offer.Operator,
			Network:  offer.Network,
			Driver:   offer.Driver,
			Seats:    offer.Seats,
		},
	}
}

// walkingSection builds a crow fly leg, exactly one of departure or arrival is anchored and the
// other is derived from the walking time
func (c *Composer) walkingSection(id string, from ctdf.Place, to ctdf.Place, departure time.Time, arrival time.Time) *ctdf.Section {
	distance := from.Location.Distance(&to.Location)

	speed := c.WalkingSpeed
	if speed <= 0 {
		speed = DefaultWalkingSpeed
	}
	duration := time.Duration(math.Round(distance/speed)) * time.Second

	if departure.IsZero() {
		departure = arrival.Add(-duration)
	} else {
		arrival = departure.Add(duration)
	}

	return &ctdf.Section{
		ID:   id,
		Type: ctdf.SectionTypeCrowFly,
		Mode: ctdf.ModeWalking,

		From: from,
		To:   to,

		DepartureDateTime: departure,
		ArrivalDateTime:   arrival,

		Duration: int(duration.Seconds()),
		Length:   int(math.Round(distance)),

		GeoJSON: ctdf.NewLineString(from.Location, to.Location),
	}
}
