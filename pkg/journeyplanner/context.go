package journeyplanner

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

var ticketNamespace = uuid.MustParse("8f5a2c1e-4b7d-5e39-a6c0-2d91f3b84e17")

// ResponseContext holds everything accumulated while building a single response. It is created
// per request and must not be shared between requests.
type ResponseContext struct {
	tickets     []*ctdf.Ticket
	ticketIndex map[string]*ctdf.Ticket

	offers map[string]ridesharing.Offer
}

func NewResponseContext() *ResponseContext {
	return &ResponseContext{
		ticketIndex: map[string]*ctdf.Ticket{},
		offers:      map[string]ridesharing.Offer{},
	}
}

// FormatCost renders a normalised amount the way clients expect it, whole amounts keep a
// single decimal so 170 becomes "170.0"
func FormatCost(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 1, 64)
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Ticket returns the ticket matching the offer price, reusing an existing one when the
// normalised value and currency are identical, and links it back to the section
func (r *ResponseContext) Ticket(offer ridesharing.Offer, currencies ridesharing.CurrencyTable, sectionID string) *ctdf.Ticket {
	value, currency := currencies.Normalise(offer.Price)
	cost := ctdf.Cost{
		Value:    FormatCost(value),
		Currency: currency,
	}

	key := fmt.Sprintf("%s|%s", cost.Value, cost.Currency)

	ticket, exists := r.ticketIndex[key]
	if !exists {
		ticket = &ctdf.Ticket{
			ID:    uuid.NewSHA1(ticketNamespace, []byte(key)).String(),
			Name:  offer.Network,
			Found: true,
			Cost:  cost,
			Links: []ctdf.Link{},
		}

		r.ticketIndex[key] = ticket
		r.tickets = append(r.tickets, ticket)
	}

	ticket.Links = append(ticket.Links, ctdf.Link{
		Rel:      ctdf.LinkRelSections,
		Type:     ctdf.LinkTypeSection,
		ID:       sectionID,
		Internal: true,
	})

	return ticket
}

// Tickets are returned in the order they were first created
func (r *ResponseContext) Tickets() []*ctdf.Ticket {
	if r.tickets == nil {
		return []*ctdf.Ticket{}
	}
	return r.tickets
}

// TicketsFor keeps only the tickets, and ticket links, referenced by sections of the given journeys
func (r *ResponseContext) TicketsFor(journeys []*ctdf.Journey) []*ctdf.Ticket {
	sectionIDs := map[string]bool{}
	for _, journey := range journeys {
		collectSectionIDs(journey, sectionIDs)
	}

	tickets := []*ctdf.Ticket{}
	for _, ticket := range r.tickets {
		var links []ctdf.Link
		for _, link := range ticket.Links {
			if sectionIDs[link.ID] {
				links = append(links, link)
			}
		}

		if len(links) > 0 {
			ticket.Links = links
			tickets = append(tickets, ticket)
		}
	}

	return tickets
}

func collectSectionIDs(journey *ctdf.Journey, sectionIDs map[string]bool) {
	for _, section := range journey.Sections {
		sectionIDs[section.ID] = true

		for _, nested := range section.RidesharingJourneys {
			collectSectionIDs(nested, sectionIDs)
		}
	}
}

func (r *ResponseContext) RegisterOffer(offer ridesharing.Offer) {
	r.offers[offerKey(offer)] = offer
}

func (r *ResponseContext) Offer(providerID string, offerID string) (ridesharing.Offer, bool) {
	offer, exists := r.offers[fmt.Sprintf("%s:%s", providerID, offerID)]
	return offer, exists
}

func offerKey(offer ridesharing.Offer) string {
	return fmt.Sprintf("%s:%s", offer.ProviderID, offer.ID)
}
