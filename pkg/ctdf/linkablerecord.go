package ctdf

// Link is a typed reference from one record to a related one that is serialised elsewhere
// in the response (tickets, ridesharing ads, sections)
type Link struct {
	Rel      string `json:"rel" groups:"basic"`
	Type     string `json:"type" groups:"basic"`
	ID       string `json:"id" groups:"basic"`
	Internal bool   `json:"internal" groups:"basic"`
}

const (
	LinkTypeRidesharingAd = "ridesharing_ad"
	LinkTypeTicket        = "ticket"
	LinkTypeSection       = "section"

	LinkRelRidesharingAd = "ridesharing_ad"
	LinkRelTickets       = "tickets"
	LinkRelSections      = "sections"
)
