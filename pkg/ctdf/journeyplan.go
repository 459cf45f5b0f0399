package ctdf

// JourneysResponse is what the planning API serialises for a request
type JourneysResponse struct {
	Journeys []*Journey `json:"journeys" groups:"basic"`
	Tickets  []*Ticket  `json:"tickets" groups:"basic"`

	// Debug is attached after group reduction so it is never filtered
	Debug any `json:"debug,omitempty"`
}
