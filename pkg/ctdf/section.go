package ctdf

import "time"

type SectionType string

//goland:noinspection GoUnusedConst
const (
	SectionTypeCrowFly         SectionType = "crow_fly"
	SectionTypeRidesharing     SectionType = "ridesharing"
	SectionTypeStreetNetwork   SectionType = "street_network"
	SectionTypePublicTransport SectionType = "public_transport"
	SectionTypeTransfer        SectionType = "transfer"
	SectionTypeWaiting         SectionType = "waiting"
)

type Section struct {
	ID   string      `json:"id" groups:"basic"`
	Type SectionType `json:"type" groups:"basic"`
	Mode Mode        `json:"mode,omitempty" groups:"basic"`

	From Place `json:"from" groups:"basic"`
	To   Place `json:"to" groups:"basic"`

	DepartureDateTime time.Time `json:"departure_date_time" groups:"basic"`
	ArrivalDateTime   time.Time `json:"arrival_date_time" groups:"basic"`

	// Duration in seconds, Length in metres
	Duration int `json:"duration" groups:"basic"`
	Length   int `json:"length" groups:"basic"`

	GeoJSON *LineString `json:"geojson,omitempty" groups:"detailed"`

	Links []Link `json:"links,omitempty" groups:"basic"`

	RidesharingInformations *RidesharingInformations `json:"ridesharing_informations,omitempty" groups:"basic"`
	RidesharingJourneys     []*Journey               `json:"ridesharing_journeys,omitempty" groups:"basic"`
}

// IsPlaceholder reports whether the routing engine left this section to be filled by a provider
func (s *Section) IsPlaceholder() bool {
	if s.Type != SectionTypeCrowFly {
		return false
	}

	for _, mode := range AugmentableModes {
		if s.Mode == mode {
			return true
		}
	}

	return false
}

// Validate checks the section can be used as an anchor for composition
func (s *Section) Validate() bool {
	return s.From.Location.IsValid() && s.To.Location.IsValid() && !s.DepartureDateTime.IsZero()
}

func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Links = append([]Link(nil), s.Links...)

	if s.RidesharingJourneys != nil {
		clone.RidesharingJourneys = make([]*Journey, 0, len(s.RidesharingJourneys))
		for _, journey := range s.RidesharingJourneys {
			clone.RidesharingJourneys = append(clone.RidesharingJourneys, journey.Clone())
		}
	}

	if s.RidesharingInformations != nil {
		informations := *s.RidesharingInformations
		clone.RidesharingInformations = &informations
	}

	return &clone
}

type RidesharingInformations struct {
	Operator string `json:"operator" groups:"basic"`
	Network  string `json:"network" groups:"basic"`
	Driver   Driver `json:"driver" groups:"basic"`
	Seats    Seats  `json:"seats" groups:"basic"`
}

type Driver struct {
	Alias  string `json:"alias" groups:"basic"`
	Gender string `json:"gender" groups:"basic"`
	Image  string `json:"image" groups:"basic"`
	Rating Rating `json:"rating" groups:"basic"`
}

type Rating struct {
	Value    *float64 `json:"value,omitempty" groups:"basic"`
	Count    int      `json:"count" groups:"basic"`
	ScaleMin float64  `json:"scale_min" groups:"basic"`
	ScaleMax float64  `json:"scale_max" groups:"basic"`
}

type Seats struct {
	Available int `json:"available" groups:"basic"`
	Total     int `json:"total" groups:"basic"`
}
