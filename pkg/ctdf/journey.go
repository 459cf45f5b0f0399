package ctdf

import (
	"time"

	"golang.org/x/exp/slices"
)

type JourneyType string

const (
	JourneyTypeBest    JourneyType = "best"
	JourneyTypeFastest JourneyType = "fastest"
	JourneyTypeRapid   JourneyType = "rapid"
	JourneyTypeComfort JourneyType = "comfort"
)

const (
	JourneyTagEcologic = "ecologic"
)

type Journey struct {
	ID   string      `json:"id" groups:"basic"`
	Type JourneyType `json:"type" groups:"basic"`
	Tags []string    `json:"tags" groups:"basic"`

	DepartureDateTime time.Time `json:"departure_date_time" groups:"basic"`
	ArrivalDateTime   time.Time `json:"arrival_date_time" groups:"basic"`

	// Duration in seconds
	Duration    int `json:"duration" groups:"basic"`
	NbTransfers int `json:"nb_transfers" groups:"basic"`

	Sections []*Section `json:"sections" groups:"basic"`

	Distances Distances `json:"distances" groups:"basic"`
	Durations Durations `json:"durations" groups:"basic"`

	DataSource *DataSourceReference `json:"data_source,omitempty" groups:"detailed"`

	// Populated during composition and used for deterministic ordering
	SkeletonIndex int    `json:"-"`
	OfferID       string `json:"-"`
}

// Distances are in metres per mode
type Distances struct {
	Walking     int `json:"walking" groups:"basic"`
	Bike        int `json:"bike" groups:"basic"`
	Car         int `json:"car" groups:"basic"`
	Ridesharing int `json:"ridesharing" groups:"basic"`
	Taxi        int `json:"taxi" groups:"basic"`
}

// Durations are in seconds per mode
type Durations struct {
	Total       int `json:"total" groups:"basic"`
	Walking     int `json:"walking" groups:"basic"`
	Bike        int `json:"bike" groups:"basic"`
	Car         int `json:"car" groups:"basic"`
	Ridesharing int `json:"ridesharing" groups:"basic"`
	Taxi        int `json:"taxi" groups:"basic"`
}

func (d *Distances) Add(mode Mode, metres int) {
	switch mode {
	case ModeWalking:
		d.Walking += metres
	case ModeBike:
		d.Bike += metres
	case ModeCar:
		d.Car += metres
	case ModeRidesharing:
		d.Ridesharing += metres
	case ModeTaxi:
		d.Taxi += metres
	}
}

func (d *Durations) Add(mode Mode, seconds int) {
	switch mode {
	case ModeWalking:
		d.Walking += seconds
	case ModeBike:
		d.Bike += seconds
	case ModeCar:
		d.Car += seconds
	case ModeRidesharing:
		d.Ridesharing += seconds
	case ModeTaxi:
		d.Taxi += seconds
	}
}

// IsAugmented reports whether the journey was built from a provider offer
func (j *Journey) IsAugmented() bool {
	return j.OfferID != ""
}

// PlaceholderIndex returns the index of the first section waiting to be filled by a provider
func (j *Journey) PlaceholderIndex() (int, bool) {
	for i, section := range j.Sections {
		if section.IsPlaceholder() {
			return i, true
		}
	}

	return -1, false
}

// ComputeAggregates rebuilds the per-mode distances and durations and the journey bounds from its sections
func (j *Journey) ComputeAggregates() {
	j.Distances = Distances{}
	j.Durations = Durations{}

	for _, section := range j.Sections {
		j.Distances.Add(section.Mode, section.Length)
		j.Durations.Add(section.Mode, section.Duration)
	}

	if len(j.Sections) > 0 {
		j.DepartureDateTime = j.Sections[0].DepartureDateTime
		j.ArrivalDateTime = j.Sections[len(j.Sections)-1].ArrivalDateTime
		j.Duration = int(j.ArrivalDateTime.Sub(j.DepartureDateTime).Seconds())
	}

	j.Durations.Total = j.Duration
}

// Modes lists the distinct modes of the journey sections in order of appearance
func (j *Journey) Modes() []Mode {
	var modes []Mode

	for _, section := range j.Sections {
		if section.Mode != "" && !slices.Contains(modes, section.Mode) {
			modes = append(modes, section.Mode)
		}
	}

	return modes
}

// PrimaryMode is the mode the journey spends the most time in, walking only counts when
// nothing else is present
func (j *Journey) PrimaryMode() Mode {
	var primary Mode
	longest := -1

	for _, section := range j.Sections {
		if section.Mode == "" || section.Mode == ModeWalking {
			continue
		}

		if section.Duration > longest {
			primary = section.Mode
			longest = section.Duration
		}
	}

	if primary == "" && len(j.Sections) > 0 {
		return ModeWalking
	}

	return primary
}

func (j *Journey) AddTag(tag string) {
	if !slices.Contains(j.Tags, tag) {
		j.Tags = append(j.Tags, tag)
	}
}

// Clone deep copies the journey so a routing engine skeleton can be reused for several offers
func (j *Journey) Clone() *Journey {
	if j == nil {
		return nil
	}

	clone := *j
	clone.Tags = append([]string(nil), j.Tags...)

	clone.Sections = make([]*Section, 0, len(j.Sections))
	for _, section := range j.Sections {
		clone.Sections = append(clone.Sections, section.Clone())
	}

	if j.DataSource != nil {
		dataSource := *j.DataSource
		clone.DataSource = &dataSource
	}

	return &clone
}
