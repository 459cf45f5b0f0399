package ctdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationDistance(t *testing.T) {
	paris := NewPoint(48.8566, 2.3522)
	versailles := NewPoint(48.8049, 2.1204)

	assert.InDelta(t, 17915, paris.Distance(&versailles), 10)
	assert.Equal(t, 0.0, paris.Distance(&paris))

	assert.True(t, paris.IsValid())
	assert.False(t, Location{}.IsValid())
	assert.Equal(t, 0.0, Location{}.Latitude())
}

func TestLineStringLength(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(0, 0.001)
	c := NewPoint(0.001, 0.001)

	lineString := NewLineString(a, b, c, Location{})

	assert.Len(t, lineString.Coordinates, 3)
	assert.InDelta(t, a.Distance(&b)+b.Distance(&c), lineString.Length(), 0.001)

	var empty *LineString
	assert.Equal(t, 0.0, empty.Length())
}

func TestJourneyAggregatesAndModes(t *testing.T) {
	assert := assert.New(t)

	start := time.Date(2017, 12, 25, 8, 0, 0, 0, time.UTC)

	journey := &Journey{
		Sections: []*Section{
			{Mode: ModeWalking, Length: 120, Duration: 100, DepartureDateTime: start, ArrivalDateTime: start.Add(100 * time.Second)},
			{Mode: ModeRidesharing, Length: 5000, Duration: 600, DepartureDateTime: start.Add(100 * time.Second), ArrivalDateTime: start.Add(700 * time.Second)},
			{Mode: ModeWalking, Length: 80, Duration: 60, DepartureDateTime: start.Add(700 * time.Second), ArrivalDateTime: start.Add(760 * time.Second)},
		},
	}

	journey.ComputeAggregates()

	assert.Equal(200, journey.Distances.Walking)
	assert.Equal(5000, journey.Distances.Ridesharing)
	assert.Equal(160, journey.Durations.Walking)
	assert.Equal(760, journey.Duration)
	assert.Equal(760, journey.Durations.Total)
	assert.Equal([]Mode{ModeWalking, ModeRidesharing}, journey.Modes())
	assert.Equal(ModeRidesharing, journey.PrimaryMode())

	walkOnly := &Journey{Sections: []*Section{{Mode: ModeWalking, Duration: 60}}}
	assert.Equal(ModeWalking, walkOnly.PrimaryMode())
}

func TestJourneyPlaceholderAndClone(t *testing.T) {
	assert := assert.New(t)

	journey := &Journey{
		ID:   "skeleton",
		Tags: []string{"walking"},
		Sections: []*Section{
			{ID: "walk", Type: SectionTypeStreetNetwork, Mode: ModeWalking},
			{ID: "placeholder", Type: SectionTypeCrowFly, Mode: ModeRidesharing},
		},
	}

	index, exists := journey.PlaceholderIndex()
	assert.True(exists)
	assert.Equal(1, index)

	clone := journey.Clone()
	clone.AddTag("ridesharing")
	clone.Sections[1].RidesharingJourneys = []*Journey{{ID: "nested"}}
	clone.Sections[1].Links = append(clone.Sections[1].Links, Link{ID: "ticket"})

	assert.Equal([]string{"walking"}, journey.Tags)
	assert.Empty(journey.Sections[1].RidesharingJourneys)
	assert.Empty(journey.Sections[1].Links)

	crowFlyWalk := &Section{Type: SectionTypeCrowFly, Mode: ModeWalking}
	assert.False(crowFlyWalk.IsPlaceholder())
}
