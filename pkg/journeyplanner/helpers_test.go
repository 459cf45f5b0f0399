package journeyplanner

import (
	"time"

	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

var (
	testOrigin      = ctdf.NewPoint(0.0000898312, 0.0000898312)
	testDestination = ctdf.NewPoint(0.00071865, 0.00188646)
	testDeparture   = time.Date(2012, 6, 14, 7, 55, 0, 0, time.UTC)
)

func walkingJourney(id string, journeyType ctdf.JourneyType, seconds int) *ctdf.Journey {
	arrival := testDeparture.Add(time.Duration(seconds) * time.Second)

	journey := &ctdf.Journey{
		ID:                id,
		Type:              journeyType,
		DepartureDateTime: testDeparture,
		ArrivalDateTime:   arrival,
		Duration:          seconds,
		Sections: []*ctdf.Section{
			{
				ID:                id + "-walk",
				Type:              ctdf.SectionTypeStreetNetwork,
				Mode:              ctdf.ModeWalking,
				From:              ctdf.Place{Location: testOrigin},
				To:                ctdf.Place{Location: testDestination},
				DepartureDateTime: testDeparture,
				ArrivalDateTime:   arrival,
				Duration:          seconds,
				Length:            211,
			},
		},
	}
	journey.Distances.Walking = 211
	journey.Durations.Walking = seconds
	journey.Durations.Total = seconds

	return journey
}

func ridesharingSkeleton(id string) *ctdf.Journey {
	arrival := testDeparture.Add(926 * time.Second)

	journey := &ctdf.Journey{
		ID:                id,
		DepartureDateTime: testDeparture,
		ArrivalDateTime:   arrival,
		Duration:          926,
		Sections: []*ctdf.Section{
			{
				ID:                id + "-placeholder",
				Type:              ctdf.SectionTypeCrowFly,
				Mode:              ctdf.ModeRidesharing,
				From:              ctdf.Place{Location: testOrigin},
				To:                ctdf.Place{Location: testDestination},
				DepartureDateTime: testDeparture,
				ArrivalDateTime:   arrival,
				Duration:          926,
				Length:            211,
			},
		},
	}
	journey.Distances.Ridesharing = 211
	journey.Durations.Ridesharing = 926
	journey.Durations.Total = 926

	return journey
}

func testOffer(id string, amount float64, minutes int) ridesharing.Offer {
	departure := testDeparture.Add(5 * time.Minute)

	return ridesharing.Offer{
		ID:                id,
		ProviderID:        "test-provider",
		Mode:              ctdf.ModeRidesharing,
		Role:              ridesharing.RoleDriver,
		Pickup:            ctdf.Place{Name: "Pickup", Location: ctdf.NewPoint(0.0001, 0.0001)},
		Dropoff:           ctdf.Place{Name: "Dropoff", Location: ctdf.NewPoint(0.0007, 0.0018)},
		DepartureDateTime: departure,
		ArrivalDateTime:   departure.Add(time.Duration(minutes) * time.Minute),
		Distance:          300,
		Price:             ridesharing.Price{Amount: amount, Currency: "EUR", Unit: ridesharing.PriceUnitMinor},
		Seats:             ctdf.Seats{Available: 3, Total: 4},
		Driver:            ctdf.Driver{Alias: "Driver " + id, Gender: ridesharing.GenderUnknown},
		Network:           "Test Network",
		Operator:          "Test Operator",
	}
}

func sectionTypes(journey *ctdf.Journey) []string {
	types := []string{}
	for _, section := range journey.Sections {
		types = append(types, string(section.Type)+"/"+string(section.Mode))
	}
	return types
}
