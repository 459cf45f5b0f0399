package journeyplanner

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"golang.org/x/exp/slices"
)

const DefaultRapidMargin = 30 * time.Minute

var typeRank = map[ctdf.JourneyType]int{
	ctdf.JourneyTypeBest:    0,
	ctdf.JourneyTypeFastest: 1,
	ctdf.JourneyTypeRapid:   2,
	ctdf.JourneyTypeComfort: 3,
}

type Classifier struct {
	EcologicModes []ctdf.Mode
	// RapidMargin is how much slower than the fastest direct journey an augmented journey may be
	// and still be offered, a negative margin requires it to be faster by that much
	RapidMargin time.Duration
}

func NewClassifier() *Classifier {
	return &Classifier{
		EcologicModes: []ctdf.Mode{ctdf.ModeRidesharing, ctdf.ModeBike},
		RapidMargin:   DefaultRapidMargin,
	}
}

// Classify tags and types the candidates and returns them in response order. Augmented
// journeys too slow compared to the direct ones are left out.
func (c *Classifier) Classify(direct []*ctdf.Journey, augmented []*ctdf.Journey) []*ctdf.Journey {
	classified := []*ctdf.Journey{}

	fastestDirectDuration := -1
	for _, journey := range direct {
		if fastestDirectDuration < 0 || journey.Duration < fastestDirectDuration {
			fastestDirectDuration = journey.Duration
		}
	}

	best := -1
	for i, journey := range direct {
		if journey.Type == ctdf.JourneyTypeBest {
			best = i
			break
		}
	}
	if best < 0 && len(direct) > 0 {
		best = 0
	}

	fastest := -1
	for i, journey := range direct {
		if i == best {
			continue
		}
		if fastest < 0 || journey.Duration < direct[fastest].Duration {
			fastest = i
		}
	}

	for i, journey := range direct {
		switch i {
		case best:
			journey.Type = ctdf.JourneyTypeBest
		case fastest:
			journey.Type = ctdf.JourneyTypeFastest
		default:
			journey.Type = ctdf.JourneyTypeComfort
		}

		c.tag(journey, false)
		classified = append(classified, journey)
	}

	rapidLimit := fastestDirectDuration + int(c.RapidMargin.Seconds())

	for _, journey := range augmented {
		duration := offerDuration(journey)

		if fastestDirectDuration >= 0 && duration > rapidLimit {
			log.Debug().
				Str("journey", journey.ID).
				Str("offer", journey.OfferID).
				Int("duration", duration).
				Int("limit", rapidLimit).
				Msg("Culling augmented journey slower than the rapid limit")
			continue
		}

		journey.Type = ctdf.JourneyTypeRapid
		c.tag(journey, true)
		classified = append(classified, journey)
	}

	slices.SortStableFunc(classified, compareJourneys)

	return classified
}

func (c *Classifier) tag(journey *ctdf.Journey, augmented bool) {
	if journey.Tags == nil {
		journey.Tags = []string{}
	}

	for _, mode := range journey.Modes() {
		journey.AddTag(string(mode))
	}

	if augmented && slices.Contains(c.EcologicModes, journey.PrimaryMode()) {
		journey.AddTag(ctdf.JourneyTagEcologic)
	}

	for _, section := range journey.Sections {
		for _, nested := range section.RidesharingJourneys {
			for _, mode := range nested.Modes() {
				nested.AddTag(string(mode))
			}
		}
	}
}

// offerDuration is the journey duration with each placeholder section replaced by the time
// spent in the offered ride
func offerDuration(journey *ctdf.Journey) int {
	duration := journey.Duration

	for _, section := range journey.Sections {
		for _, nested := range section.RidesharingJourneys {
			for _, nestedSection := range nested.Sections {
				if nestedSection.Type == ctdf.SectionTypeRidesharing {
					duration += nestedSection.Duration - section.Duration
				}
			}
		}
	}

	return duration
}

func compareJourneys(a *ctdf.Journey, b *ctdf.Journey) int {
	if rankA, rankB := typeRank[a.Type], typeRank[b.Type]; rankA != rankB {
		return rankA - rankB
	}

	if !a.ArrivalDateTime.Equal(b.ArrivalDateTime) {
		if a.ArrivalDateTime.Before(b.ArrivalDateTime) {
			return -1
		}
		return 1
	}

	if a.SkeletonIndex != b.SkeletonIndex {
		return a.SkeletonIndex - b.SkeletonIndex
	}

	switch {
	case a.OfferID < b.OfferID:
		return -1
	case a.OfferID > b.OfferID:
		return 1
	}

	return 0
}
