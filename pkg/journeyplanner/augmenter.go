package journeyplanner

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

var ErrEmptyPlanRequest = errors.New("plan request contains no journeys")

// Fetcher returns every offer available for a leg, failures are only reported
type Fetcher interface {
	Fetch(ctx context.Context, request ridesharing.Request) ([]ridesharing.Offer, ridesharing.FetchReport)
}

// ReportSink receives fetch reports for offline analysis
type ReportSink interface {
	IndexFetchReport(report ridesharing.FetchReport)
}

// PlanRequest is the routing engine result to augment
type PlanRequest struct {
	Origin      ctdf.Location   `json:"origin"`
	Destination ctdf.Location   `json:"destination"`
	DateTime    time.Time       `json:"datetime"`
	Journeys    []*ctdf.Journey `json:"journeys"`

	Debug bool `json:"-"`
}

type DebugInformation struct {
	FetchReports []ridesharing.FetchReport `json:"fetch_reports"`
	Dropped      []string                  `json:"dropped_skeletons"`
}

type Augmenter struct {
	Fetcher    Fetcher
	Composer   *Composer
	Classifier *Classifier
	ReportSink ReportSink
}

type leg struct {
	request ridesharing.Request
	offers  []ridesharing.Offer
	report  ridesharing.FetchReport
}

func (a *Augmenter) Augment(ctx context.Context, planRequest PlanRequest) (*ctdf.JourneysResponse, error) {
	if len(planRequest.Journeys) == 0 {
		return nil, ErrEmptyPlanRequest
	}

	responseContext := NewResponseContext()
	debugInformation := &DebugInformation{
		FetchReports: []ridesharing.FetchReport{},
		Dropped:      []string{},
	}

	var direct []*ctdf.Journey
	skeletonLegs := map[int]string{}
	legs := map[string]*leg{}
	var legOrder []string

	for index, journey := range planRequest.Journeys {
		journey.SkeletonIndex = index

		if _, isSkeleton := journey.PlaceholderIndex(); !isSkeleton {
			direct = append(direct, journey)
			continue
		}

		request, err := PlaceholderRequest(journey)
		if err != nil {
			log.Warn().Err(err).Str("journey", journey.ID).Msg("Skipping skeleton journey")
			debugInformation.Dropped = append(debugInformation.Dropped, journey.ID)
			continue
		}

		key := request.Key()
		skeletonLegs[index] = key

		if _, exists := legs[key]; !exists {
			legs[key] = &leg{request: request}
			legOrder = append(legOrder, key)
		}
	}

	p := pool.New()
	for _, key := range legOrder {
		pending := legs[key]

		p.Go(func() {
			pending.offers, pending.report = a.Fetcher.Fetch(ctx, pending.request)
		})
	}
	p.Wait()

	for _, key := range legOrder {
		report := legs[key].report
		debugInformation.FetchReports = append(debugInformation.FetchReports, report)

		if a.ReportSink != nil {
			a.ReportSink.IndexFetchReport(report)
		}
	}

	var augmented []*ctdf.Journey
	for index, journey := range planRequest.Journeys {
		key, isSkeleton := skeletonLegs[index]
		if !isSkeleton {
			continue
		}

		composites, err := a.Composer.Compose(responseContext, index, journey, legs[key].offers)
		if err != nil {
			log.Warn().Err(err).Str("journey", journey.ID).Msg("Failed to compose skeleton journey")
			debugInformation.Dropped = append(debugInformation.Dropped, journey.ID)
			continue
		}

		augmented = append(augmented, composites...)
	}

	journeys := a.Classifier.Classify(direct, augmented)

	response := &ctdf.JourneysResponse{
		Journeys: journeys,
		Tickets:  responseContext.TicketsFor(journeys),
	}

	if planRequest.Debug {
		response.Debug = debugInformation
	}

	log.Debug().
		Int("direct", len(direct)).
		Int("augmented", len(augmented)).
		Int("legs", len(legOrder)).
		Int("tickets", len(response.Tickets)).
		Msg("Augmented plan")

	return response, nil
}
