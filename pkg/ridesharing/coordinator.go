package ridesharing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// Coordinator fans a request out to every configured connector and gathers what comes back
// before the per provider timeouts expire
type Coordinator struct {
	connectors []Connector
}

func NewCoordinator(connectors ...Connector) *Coordinator {
	return &Coordinator{connectors: connectors}
}

func (c *Coordinator) Connectors() []Connector {
	return c.connectors
}

func (c *Coordinator) Providers() []ProviderConfig {
	providers := make([]ProviderConfig, 0, len(c.connectors))
	for _, connector := range c.connectors {
		providers = append(providers, connector.Provider())
	}
	return providers
}

type FetchReport struct {
	Request   string           `json:"request"`
	StartedAt time.Time        `json:"started_at"`
	Duration  time.Duration    `json:"duration"`
	Providers []ProviderReport `json:"providers"`
}

type ProviderReport struct {
	Provider string        `json:"provider"`
	Offers   int           `json:"offers"`
	Latency  time.Duration `json:"latency"`
	Skipped  bool          `json:"skipped,omitempty"`
	Error    string        `json:"error,omitempty"`
	Kind     ErrorKind     `json:"kind,omitempty"`
}

func (r FetchReport) Failures() int {
	failures := 0
	for _, provider := range r.Providers {
		if provider.Error != "" {
			failures += 1
		}
	}
	return failures
}

type fetchResult struct {
	offers []Offer
	err    error
}

// Fetch never fails, provider errors end up in the report and the returned offers are ordered
// by provider configuration order and then by the order each provider returned them
func (c *Coordinator) Fetch(ctx context.Context, request Request) ([]Offer, FetchReport) {
	report := FetchReport{
		Request:   request.Key(),
		StartedAt: time.Now(),
		Providers: make([]ProviderReport, len(c.connectors)),
	}
	results := make([]fetchResult, len(c.connectors))

	p := pool.New()
	for i, connector := range c.connectors {
		provider := connector.Provider()

		if request.Mode != "" && !provider.SupportsMode(request.Mode) {
			report.Providers[i] = ProviderReport{Provider: provider.ID, Skipped: true}
			continue
		}

		p.Go(func() {
			startTime := time.Now()
			offers, err := fetchWithTimeout(ctx, connector, request)
			latency := time.Since(startTime)

			results[i] = fetchResult{offers: offers, err: err}
			report.Providers[i] = ProviderReport{
				Provider: provider.ID,
				Offers:   len(offers),
				Latency:  latency,
			}

			fetchDuration.WithLabelValues(provider.ID).Observe(latency.Seconds())

			if err != nil {
				report.Providers[i].Error = err.Error()
				report.Providers[i].Kind = KindOf(err)
				fetchTotal.WithLabelValues(provider.ID, string(KindOf(err))).Inc()

				log.Error().Err(err).
					Str("provider", provider.ID).
					Str("kind", string(KindOf(err))).
					Str("latency", latency.String()).
					Msg("Ridesharing provider fetch failed")
				return
			}

			fetchTotal.WithLabelValues(provider.ID, "ok").Inc()
			offersTotal.WithLabelValues(provider.ID).Add(float64(len(offers)))

			log.Debug().
				Str("provider", provider.ID).
				Int("offers", len(offers)).
				Str("latency", latency.String()).
				Msg("Ridesharing provider fetch complete")
		})
	}
	p.Wait()

	var offers []Offer
	for _, result := range results {
		if result.err == nil {
			offers = append(offers, result.offers...)
		}
	}

	report.Duration = time.Since(report.StartedAt)

	return offers, report
}

// fetchWithTimeout returns as soon as the provider deadline passes even if the connector
// ignores its context, the abandoned call finishes into a buffered channel
func fetchWithTimeout(ctx context.Context, connector Connector, request Request) ([]Offer, error) {
	provider := connector.Provider()

	ctx, cancel := context.WithTimeout(ctx, provider.RequestTimeout())
	defer cancel()

	done := make(chan fetchResult, 1)

	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				done <- fetchResult{err: NewConnectorError(provider.ID, ErrorKindInvalidResponse, fmt.Errorf("connector panic: %v", recovered))}
			}
		}()

		offers, err := connector.Fetch(ctx, request)
		done <- fetchResult{offers: offers, err: err}
	}()

	select {
	case result := <-done:
		if result.err != nil {
			return nil, result.err
		}
		return result.offers, nil
	case <-ctx.Done():
		return nil, NewConnectorError(provider.ID, ErrorKindTimeout, ctx.Err())
	}
}
