package global

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/config"
	"github.com/travigo/ridesharing/pkg/elastic_client"
	"github.com/travigo/ridesharing/pkg/journeyplanner"
	"github.com/travigo/ridesharing/pkg/redis_client"
	"github.com/travigo/ridesharing/pkg/ridesharing"
	"github.com/travigo/ridesharing/pkg/ridesharing/instantsystem"
	"github.com/travigo/ridesharing/pkg/ridesharing/karos"
)

// NewConnector selects the connector implementation declared by the provider kind
func NewConnector(provider ridesharing.ProviderConfig, client *http.Client) (ridesharing.Connector, error) {
	switch provider.Kind {
	case ridesharing.KindInstantSystem:
		return instantsystem.New(provider, client), nil
	case ridesharing.KindKaros:
		return karos.New(provider, client), nil
	default:
		return nil, fmt.Errorf("%w: %s (provider %s)", ridesharing.ErrUnsupportedKind, provider.Kind, provider.ID)
	}
}

// NewCoordinator builds a connector per configured provider, wrapped in the offer cache when enabled
func NewCoordinator(instanceConfig *config.InstanceConfig, client *http.Client) (*ridesharing.Coordinator, error) {
	var connectors []ridesharing.Connector

	if instanceConfig.Cache.Enabled && redis_client.Client == nil {
		if err := redis_client.Connect(); err != nil {
			return nil, err
		}
	}

	for _, provider := range instanceConfig.Providers {
		connector, err := NewConnector(provider, client)
		if err != nil {
			return nil, err
		}

		if instanceConfig.Cache.Enabled {
			connector = ridesharing.NewCachedConnector(connector, redis_client.Client, instanceConfig.Cache.TTL)
		}

		log.Debug().Str("provider", provider.ID).Str("kind", string(provider.Kind)).Msg("Registering ridesharing connector")

		connectors = append(connectors, connector)
	}

	return ridesharing.NewCoordinator(connectors...), nil
}

func Setup(instanceConfig *config.InstanceConfig) (*journeyplanner.Augmenter, *ridesharing.Coordinator, error) {
	coordinator, err := NewCoordinator(instanceConfig, &http.Client{})
	if err != nil {
		return nil, nil, err
	}

	augmenter := &journeyplanner.Augmenter{
		Fetcher:    coordinator,
		Composer:   instanceConfig.NewComposer(),
		Classifier: instanceConfig.NewClassifier(),
	}

	if elastic_client.Client != nil {
		augmenter.ReportSink = &elastic_client.ReportIndexer{IndexName: instanceConfig.Reports.Index}
	}

	log.Info().Int("providers", len(instanceConfig.Providers)).Msg("Ridesharing augmentation setup")

	return augmenter, coordinator, nil
}
