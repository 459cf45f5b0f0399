package elastic_client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/util"
)

const (
	defaultFlushInterval  = 15 * time.Second
	defaultStartupTimeout = 30 * time.Second
)

var ErrNotConfigured = errors.New("elasticsearch address not set")

var Client *elasticsearch.Client
var bulkIndexer esutil.BulkIndexer

// Options for the fetch report sink, read from TRAVIGO_ELASTICSEARCH_*
type Options struct {
	Address  string
	Username string
	Password string

	FlushInterval  time.Duration
	StartupTimeout time.Duration
}

func OptionsFromEnvironment(env map[string]string) (Options, error) {
	options := Options{
		Address:        env["TRAVIGO_ELASTICSEARCH_ADDRESS"],
		Username:       env["TRAVIGO_ELASTICSEARCH_USERNAME"],
		Password:       env["TRAVIGO_ELASTICSEARCH_PASSWORD"],
		FlushInterval:  defaultFlushInterval,
		StartupTimeout: defaultStartupTimeout,
	}

	if value := env["TRAVIGO_ELASTICSEARCH_FLUSH_INTERVAL"]; value != "" {
		interval, err := time.ParseDuration(value)
		if err != nil || interval <= 0 {
			return options, fmt.Errorf("invalid TRAVIGO_ELASTICSEARCH_FLUSH_INTERVAL %q", value)
		}
		options.FlushInterval = interval
	}

	return options, nil
}

// Connect sets up the client and bulk indexer. Without an address it is a no-op unless required.
func Connect(required bool) error {
	options, err := OptionsFromEnvironment(util.GetEnvironmentVariables())
	if err != nil {
		return err
	}

	if options.Address == "" {
		if required {
			return ErrNotConfigured
		}

		log.Info().Msg("Skipping Elasticsearch setup, fetch reports will not be indexed")
		return nil
	}

	requestBackoff := backoff.NewExponentialBackOff()

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{options.Address},
		Username:  options.Username,
		Password:  options.Password,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),

		RetryOnStatus: []int{502, 503, 504, 429},

		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				requestBackoff.Reset()
			}
			return requestBackoff.NextBackOff()
		},
		MaxRetries: 5,
	})
	if err != nil {
		return err
	}

	startupBackoff := backoff.NewExponentialBackOff()
	startupBackoff.MaxElapsedTime = options.StartupTimeout

	err = backoff.RetryNotify(func() error {
		response, err := es.Info()
		if err != nil {
			return err
		}
		defer response.Body.Close()

		if response.IsError() {
			return fmt.Errorf("elasticsearch info returned %s", response.Status())
		}
		return nil
	}, startupBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("address", options.Address).Str("retry", wait.String()).Msg("Elasticsearch not ready")
	})
	if err != nil {
		return err
	}

	Client = es

	bulkIndexer, err = esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:        es,
		FlushInterval: options.FlushInterval,
		OnError: func(ctx context.Context, err error) {
			log.Error().Err(err).Msg("Fetch report bulk indexer failed")
		},
	})
	if err != nil {
		return err
	}

	log.Info().Str("address", options.Address).Str("flush", options.FlushInterval.String()).Msg("Elasticsearch client setup")

	return nil
}

func IndexRequest(indexName string, document io.ReadSeeker) {
	if Client == nil || bulkIndexer == nil {
		return
	}

	err := bulkIndexer.Add(
		context.Background(),
		esutil.BulkIndexerItem{
			Index:  indexName,
			Action: "index",
			Body:   document,
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				if err != nil {
					log.Error().Err(err).Str("indexName", indexName).Msg("Failed to index document")
				} else {
					log.Error().Str("type", res.Error.Type).Str("reason", res.Error.Reason).Msg("Failed to index document")
				}
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Str("indexName", indexName).Msg("Failed to queue document")
	}
}

// WaitUntilQueueEmpty flushes pending fetch reports and logs the indexer totals
func WaitUntilQueueEmpty() {
	if bulkIndexer == nil {
		return
	}

	if err := bulkIndexer.Close(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to flush fetch reports")
	}

	stats := bulkIndexer.Stats()
	log.Info().
		Uint64("indexed", stats.NumIndexed).
		Uint64("failed", stats.NumFailed).
		Msg("Fetch report indexer closed")
}
