package global

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/config"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
	"github.com/travigo/ridesharing/pkg/util"
	"github.com/urfave/cli/v2"
)

func ConfigFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "config",
		Value: util.GetEnvironmentVariable("TRAVIGO_RIDESHARING_CONFIG", config.DefaultPath),
		Usage: "path to the ridesharing instance configuration",
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "providers",
		Usage: "Inspect the configured ridesharing providers",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list configured providers",
				Flags: []cli.Flag{
					ConfigFlag(),
				},
				Action: func(c *cli.Context) error {
					instanceConfig, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					for _, provider := range instanceConfig.Providers {
						log.Info().
							Str("provider", provider.ID).
							Str("kind", string(provider.Kind)).
							Str("network", provider.Network).
							Str("timeout", provider.RequestTimeout().String()).
							Msg("Provider")
					}

					return nil
				},
			},
			{
				Name:  "check",
				Usage: "query every provider once and print the offers",
				Flags: []cli.Flag{
					ConfigFlag(),
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin as lat,lon",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination as lat,lon",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "datetime",
						Usage: "RFC3339 departure time, defaults to now",
					},
				},
				Action: func(c *cli.Context) error {
					instanceConfig, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					origin, err := ParseCoordinates(c.String("from"))
					if err != nil {
						return err
					}
					destination, err := ParseCoordinates(c.String("to"))
					if err != nil {
						return err
					}

					departure := time.Now()
					if c.String("datetime") != "" {
						departure, err = time.Parse(time.RFC3339, c.String("datetime"))
						if err != nil {
							return err
						}
					}

					_, coordinator, err := Setup(instanceConfig)
					if err != nil {
						return err
					}

					offers, report := coordinator.Fetch(context.Background(), ridesharing.Request{
						Origin:      origin,
						Destination: destination,
						DateTime:    departure,
						Mode:        ctdf.ModeRidesharing,
					})

					pretty.Println(report)
					pretty.Println(offers)

					return nil
				},
			},
		},
	}
}

// ParseCoordinates reads a "lat,lon" pair
func ParseCoordinates(value string) (ctdf.Location, error) {
	latitudeString, longitudeString, found := strings.Cut(value, ",")
	if !found {
		return ctdf.Location{}, errors.New("coordinates must be formatted as lat,lon")
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(latitudeString), 64)
	if err != nil {
		return ctdf.Location{}, fmt.Errorf("invalid latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(longitudeString), 64)
	if err != nil {
		return ctdf.Location{}, fmt.Errorf("invalid longitude: %w", err)
	}

	return ctdf.NewPoint(latitude, longitude), nil
}
