package api

import (
	"github.com/travigo/ridesharing/pkg/config"
	"github.com/travigo/ridesharing/pkg/elastic_client"
	"github.com/travigo/ridesharing/pkg/ridesharing/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the ridesharing augmentation web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					global.ConfigFlag(),
				},
				Action: func(c *cli.Context) error {
					instanceConfig, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if err := elastic_client.Connect(false); err != nil {
						return err
					}
					defer elastic_client.WaitUntilQueueEmpty()

					augmenter, coordinator, err := global.Setup(instanceConfig)
					if err != nil {
						return err
					}

					return SetupServer(c.String("listen"), augmenter, coordinator.Providers())
				},
			},
		},
	}
}
