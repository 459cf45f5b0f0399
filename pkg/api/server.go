package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/travigo/ridesharing/pkg/api/routes"
	"github.com/travigo/ridesharing/pkg/journeyplanner"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

const metricsPath = "/metrics"

func NewApp(augmenter *journeyplanner.Augmenter, providers []ridesharing.ProviderConfig) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get(metricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PlannerRouter(group.Group("/planner"), augmenter)
	routes.ProvidersRouter(group.Group("/providers"), providers)

	return webApp
}

func SetupServer(listen string, augmenter *journeyplanner.Augmenter, providers []ridesharing.ProviderConfig) error {
	return NewApp(augmenter, providers).Listen(listen)
}
