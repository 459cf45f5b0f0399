package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

func ProvidersRouter(router fiber.Router, providers []ridesharing.ProviderConfig) {
	router.Get("/", func(c *fiber.Ctx) error {
		if providers == nil {
			providers = []ridesharing.ProviderConfig{}
		}

		return c.JSON(providers)
	})
}
