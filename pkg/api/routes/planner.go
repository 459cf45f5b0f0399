package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ridesharing/pkg/journeyplanner"
)

func PlannerRouter(router fiber.Router, augmenter *journeyplanner.Augmenter) {
	router.Post("/augment", func(c *fiber.Ctx) error {
		return augmentPlan(c, augmenter)
	})
}

func augmentPlan(c *fiber.Ctx, augmenter *journeyplanner.Augmenter) error {
	var planRequest journeyplanner.PlanRequest

	if err := c.BodyParser(&planRequest); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error":    "Request body should be a JSON plan request",
			"detailed": err.Error(),
		})
	}

	planRequest.Debug = c.QueryBool("debug", false)

	response, err := augmenter.Augment(c.UserContext(), planRequest)
	if errors.Is(err, journeyplanner.ErrEmptyPlanRequest) {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	} else if err != nil {
		log.Error().Err(err).Msg("Failed to augment plan")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not augment plan",
		})
	}

	c.Locals("journeys", len(response.Journeys))

	responseReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, response)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce plan",
		})
	}

	if reducedMap, ok := responseReduced.(map[string]interface{}); ok && response.Debug != nil {
		reducedMap["debug"] = response.Debug
	}

	return c.JSON(responseReduced)
}
