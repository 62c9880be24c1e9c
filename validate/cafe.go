package validate

import (
	"cafe_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateCafe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCafeInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("cafeInput", input)

		return c.Next()
	}
}

func CreateMenu() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("menuInput", input)

		return c.Next()
	}
}
