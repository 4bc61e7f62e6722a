package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
)

type featureChecker interface {
	IsEnabled(f featureflag.Flag) bool
}

// RequireFeature responde 501 si la funcionalidad está apagada.
func RequireFeature(flag featureflag.Flag, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !checker.IsEnabled(flag) {
			return errorJSON(c, fiber.StatusNotImplemented, "FEATURE_DISABLED",
				"la funcionalidad '"+string(flag)+"' no está habilitada")
		}
		return c.Next()
	}
}
