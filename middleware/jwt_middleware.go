package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"ats-backend/config"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		TokenLookup: "cookie:auth-token,header:Authorization",
		AuthScheme:  "Bearer",
		SuccessHandler: func(ctx *fiber.Ctx) error {
			// a signed email-verification token is not a session
			purpose, _ := authutils.GetClaims(ctx)["purpose"].(string)
			if purpose != string(models.TokenPurposeSession) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("missing or invalid session"))
			}
			return ctx.Next()
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("missing or invalid session"))
		},
	})
}
