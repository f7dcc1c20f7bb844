package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"
)

// HRUserLoader resolves the session subject to the stored account, wired at
// startup. Claims alone cannot see a deactivation that happened after the
// token was issued, so the gate re-reads the row on every request.
var HRUserLoader func(id string) (*dbmodels.HRUser, error)

func activeHRUser(ctx *fiber.Ctx) bool {
	if HRUserLoader == nil {
		return true
	}
	user, err := HRUserLoader(authutils.GetUserID(ctx))
	if err != nil {
		log.WithError(err).Error("failed to load session principal")
		return false
	}
	return user != nil && user.IsActive
}

// HRRequired rejects sessions that do not belong to an active HR principal.
// Runs after AuthorizationRequired, so the token is already verified.
func HRRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if authutils.GetPrincipalType(ctx) != models.PrincipalHRUser {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		if !activeHRUser(ctx) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}

// RoleRequired is the single authorization gate for role-restricted routes.
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if authutils.GetPrincipalType(ctx) != models.PrincipalHRUser {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		if !activeHRUser(ctx) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		userRole := authutils.GetUserRole(ctx)
		for _, role := range roles {
			if userRole == role {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
	}
}

func AdminRequired() fiber.Handler {
	return RoleRequired(models.UserRoleAdmin)
}
