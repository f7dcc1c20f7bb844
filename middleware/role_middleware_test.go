package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

func sessionApp(claims jwt.MapClaims, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: claims})
		return ctx.Next()
	})
	app.Get("/guarded", gate, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func hrClaims(role models.UserRole) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  "user-1",
		"type": string(models.PrincipalHRUser),
		"role": string(role),
	}
}

func TestRoleGateChecksStoredAccount(t *testing.T) {
	defer func() { HRUserLoader = nil }()

	t.Run(`deactivated account is rejected despite a live token check`, func(t *testing.T) {
		HRUserLoader = func(id string) (*dbmodels.HRUser, error) {
			return &dbmodels.HRUser{IsActive: false}, nil
		}
		app := sessionApp(hrClaims(models.UserRoleAdmin), RoleRequired(models.UserRoleAdmin))

		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run(`deleted account is rejected check`, func(t *testing.T) {
		HRUserLoader = func(id string) (*dbmodels.HRUser, error) {
			return nil, nil
		}
		app := sessionApp(hrClaims(models.UserRoleHRManager), HRRequired())

		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run(`active account passes check`, func(t *testing.T) {
		HRUserLoader = func(id string) (*dbmodels.HRUser, error) {
			return &dbmodels.HRUser{IsActive: true}, nil
		}
		app := sessionApp(hrClaims(models.UserRoleAdmin), AdminRequired())

		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`active account with wrong role is rejected check`, func(t *testing.T) {
		HRUserLoader = func(id string) (*dbmodels.HRUser, error) {
			return &dbmodels.HRUser{IsActive: true}, nil
		}
		app := sessionApp(hrClaims(models.UserRoleHRStaff), AdminRequired())

		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run(`applicant principal never reaches the loader check`, func(t *testing.T) {
		loaderCalled := false
		HRUserLoader = func(id string) (*dbmodels.HRUser, error) {
			loaderCalled = true
			return nil, nil
		}
		claims := jwt.MapClaims{
			"sub":  "account-1",
			"type": string(models.PrincipalApplicant),
		}
		app := sessionApp(claims, HRRequired())

		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		require.Equal(t, false, loaderCalled)
	})
}
