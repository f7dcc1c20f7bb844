package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"ats-backend/config"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
)

func initAuthTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTIssuer = "ats-backend"
	conf.Auth.JWTAudience = "ats"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.VerifyExpireInSec = 3600
	config.Conf = conf
}

func guardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/guarded", AuthorizationRequired(), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthorizationRequired(t *testing.T) {
	initAuthTestConfig()

	t.Run(`no token check`, func(t *testing.T) {
		resp, err := guardedApp().Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`session cookie passes check`, func(t *testing.T) {
		token, err := authutils.GetSessionToken("user-1", "user@example.com", "User", models.PrincipalHRUser, models.UserRoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: authutils.SessionCookieName, Value: token})
		resp, err := guardedApp().Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`verification token is not a session check`, func(t *testing.T) {
		token, err := authutils.GetVerificationToken("account-1", "user@example.com", models.PrincipalApplicant)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: authutils.SessionCookieName, Value: token})
		resp, err := guardedApp().Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
