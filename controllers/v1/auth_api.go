package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"ats-backend/controllers"
	authhandler "ats-backend/lib/auth"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	authapimodels "ats-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Delete("login", controller.logout)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary Log in
// @Tags Authentication
// @Description Authenticates an HR user or applicant account and sets the session cookie
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.LoginResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, authhandler.ErrInvalidCredentials),
			errors.Is(err, authhandler.ErrAccountInactive),
			errors.Is(err, authhandler.ErrSetupIncomplete):
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	authutils.SetSessionCookie(ctx, resp.Token)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Log out
// @Tags Authentication
// @Description Clears the session cookie
// @Success 200 {object} apimodels.Response
// @router /api/v1/auth/login [delete]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	authutils.ClearSessionCookie(ctx)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Current principal
// @Tags Authentication
// @Description Returns the account behind the current session
// @Success 200 {object} apimodels.Response{data=authapimodels.SessionUser}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(authutils.GetUserID(ctx), authutils.GetPrincipalType(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
