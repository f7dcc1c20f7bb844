package apiv1

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"ats-backend/config"
	"ats-backend/controllers"
	authhandler "ats-backend/lib/auth"
	authutils "ats-backend/lib/utils/auth-utils"
	apimodels "ats-backend/models/api"
	authapimodels "ats-backend/models/api/auth"
)

type regController struct {
	controllers.BaseAPIController
}

func InitRegRouters(app *fiber.App) {
	controller := regController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.Register)
		router.Get("verify-email", controller.VerifyEmail)
	})
}

// @Summary Register an applicant account
// @Tags Registration
// @Description Creates a pending applicant account and emails a verification link
// @Param	body	body	authapimodels.RegisterRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *regController) Register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := authhandler.Instance.RegisterApplicant(payload)
	if err != nil {
		if errors.Is(err, authhandler.ErrAlreadyExists) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}

// @Summary Verify email address
// @Tags Registration
// @Description Verification-link landing, redirects to the site with the outcome flag
// @Param	token	query	string	false	"verification token"
// @Success 302
// @router /api/v1/auth/verify-email [get]
func (c *regController) VerifyEmail(ctx *fiber.Ctx) error {
	token := ctx.Query("token", "")
	result, err := authhandler.Instance.VerifyEmail(token)
	if err != nil {
		reason := "invalid_token"
		if errors.Is(err, authhandler.ErrUserNotFound) {
			reason = "user_not_found"
		}
		return ctx.Redirect(verifyRedirectURL("error", reason), fiber.StatusFound)
	}
	if result.AlreadyVerified {
		return ctx.Redirect(verifyRedirectURL("verified", "already"), fiber.StatusFound)
	}
	// convenience: the email link logs the user in
	if result.SessionToken != "" {
		authutils.SetSessionCookie(ctx, result.SessionToken)
	}
	return ctx.Redirect(verifyRedirectURL("verified", "success"), fiber.StatusFound)
}

func verifyRedirectURL(key, value string) string {
	return fmt.Sprintf("%s/careers?%s=%s", config.Conf.App.SiteURL, key, url.QueryEscape(value))
}
