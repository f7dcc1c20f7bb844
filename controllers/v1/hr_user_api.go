package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"ats-backend/controllers"
	hrusershandler "ats-backend/lib/hr-users"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	hruserapimodels "ats-backend/models/api/hruser"
)

type hrUserApiController struct {
	controllers.BaseAPIController
}

func InitHRUserApiRouters(app *fiber.App) {
	controller := hrUserApiController{}
	app.Route("hr-users", func(router fiber.Router) {
		// setup completion is reached by invitation link, no session yet
		router.Post("complete-setup", controller.completeSetup)

		router.Use(middleware.AuthorizationRequired(), middleware.HRRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)

		router.Use(middleware.AdminRequired())
		router.Post("invite", controller.invite)
		router.Post(":id/resend-invite", controller.resendInvite)
		router.Delete(":id", controller.deactivate)
	})
}

// @Summary Invite an HR user
// @Tags HR users
// @Description Creates a pending HR account and emails an invitation link
// @Param	body	body	hruserapimodels.InviteRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/hr-users/invite [post]
func (c *hrUserApiController) invite(ctx *fiber.Ctx) error {
	var payload hruserapimodels.InviteRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := hrusershandler.Instance.Invite(payload)
	if err != nil {
		if errors.Is(err, hrusershandler.ErrAlreadyExists) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Resend an invitation
// @Tags HR users
// @Description Rotates the invitation token and resends the email
// @Param	id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/hr-users/{id}/resend-invite [post]
func (c *hrUserApiController) resendInvite(ctx *fiber.Ctx) error {
	err := hrusershandler.Instance.ResendInvite(ctx.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, hrusershandler.ErrUserNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, hrusershandler.ErrSetupDone):
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Complete account setup
// @Tags HR users
// @Description Consumes an invitation token and sets the password
// @Param	body	body	hruserapimodels.CompleteSetupRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/hr-users/complete-setup [post]
func (c *hrUserApiController) completeSetup(ctx *fiber.Ctx) error {
	var payload hruserapimodels.CompleteSetupRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := hrusershandler.Instance.CompleteSetup(payload)
	if err != nil {
		switch {
		case errors.Is(err, hrusershandler.ErrSetupDone),
			errors.Is(err, hrusershandler.ErrInviteNotValid):
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List HR users
// @Tags HR users
// @Param	limit	query	int	false	"rows per page"
// @Param	offset	query	int	false	"rows to skip"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]hruserapimodels.HRUser}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/hr-users [get]
func (c *hrUserApiController) list(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Limit:  ctx.QueryInt("limit"),
		Offset: ctx.QueryInt("offset"),
	}
	limit, offset := pagination.GetPage()
	list, rowCount, err := hrusershandler.Instance.List(limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get an HR user
// @Tags HR users
// @Param	id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=hruserapimodels.HRUser}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/hr-users/{id} [get]
func (c *hrUserApiController) get(ctx *fiber.Ctx) error {
	user, err := hrusershandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, hrusershandler.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

// @Summary Deactivate an HR user
// @Tags HR users
// @Param	id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/hr-users/{id} [delete]
func (c *hrUserApiController) deactivate(ctx *fiber.Ctx) error {
	err := hrusershandler.Instance.Deactivate(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, hrusershandler.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
