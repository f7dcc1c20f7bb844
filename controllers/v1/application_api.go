package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"ats-backend/controllers"
	applicationhandler "ats-backend/lib/application"
	filestorage "ats-backend/lib/file-storage"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	applicationapimodels "ats-backend/models/api/application"
	dbmodels "ats-backend/models/db"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.HRRequired())
		router.Get("", controller.list)
		// literal segment, keep it above the :id routes
		router.Get("tab-counts", controller.tabCounts)
		router.Get(":id", controller.get)
		router.Put(":id", controller.updateStatus)
		router.Get(":id/history", controller.history)
		router.Get(":id/documents/:kind", controller.documentURL)
	})
}

// @Summary List applications
// @Tags Applications
// @Description Lists applications filtered by job, pipeline tab and text search
// @Param	job_id	query	string	false	"job filter"
// @Param	status	query	string	false	"status filter, matched by stage"
// @Param	tab		query	string	false	"pipeline tab"
// @Param	search	query	string	false	"name or email search"
// @Param	limit	query	int		false	"rows per page"
// @Param	offset	query	int		false	"rows to skip"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/applications [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Limit:  ctx.QueryInt("limit"),
		Offset: ctx.QueryInt("offset"),
	}
	limit, offset := pagination.GetPage()
	filter := dbmodels.ApplicationFilter{
		JobID:  ctx.Query("job_id"),
		Status: ctx.Query("status"),
		Tab:    ctx.Query("tab"),
		Search: ctx.Query("search"),
		Limit:  limit,
		Offset: offset,
	}
	list, rowCount, err := applicationhandler.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Pipeline tab counters
// @Tags Applications
// @Param	job_id	query	string	false	"job filter"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.TabCountsView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/applications/tab-counts [get]
func (c *applicationApiController) tabCounts(ctx *fiber.Ctx) error {
	counts, total, err := applicationhandler.Instance.TabCounts(ctx.Query("job_id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationapimodels.TabCountsView{
		Tabs:  counts,
		Total: total,
	}))
}

// @Summary Get an application
// @Tags Applications
// @Param	id	path	string	true	"application id"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	application, err := applicationhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return applicationError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(application))
}

// @Summary Update application status
// @Tags Applications
// @Description Saves the status as written and emails the candidate when the stage changed
// @Param	id		path	string										true	"application id"
// @Param	body	body	applicationapimodels.StatusUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id} [put]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	var payload applicationapimodels.StatusUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := applicationhandler.Actor{
		ID:   authutils.GetUserID(ctx),
		Name: authutils.GetUserName(ctx),
	}
	if err := applicationhandler.Instance.UpdateStatus(ctx.Params("id"), payload, actor); err != nil {
		return applicationError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Application status history
// @Tags Applications
// @Param	id	path	string	true	"application id"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationEventView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id}/history [get]
func (c *applicationApiController) history(ctx *fiber.Ctx) error {
	list, err := applicationhandler.Instance.History(ctx.Params("id"))
	if err != nil {
		return applicationError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Candidate document link
// @Tags Applications
// @Description Returns a short-lived download link for the resume or cover letter
// @Param	id		path	string	true	"application id"
// @Param	kind	path	string	true	"resume or cover-letter"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/applications/{id}/documents/{kind} [get]
func (c *applicationApiController) documentURL(ctx *fiber.Ctx) error {
	application, err := applicationhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return applicationError(ctx, err)
	}
	var key string
	switch ctx.Params("kind") {
	case "resume":
		key = application.ResumeKey
	case "cover-letter":
		key = application.CoverLetterKey
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unknown document kind"))
	}
	if key == "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("document not attached"))
	}
	link, err := filestorage.Instance.PresignedURL(ctx.UserContext(), key)
	if err != nil {
		if errors.Is(err, filestorage.ErrStorageDisabled) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(link))
}

func applicationError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, applicationhandler.ErrApplicationNotFound),
		errors.Is(err, applicationhandler.ErrJobNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
}
