package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"ats-backend/controllers"
	applicationhandler "ats-backend/lib/application"
	jobhandler "ats-backend/lib/job"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	jobapimodels "ats-backend/models/api/job"
	dbmodels "ats-backend/models/db"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.HRRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
		router.Post(":id/publish", controller.publish)
		router.Post(":id/deactivate", controller.deactivate)
		router.Post(":id/archive", controller.archive)
		router.Post(":id/reactivate", controller.reactivate)
		router.Get(":id/applications/export", controller.exportApplications)
	})
}

// @Summary List jobs
// @Tags Jobs
// @Description Returns the jobs list with application counts and effective statuses
// @Param	search		query	string	false	"title search"
// @Param	department	query	string	false	"department filter"
// @Param	location	query	string	false	"location filter"
// @Param	status		query	string	false	"status filter"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	filter := dbmodels.JobFilter{
		Search:     ctx.Query("search"),
		Department: ctx.Query("department"),
		Location:   ctx.Query("location"),
	}
	if status := ctx.Query("status"); status != "" {
		filter.Statuses = []string{status}
	}
	list, err := jobhandler.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a job
// @Tags Jobs
// @Description Creates a job as a draft, or published right away with publish_now
// @Param	body	body	jobapimodels.JobCreateRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobhandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Get a job
// @Tags Jobs
// @Param	id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	job, err := jobhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return jobError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(job))
}

// @Summary Update a job
// @Tags Jobs
// @Param	id		path	string							true	"job id"
// @Param	body	body	jobapimodels.JobUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := jobhandler.Instance.Update(ctx.Params("id"), payload); err != nil {
		return jobError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a job
// @Tags Jobs
// @Description Deletes the job together with its applications and their history
// @Param	id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	if err := jobhandler.Instance.Delete(ctx.Params("id")); err != nil {
		return jobError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Publish a job
// @Tags Jobs
// @Param	id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/jobs/{id}/publish [post]
func (c *jobApiController) publish(ctx *fiber.Ctx) error {
	if err := jobhandler.Instance.Publish(ctx.Params("id")); err != nil {
		return jobError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Deactivate a job
// @Tags Jobs
// @Param	id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/jobs/{id}/deactivate [post]
func (c *jobApiController) deactivate(ctx *fiber.Ctx) error {
	if err := jobhandler.Instance.Deactivate(ctx.Params("id")); err != nil {
		return jobError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Archive a job
// @Tags Jobs
// @Param	id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/jobs/{id}/archive [post]
func (c *jobApiController) archive(ctx *fiber.Ctx) error {
	if err := jobhandler.Instance.Archive(ctx.Params("id")); err != nil {
		return jobError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reactivate a job
// @Tags Jobs
// @Description Restores an expired or hidden job to the careers listing and restarts the expiry clock
// @Param	id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/jobs/{id}/reactivate [post]
func (c *jobApiController) reactivate(ctx *fiber.Ctx) error {
	if err := jobhandler.Instance.Reactivate(ctx.Params("id")); err != nil {
		return jobError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export applications to xlsx
// @Tags Jobs
// @Param	id	path	string	true	"job id"
// @Success 200 {file} binary
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applications/export [get]
func (c *jobApiController) exportApplications(ctx *fiber.Ctx) error {
	fileName, buf, err := applicationhandler.Instance.ExportByJob(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, applicationhandler.ErrJobNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

func jobError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, jobhandler.ErrJobNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(jobhandler.ErrJobNotFound.Error()))
	case errors.Is(err, jobhandler.ErrIllegalTransition):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
}
