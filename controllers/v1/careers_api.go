package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ats-backend/controllers"
	applicationhandler "ats-backend/lib/application"
	filestorage "ats-backend/lib/file-storage"
	jobhandler "ats-backend/lib/job"
	apimodels "ats-backend/models/api"
	applicationapimodels "ats-backend/models/api/application"
)

// careersApiController serves the public careers page: open positions and
// application submission, no session required.
type careersApiController struct {
	controllers.BaseAPIController
}

func InitCareersApiRouters(app *fiber.App) {
	controller := careersApiController{}
	app.Get("positions", controller.positions)
	app.Route("applications/submit", func(router fiber.Router) {
		router.Post("", controller.submit)
		router.Post("resume", controller.uploadResume)
		router.Post("cover-letter", controller.uploadCoverLetter)
	})
}

// @Summary Open positions
// @Tags Careers
// @Description Lists jobs that are currently accepting applications
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.PublicJobView}
// @router /api/v1/positions [get]
func (c *careersApiController) positions(ctx *fiber.Ctx) error {
	list, err := jobhandler.Instance.PublicList()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Submit an application
// @Tags Careers
// @Description Accepts a careers-page application for a published job
// @Param	body	body	applicationapimodels.SubmitRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/applications/submit [post]
func (c *careersApiController) submit(ctx *fiber.Ctx) error {
	var payload applicationapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicationhandler.Instance.Submit(payload)
	if err != nil {
		switch {
		case errors.Is(err, applicationhandler.ErrJobNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, applicationhandler.ErrJobNotAccepting):
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Upload a resume
// @Tags Careers
// @Description Stores the file and returns an object key for the submit request
// @Param	resume	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applications/submit/resume [post]
func (c *careersApiController) uploadResume(ctx *fiber.Ctx) error {
	return c.uploadDocument(ctx, "resume")
}

// @Summary Upload a cover letter
// @Tags Careers
// @Param	cover-letter	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applications/submit/cover-letter [post]
func (c *careersApiController) uploadCoverLetter(ctx *fiber.Ctx) error {
	return c.uploadDocument(ctx, "cover-letter")
}

func (c *careersApiController) uploadDocument(ctx *fiber.Ctx, kind string) error {
	file, err := ctx.FormFile(kind)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded document")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read uploaded document")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	key, err := filestorage.Instance.UploadDocument(ctx.UserContext(), kind, file.Filename, fileBody)
	if err != nil {
		if errors.Is(err, filestorage.ErrStorageDisabled) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal error"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(key))
}
