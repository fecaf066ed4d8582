package controller

import (
	"lifemind-be/internal/dto"
	"lifemind-be/internal/pkg/serverutils"
	"lifemind-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMeetingController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Upcoming(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type meetingController struct {
	meetingService service.IMeetingService
}

func NewMeetingController(meetingService service.IMeetingService) IMeetingController {
	return &meetingController{
		meetingService: meetingService,
	}
}

func (c *meetingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meeting/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get("upcoming", c.Upcoming)
	h.Delete(":id", c.Delete)
}

func (c *meetingController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateMeetingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.meetingService.CreateMeeting(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create meeting", res))
}

func (c *meetingController) Index(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.meetingService.GetMeetings(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get meetings", res))
}

func (c *meetingController) Upcoming(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.meetingService.GetUpcomingMeetings(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get upcoming meetings", res))
}

func (c *meetingController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	err := c.meetingService.DeleteMeeting(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete meeting", nil))
}
