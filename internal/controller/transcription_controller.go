package controller

import (
	"io"

	"lifemind-be/internal/pkg/serverutils"
	"lifemind-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITranscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
}

type transcriptionController struct {
	transcriptionService service.ITranscriptionService
}

func NewTranscriptionController(transcriptionService service.ITranscriptionService) ITranscriptionController {
	return &transcriptionController{
		transcriptionService: transcriptionService,
	}
}

func (c *transcriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/transcription/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Transcribe)
}

func (c *transcriptionController) Transcribe(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "audio file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/webm"
	}

	res, err := c.transcriptionService.Transcribe(ctx.Context(), userId, audio, contentType, fileHeader.Filename)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success transcribe audio", res))
}
