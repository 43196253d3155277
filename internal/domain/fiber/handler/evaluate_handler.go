package handler

import (
	"fmt"

	"github.com/fadilmartias/interview-evaluator/internal/dto"
	"github.com/fadilmartias/interview-evaluator/internal/middleware"
	"github.com/fadilmartias/interview-evaluator/internal/response"
	"github.com/fadilmartias/interview-evaluator/internal/usecase"
	"github.com/fadilmartias/interview-evaluator/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const serviceBanner = "Interview Answer Evaluation Agent API"

type EvaluateHandler struct {
	uc       *usecase.EvaluationUsecase
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewEvaluateHandler(uc *usecase.EvaluationUsecase, validate *validator.Validate, logger zerolog.Logger) *EvaluateHandler {
	if validate == nil {
		validate = util.NewValidator()
	}
	return &EvaluateHandler{
		uc:       uc,
		validate: validate,
		logger:   logger.With().Str("component", "evaluate_handler").Logger(),
	}
}

func (h *EvaluateHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Root)
	app.Get("/health", h.Health)
	app.Get("/models", h.Models)
	app.Post("/evaluate", h.Evaluate)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (h *EvaluateHandler) Root(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: response.StatusBody{Message: serviceBanner, Status: "running"},
	})
}

func (h *EvaluateHandler) Health(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: response.StatusBody{Status: "healthy"},
	})
}

func (h *EvaluateHandler) Models(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: h.uc.Models(),
	})
}

func (h *EvaluateHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusUnprocessableEntity,
		}, util.ValidationFormError(err))
	}

	logger := h.logger.With().
		Str("correlation_id", middleware.GetCorrelationID(c)).
		Logger()
	ctx := logger.WithContext(c.UserContext())

	evaluation, err := h.uc.Evaluate(ctx, req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusInternalServerError,
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: dto.NewEvaluationResponse(evaluation),
	})
}
