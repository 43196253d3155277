package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/interview-evaluator/internal/config"
	"github.com/fadilmartias/interview-evaluator/internal/domain/fiber/handler"
	"github.com/fadilmartias/interview-evaluator/internal/middleware"
	"github.com/fadilmartias/interview-evaluator/internal/response"
	"github.com/fadilmartias/interview-evaluator/internal/service"
	"github.com/fadilmartias/interview-evaluator/internal/usecase"
	"github.com/fadilmartias/interview-evaluator/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file loaded, using process environment")
	}

	appConfig := config.LoadAppConfig()
	if !appConfig.IsProduction() {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(middleware.CorrelationID())
	app.Use(middleware.RequestMetrics())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${respHeader:X-Correlation-ID}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	anthropicConfig := config.LoadAnthropicConfig()
	gemini := service.NewGeminiService(config.LoadGeminiConfig().BaseURL)
	claude := service.NewAnthropicService(anthropicConfig.BaseURL, anthropicConfig.Version)

	uc := usecase.NewEvaluationUsecase(usecase.EnvDefaults, log, gemini, claude)
	h := handler.NewEvaluateHandler(uc, util.NewValidator(), log)
	h.RegisterRoutes(app)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Debug().Int("goroutines", runtime.NumGoroutine()).Msg("runtime stats")
			}
		}
	}()

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), service.RequestTimeout+5*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().
		Str("addr", appConfig.Address()).
		Str("env", appConfig.Env).
		Str("default_model", config.LoadModelConfig().Default).
		Msg("server starting")
	if err := app.Listen(appConfig.Address()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// errorHandler renders errors that escape handlers in the same {"detail"} shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if message == "" {
		message = "Internal Server Error"
	}

	return c.Status(code).JSON(response.ErrorBody{Detail: message})
}
