package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/interview-evaluator/internal/config"
	"github.com/fadilmartias/interview-evaluator/internal/dto"
	"github.com/fadilmartias/interview-evaluator/internal/model"
	"github.com/fadilmartias/interview-evaluator/internal/service"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const anthropicKeyPrefix = "sk-ant"

var (
	geminiModels = []string{
		"gemini/gemini-2.5-flash",
		"gemini/gemini-2.5-pro",
		"gemini/gemini-2.0-flash",
		"gemini/gemini-2.0-flash-lite",
	}
	claudeModels = []string{
		"claude-sonnet-4-20250514",
		"claude-3-5-sonnet-20241022",
		"claude-3-haiku-20240307",
	}
)

// Defaults are the environment-level settings a request can override.
type Defaults struct {
	Model           string
	GeminiAPIKey    string
	AnthropicAPIKey string
}

// APIKey returns the default key for a provider.
func (d Defaults) APIKey(kind service.ProviderKind) string {
	switch kind {
	case service.ProviderClaude:
		return d.AnthropicAPIKey
	default:
		return d.GeminiAPIKey
	}
}

type DefaultsLoader func() Defaults

// EnvDefaults reads the defaults from configuration at call time.
func EnvDefaults() Defaults {
	return Defaults{
		Model:           config.LoadModelConfig().Default,
		GeminiAPIKey:    config.LoadGeminiConfig().APIKey,
		AnthropicAPIKey: config.LoadAnthropicConfig().APIKey,
	}
}

type EvaluationUsecase struct {
	providers map[service.ProviderKind]service.Provider
	defaults  DefaultsLoader
	logger    zerolog.Logger
	tracer    trace.Tracer
}

func NewEvaluationUsecase(defaults DefaultsLoader, logger zerolog.Logger, providers ...service.Provider) *EvaluationUsecase {
	if defaults == nil {
		defaults = EnvDefaults
	}
	registry := make(map[service.ProviderKind]service.Provider, len(providers))
	for _, p := range providers {
		registry[p.Kind()] = p
	}
	return &EvaluationUsecase{
		providers: registry,
		defaults:  defaults,
		logger:    logger.With().Str("component", "evaluation_usecase").Logger(),
		tracer:    otel.Tracer("github.com/fadilmartias/interview-evaluator/internal/usecase"),
	}
}

// Evaluate routes the request to a provider, sends the prompt and normalizes
// the reply. Failures are returned as *service.ConfigError,
// *service.UpstreamError or *service.ParseError.
func (uc *EvaluationUsecase) Evaluate(ctx context.Context, req dto.EvaluationRequest) (*model.Evaluation, error) {
	defaults := uc.defaults()
	modelName := req.GetModel()
	if modelName == "" {
		modelName = defaults.Model
	}
	kind := service.ProviderForModel(modelName)

	ctx, span := uc.tracer.Start(ctx, "evaluation.evaluate", trace.WithAttributes(
		attribute.String("provider", string(kind)),
		attribute.String("model", modelName),
	))
	defer span.End()

	logger := uc.loggerFrom(ctx).With().
		Str("provider", string(kind)).
		Str("model", modelName).
		Logger()

	creds, err := ResolveCredentials(kind, req.GetAPIKey(), defaults)
	if err != nil {
		uc.fail(span, kind, err)
		logger.Warn().Err(err).Msg("no api key for provider")
		return nil, err
	}
	if kind == service.ProviderGemini && strings.HasPrefix(req.GetAPIKey(), anthropicKeyPrefix) {
		logger.Warn().Msg("request api key looks like an Anthropic key but the model routes to Gemini")
	}

	provider, ok := uc.providers[kind]
	if !ok {
		err := fmt.Errorf("no provider registered for %s", kind)
		uc.fail(span, kind, err)
		return nil, err
	}

	prompt := service.BuildPrompt(req.GetQuestion(), req.GetAnswer(), req.GetJobDescription())

	callCtx, callSpan := uc.tracer.Start(ctx, "provider.generate", trace.WithAttributes(
		attribute.String("provider", string(kind)),
	))
	start := time.Now()
	raw, err := provider.Generate(callCtx, modelName, prompt, creds)
	elapsed := time.Since(start)
	observeProviderCall(kind, elapsed, err)
	if err != nil {
		callSpan.RecordError(err)
	}
	callSpan.End()
	if err != nil {
		uc.fail(span, kind, err)
		logger.Error().Err(err).Dur("latency", elapsed).Msg("provider call failed")
		return nil, err
	}

	evaluation, err := service.ParseEvaluation(raw)
	if err != nil {
		uc.fail(span, kind, err)
		logger.Error().Err(err).Dur("latency", elapsed).Msg("could not parse model output")
		return nil, err
	}

	span.SetAttributes(attribute.Int("score", evaluation.Score))
	logger.Info().
		Int("score", evaluation.Score).
		Dur("latency", elapsed).
		Msg("evaluation completed")
	return evaluation, nil
}

// Models lists the model ids the service knows about.
func (uc *EvaluationUsecase) Models() dto.ModelCatalogResponse {
	return dto.ModelCatalogResponse{
		DefaultModel: uc.defaults().Model,
		GeminiModels: append([]string(nil), geminiModels...),
		ClaudeModels: append([]string(nil), claudeModels...),
	}
}

// ResolveCredentials picks the key for the selected provider. A key sent with
// the request wins over the environment default.
func ResolveCredentials(kind service.ProviderKind, requestKey string, defaults Defaults) (service.Credentials, error) {
	key := requestKey
	if key == "" {
		key = defaults.APIKey(kind)
	}
	if key == "" {
		return service.Credentials{}, &service.ConfigError{Provider: kind}
	}
	return service.Credentials{Provider: kind, APIKey: key}, nil
}

func (uc *EvaluationUsecase) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &uc.logger
}

func (uc *EvaluationUsecase) fail(span trace.Span, kind service.ProviderKind, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	evaluationFailures.WithLabelValues(string(kind), failureKind(err)).Inc()
}

func failureKind(err error) string {
	var (
		configErr   *service.ConfigError
		upstreamErr *service.UpstreamError
		parseErr    *service.ParseError
	)
	switch {
	case errors.As(err, &configErr):
		return "config"
	case errors.As(err, &upstreamErr):
		return "upstream"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "internal"
	}
}
