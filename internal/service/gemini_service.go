package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const geminiModelPrefix = "gemini/"

// GeminiService calls the Gemini generate-content API through the genai SDK.
// A client is built per call because the key can differ between requests.
type GeminiService struct {
	baseURL    string
	httpClient *http.Client
}

var _ Provider = (*GeminiService)(nil)

// NewGeminiService returns a Gemini provider. An empty baseURL keeps the SDK
// default endpoint.
func NewGeminiService(baseURL string) *GeminiService {
	return &GeminiService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: RequestTimeout},
	}
}

func (s *GeminiService) Kind() ProviderKind {
	return ProviderGemini
}

func (s *GeminiService) Generate(ctx context.Context, model, prompt string, creds Credentials) (string, error) {
	modelName := strings.TrimPrefix(model, geminiModelPrefix)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      creds.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  s.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: s.baseURL},
	})
	if err != nil {
		return "", &UpstreamError{Provider: ProviderGemini, Err: fmt.Errorf("create client: %w", err)}
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(Temperature)),
		MaxOutputTokens: MaxOutputTokens,
	}

	result, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), genConfig)
	if err != nil {
		return "", geminiError(err)
	}

	text, err := firstCandidateText(result)
	if err != nil {
		return "", &UpstreamError{Provider: ProviderGemini, Err: err}
	}
	return strings.TrimSpace(text), nil
}

// firstCandidateText returns the text of the first part of the first
// candidate.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", errors.New("candidate content is nil")
	}
	if len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0] == nil {
		return "", errors.New("no parts in content")
	}
	return candidate.Content.Parts[0].Text, nil
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Provider: ProviderGemini, StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &UpstreamError{Provider: ProviderGemini, StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}
	return &UpstreamError{Provider: ProviderGemini, Err: err}
}
