package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	domainErrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var _ ports.Describer = (*GeminiDescriber)(nil)

type GeminiDescriber struct {
	client *genai.Client
	trans  *i18n.Translations
}

func NewGeminiDescriber(ctx context.Context, apiKey string, trans *i18n.Translations) (*GeminiDescriber, error) {
	if apiKey == "" {
		msg := trans.GetMessage("error.missing_api_key", 0, nil)
		return nil, domainErrors.NewConfigError("GEMINI_API_KEY", msg, nil)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiDescriber{
		client: client,
		trans:  trans,
	}, nil
}

// GenerateDescription manda el prompt al modelo indicado y devuelve el texto
// generado tal cual. No hay reintentos: cualquier fallo es fatal.
func (g *GeminiDescriber) GenerateDescription(ctx context.Context, model string, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("el prompt no puede estar vacío")
	}

	generativeModel := g.client.GenerativeModel(model)

	resp, err := generativeModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyAPIError(model, err)
	}

	text := formatResponse(resp)
	if text == "" {
		return "", domainErrors.NewAPIError(domainErrors.APIErrorTransport, "respuesta vacía de la IA", nil)
	}

	return text, nil
}

func (g *GeminiDescriber) Close() error {
	return g.client.Close()
}

// classifyAPIError separa fallos de autenticación, cuota y transporte según
// el status HTTP que reporta la API de Gemini
func classifyAPIError(model string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return domainErrors.NewAPIError(domainErrors.APIErrorAuth, fmt.Sprintf("invalid credentials for model %s", model), err)
		case http.StatusTooManyRequests:
			return domainErrors.NewAPIError(domainErrors.APIErrorQuota, fmt.Sprintf("quota exceeded for model %s", model), err)
		}
	}

	return domainErrors.NewAPIError(domainErrors.APIErrorTransport, fmt.Sprintf("request to model %s failed", model), err)
}
