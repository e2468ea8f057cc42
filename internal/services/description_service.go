package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/ai"
)

// ProgressFunc recibe mensajes de avance para mostrar en la terminal. Nunca
// se usa para el resultado final, que va a stdout.
type ProgressFunc func(msg string)

// DescriptionService orquesta los tres pasos: obtener el diff, armar el
// prompt y generar la descripción
type DescriptionService struct {
	describer ports.Describer
	cfg       *config.Config
	trans     *i18n.Translations
}

func NewDescriptionService(describer ports.Describer, cfg *config.Config, trans *i18n.Translations) *DescriptionService {
	return &DescriptionService{
		describer: describer,
		cfg:       cfg,
		trans:     trans,
	}
}

// Generate produce la descripción del PR a partir del diff que entrega
// source. Si model está vacío se usa el default configurado. El texto
// devuelto es el del modelo, sin modificar.
func (s *DescriptionService) Generate(ctx context.Context, source ports.DiffSource, model string, onProgress ProgressFunc) (string, error) {
	if onProgress == nil {
		onProgress = func(string) {}
	}

	diff, err := source.FetchDiff(ctx)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(diff) == "" {
		onProgress(s.trans.GetMessage("warning_empty_diff", 0, map[string]interface{}{
			"Branch": "",
		}))
	}

	if model == "" {
		model = s.cfg.DefaultModel
	}

	onProgress(s.trans.GetMessage("ui.generating_description", 0, map[string]interface{}{
		"Model": model,
	}))

	prompt := ai.BuildDescriptionPrompt(s.cfg.Language, diff)

	description, err := s.describer.GenerateDescription(ctx, model, prompt)
	if err != nil {
		msg := s.trans.GetMessage("error.generation_failed", 0, nil)
		return "", fmt.Errorf("%s: %w", msg, err)
	}

	return description, nil
}
