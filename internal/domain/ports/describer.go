package ports

import "context"

// Describer es el colaborador de IA que genera la descripción del PR a partir
// de un prompt ya construido. La implementación elige el modelo indicado y
// devuelve el texto generado sin procesar.
type Describer interface {
	GenerateDescription(ctx context.Context, model string, prompt string) (string, error)
}
