package gemini

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// formatResponse aplana los candidates y parts de la respuesta en un único
// string
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}
