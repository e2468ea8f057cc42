package ai

import "fmt"

// Templates para la descripción del PR
const (
	describePromptTemplateEN = `We would like to create a Pull Request Description based on the git diff.
	We prefer concise descriptions, so please try to keep it short.
	Highlight the major changes and the improvements made.
	If there are any changes to package.json dependencies, please mention them
	only if there are new dependencies or if any dependency version was updated,
	and remind the reader to run yarn install after pulling changes.
	Reply with Markdown format.
	Include these 4 headers in the PR output using ## Markdown styling:
	Description,
	How can reviewers verify the behavior?,
	Screenshots or links that might help speed up the review,
	Are you looking for feedback in a specific area?

	git diff:
	%s`

	describePromptTemplateES = `Queremos crear una descripción de Pull Request basada en el git diff.
	Preferimos descripciones concisas, así que tratá de mantenerla corta.
	Resaltá los cambios más importantes y las mejoras introducidas.
	Si hay cambios en las dependencias de package.json, mencionalos
	solamente si hay dependencias nuevas o si se actualizó la versión de alguna,
	y recordale al lector correr yarn install después de hacer pull.
	Respondé en formato Markdown.
	Incluí estos 4 encabezados en la salida usando estilo ## de Markdown:
	Description,
	How can reviewers verify the behavior?,
	Screenshots or links that might help speed up the review,
	Are you looking for feedback in a specific area?

	git diff:
	%s`
)

// GetDescribePromptTemplate devuelve el template adecuado según el idioma
func GetDescribePromptTemplate(lang string) string {
	switch lang {
	case "es":
		return describePromptTemplateES
	default:
		return describePromptTemplateEN
	}
}

// BuildDescriptionPrompt interpola el diff crudo en el template de
// instrucciones. El diff se trata como texto opaco.
func BuildDescriptionPrompt(lang string, diff string) string {
	return fmt.Sprintf(GetDescribePromptTemplate(lang), diff)
}
