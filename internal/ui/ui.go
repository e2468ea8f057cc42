package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)

	MateEmoji = "🧉"
)

// SmartSpinner muestra el progreso en stderr. stdout queda reservado para la
// descripción generada, que debe salir byte a byte como la devolvió el modelo.
type SmartSpinner struct {
	spinner *spinner.Spinner
	enabled bool
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	enabled := isatty.IsTerminal(os.Stderr.Fd())
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithWriter(os.Stderr),
		spinner.WithSuffix(" "+MateEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s, enabled: enabled}
}

func (s *SmartSpinner) Start() {
	if s.enabled {
		s.spinner.Start()
	}
}

func (s *SmartSpinner) Stop() {
	if s.enabled {
		s.spinner.Stop()
	}
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + MateEmoji + " " + msg
}

// Log detiene momentáneamente el spinner para escribir una línea en stderr
func (s *SmartSpinner) Log(msg string) {
	if s.enabled {
		s.spinner.Stop()
	}
	_, _ = fmt.Fprintln(os.Stderr, msg)
	if s.enabled {
		s.spinner.Start()
	}
}

// ErrorLine escribe un mensaje de error coloreado en stderr
func ErrorLine(msg string) {
	_, _ = Error.Fprintln(os.Stderr, msg)
}
