package errors

import (
	"errors"
	"fmt"
)

// Exit codes reported by main. They keep the three failure families apart so
// scripts wrapping matepr can tell them apart.
const (
	ExitUsage = 2
	ExitGit   = 3
	ExitAPI   = 4
)

// APIErrorKind clasifica los fallos del proveedor de IA
type APIErrorKind string

const (
	APIErrorAuth      APIErrorKind = "auth"
	APIErrorQuota     APIErrorKind = "quota"
	APIErrorTransport APIErrorKind = "transport"
)

// UsageError representa una invocación inválida de la CLI
type UsageError struct {
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Usage != "" {
		return fmt.Sprintf("%s\n\n%s", e.Message, e.Usage)
	}
	return e.Message
}

// NewUsageError crea un nuevo error de uso
func NewUsageError(message, usage string) *UsageError {
	return &UsageError{Message: message, Usage: usage}
}

// GitError representa un fallo del comando git invocado como subproceso
type GitError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *GitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %v failed (exit %d): %s", e.Args, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("git %v failed: %v", e.Args, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError crea un nuevo error de git con el stderr capturado
func NewGitError(args []string, exitCode int, stderr string, err error) *GitError {
	return &GitError{
		Args:     args,
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}

// APIError representa un fallo del proveedor de IA
type APIError struct {
	Kind    APIErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AI provider error [%s]: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("AI provider error [%s]: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError crea un nuevo error del proveedor de IA
func NewAPIError(kind APIErrorKind, message string, err error) *APIError {
	return &APIError{Kind: kind, Message: message, Err: err}
}

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: err}
}

// ExitCode resuelve el código de salida del proceso según el tipo de error
// encadenado. Errores desconocidos salen con 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return ExitGit
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ExitAPI
	}

	return 1
}
