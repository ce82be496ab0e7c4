// Package response centralizes command output shapes and helpers.
// Commands rely on it to keep rendering and exit codes uniform.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/maxviazov/pager/internal/service"
)

// Output formats understood by WriteData and WriteError.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Exit codes returned by MapError.
const (
	ExitOK           = 0
	ExitInternal     = 1
	ExitInvalidInput = 2
)

// ErrUnknownFormat is returned for an output format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrorPayload is the canonical error envelope printed by the CLI.
type ErrorPayload struct {
	Error       string               `json:"error" yaml:"error"`
	Message     string               `json:"message,omitempty" yaml:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty" yaml:"field_errors,omitempty"`
}

// MapError converts an error into a process exit code and payload.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return ExitOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return ExitInvalidInput, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}
	return ExitInternal, ErrorPayload{Error: "internal_error", Message: err.Error()}
}

// WriteError renders the payload for err and returns the exit code to use.
func WriteError(w io.Writer, format string, err error) int {
	code, payload := MapError(err)
	if werr := WriteData(w, format, payload); werr != nil {
		// unknown format: still tell the user something
		fmt.Fprintf(w, "%s: %v\n", payload.Error, err)
	}
	return code
}

// WriteData encodes data to w in the given format.
func WriteData(w io.Writer, format string, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
