package cli

import (
	"fmt"
	"os"

	"github.com/chemtools/latticelab/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a latticelab.yml or pass --config.\n")
		return err

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(os.Stderr, "❌ Configuration is invalid: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'latticelab config schema' to see the expected fields.\n")
		return err

	case errors.ErrCodeUnknownCompound:
		if labErr, ok := err.(*errors.LabError); ok {
			fmt.Fprintf(os.Stderr, "❌ Compound '%s' not found\n", labErr.Details["compound"])
			fmt.Fprintf(os.Stderr, "Run 'latticelab data compounds' to see available compounds.\n")
		}
		return err

	case errors.ErrCodeUnknownStructure:
		if labErr, ok := err.(*errors.LabError); ok {
			fmt.Fprintf(os.Stderr, "❌ Crystal structure '%s' not found\n", labErr.Details["structure"])
			fmt.Fprintf(os.Stderr, "Run 'latticelab data structures' to see available structures.\n")
		}
		return err

	case errors.ErrCodeUnknownPage:
		if labErr, ok := err.(*errors.LabError); ok {
			fmt.Fprintf(os.Stderr, "❌ Section '%s' not found\n", labErr.Details["page"])
			fmt.Fprintf(os.Stderr, "Valid sections are 1-6 or their titles.\n")
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if labErr, ok := err.(*errors.LabError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", labErr.ToJSON())
			}
		}
		return err
	}
}
