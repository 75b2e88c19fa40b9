package errors

import "fmt"

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *LabError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *LabError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// UnknownCompound creates an unknown compound lookup error
func UnknownCompound(name string) *LabError {
	return New(ErrCodeUnknownCompound, fmt.Sprintf("compound '%s' is not in the reference table", name)).
		WithDetail("compound", name)
}

// UnknownStructure creates an unknown crystal structure lookup error
func UnknownStructure(name string) *LabError {
	return New(ErrCodeUnknownStructure, fmt.Sprintf("crystal structure '%s' is not in the reference table", name)).
		WithDetail("structure", name)
}

// UnknownPage creates an unknown page name error
func UnknownPage(name string) *LabError {
	return New(ErrCodeUnknownPage, fmt.Sprintf("page '%s' does not exist", name)).
		WithDetail("page", name)
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *LabError {
	return New(ErrCodeInvalidInput, reason)
}
