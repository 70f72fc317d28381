package main

import (
	"errors"
	"os"

	vollmacht "github.com/alnah/go-vollmacht"
	"github.com/alnah/go-vollmacht/internal/config"
)

// Exit codes for the vollmacht CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser and rendering errors (exit 4)
	if errors.Is(err, vollmacht.ErrBrowserConnect) ||
		errors.Is(err, vollmacht.ErrPageCreate) ||
		errors.Is(err, vollmacht.ErrPageLoad) ||
		errors.Is(err, vollmacht.ErrPDFGeneration) ||
		errors.Is(err, vollmacht.ErrPDFMalformed) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSignature) ||
		errors.Is(err, ErrSignatureMissing) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, vollmacht.ErrInvalidMargin) ||
		errors.Is(err, vollmacht.ErrInvalidSignatureSize) ||
		errors.Is(err, vollmacht.ErrUnknownLanguage) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
