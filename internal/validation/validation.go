// Package validation holds input checks shared by the domain model and the front ends.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/fintrack/internal/trackererror"
)

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'yaml'", format)
	}
}

// ValidateText rejects characters that would break a line of the pipe-delimited data file.
func ValidateText(field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &trackererror.ValidationError{Field: field, Reason: "must be a single line"}
	}
	if strings.Contains(value, "|") {
		return &trackererror.ValidationError{Field: field, Reason: "must not contain '|'"}
	}
	return nil
}

// ValidateCategory additionally rejects the separators of the BUDGETS line.
func ValidateCategory(value string) error {
	if err := ValidateText("category", value); err != nil {
		return err
	}
	if strings.ContainsAny(value, ":,") {
		return &trackererror.ValidationError{Field: "category", Reason: "must not contain ':' or ','"}
	}
	return nil
}

// ValidateCredential checks a username or password.
func ValidateCredential(field, value string) error {
	if value == "" {
		return &trackererror.ValidationError{Field: field, Reason: "must not be empty"}
	}
	return ValidateText(field, value)
}

// IsValidFilePermissions checks that a file holding credentials is not readable by others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.String())
	}
	return nil
}
