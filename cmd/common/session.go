// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/fintrack/internal/tracker"
	"fjacquet/fintrack/internal/validation"
)

// ErrMissingCredentials is returned when a command needs a user but none was given.
var ErrMissingCredentials = fmt.Errorf("--user and --password are required (or set FINTRACK_USER and FINTRACK_PASSWORD)")

// Login starts a session for the given credentials.
func Login(tr *tracker.Tracker, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	if _, err := tr.Login(username, password); err != nil {
		return err
	}
	return nil
}

// ResolveFormat returns requested when set, fallback otherwise, and checks the result.
func ResolveFormat(requested, fallback string) (string, error) {
	format := requested
	if format == "" {
		format = fallback
	}
	if format == "" {
		format = validation.FormatText
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// WriteReport writes a generated report to w.
func WriteReport(w io.Writer, out []byte, err error) error {
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
