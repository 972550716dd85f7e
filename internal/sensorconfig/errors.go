package sensorconfig

import (
	"errors"
	"fmt"
)

// ConfigLoadError reports that the file could not be loaded at startup or on
// reload. The store keeps running with an empty document; LoadError returns it.
type ConfigLoadError struct {
	Path string // File that failed to load
	Op   string // "load" or "reload"
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to %s config %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// MissingSectionError is returned when a required section is not in the document.
type MissingSectionError struct {
	Section string
}

// Error implements the error interface
func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("config section [%s] is missing", e.Section)
}

// MalformedProtocolCodeError is returned when an EEP string is not of the
// form RR-FF-TT.
type MalformedProtocolCodeError struct {
	Code   string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *MalformedProtocolCodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed protocol code %q: %s (caused by: %v)", e.Code, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed protocol code %q: %s", e.Code, e.Reason)
}

// Unwrap returns the underlying error for error chain inspection
func (e *MalformedProtocolCodeError) Unwrap() error {
	return e.Err
}

// InvalidAddressError is returned when a sensor address is not hexadecimal.
type InvalidAddressError struct {
	Address string
	Err     error
}

// Error implements the error interface
func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid sensor address %q: %v", e.Address, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *InvalidAddressError) Unwrap() error {
	return e.Err
}

// SaveError is returned when the document cannot be written back to disk.
type SaveError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save config %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SaveError) Unwrap() error {
	return e.Err
}

// IsMissingSection reports whether err is, or wraps, a MissingSectionError.
func IsMissingSection(err error) bool {
	var target *MissingSectionError
	return errors.As(err, &target)
}
