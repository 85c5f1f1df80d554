// Package cli provides the command-line interface of mathutils.
package cli

import "errors"

// Sentinel errors for CLI validation
var (
	// ErrInvalidInteger is returned when a prime argument is not a base-10 integer
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrUnknownOutputFormat is returned when results are rendered in a format we do not support
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
