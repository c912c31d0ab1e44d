package tui

import "errors"

// ErrMissingViewController is returned when the view controller is not provided.
var ErrMissingViewController = errors.New("tui: view controller is required")

// ErrMissingFrames is returned when the frame store is not provided.
var ErrMissingFrames = errors.New("tui: frame store is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
