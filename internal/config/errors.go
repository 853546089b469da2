package config

import "errors"

var (
	// ErrUnknownProfile is returned when a name matches none of the defined profiles.
	// Use errors.Is(err, ErrUnknownProfile) instead of string matching.
	ErrUnknownProfile = errors.New("unknown profile")
)
