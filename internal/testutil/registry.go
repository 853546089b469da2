package testutil

import "github.com/preston-bernstein/profile-service/internal/config"

// DBPass is the password NewRegistry resolves into every profile.
const DBPass = "test-db-pass"

// NewRegistry builds a registry without touching the process environment.
func NewRegistry() *config.Registry {
	return config.NewRegistry(DBPass)
}

// MustProfile returns the named profile from NewRegistry, panicking on unknown names.
func MustProfile(name config.ProfileName) config.Profile {
	p, err := NewRegistry().Profile(name)
	if err != nil {
		panic(err)
	}
	return p
}
