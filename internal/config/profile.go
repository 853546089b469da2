package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// ProfileName identifies one deployment environment.
type ProfileName string

const (
	Production  ProfileName = "production"
	Staging     ProfileName = "staging"
	Development ProfileName = "development"
)

// ProfileNames lists the defined profiles in declaration order.
func ProfileNames() []ProfileName {
	return []ProfileName{Production, Staging, Development}
}

// ParseProfileName matches raw against the defined profile names, ignoring case
// and surrounding whitespace.
func ParseProfileName(raw string) (ProfileName, error) {
	name := ProfileName(strings.ToLower(strings.TrimSpace(raw)))
	if name.valid() {
		return name, nil
	}
	return "", unknownProfileError(raw)
}

func (n ProfileName) valid() bool {
	for _, known := range ProfileNames() {
		if n == known {
			return true
		}
	}
	return false
}

func (n ProfileName) String() string {
	return string(n)
}

func unknownProfileError(raw string) error {
	names := make([]string, 0, len(ProfileNames()))
	for _, n := range ProfileNames() {
		names = append(names, string(n))
	}
	return fmt.Errorf("%w %q (expected one of %s)", ErrUnknownProfile, raw, strings.Join(names, ", "))
}

// Profile is a named, fully resolved set of settings.
type Profile struct {
	Name ProfileName
	Settings
}

// LogValue keeps DB_PASS out of structured logs.
func (p Profile) LogValue() slog.Value {
	masked := p.Masked()
	return slog.GroupValue(
		slog.String("name", string(p.Name)),
		slog.Bool("debug", masked.Debug),
		slog.Bool("development", masked.Development),
		slog.String("db_pass", masked.DBPass),
		slog.Bool("db_pass_default", p.UsesDefaultDBPass()),
	)
}
