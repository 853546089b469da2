package config

// overrides lists the settings a profile replaces on top of the base.
// A nil field keeps the base value.
type overrides struct {
	debug       *bool
	development *bool
}

func (o overrides) apply(base Settings) Settings {
	if o.debug != nil {
		base.Debug = *o.debug
	}
	if o.development != nil {
		base.Development = *o.development
	}
	return base
}

func enabled() *bool {
	v := true
	return &v
}

var profileOverrides = map[ProfileName]overrides{
	Production:  {},
	Staging:     {debug: enabled()},
	Development: {debug: enabled(), development: enabled()},
}

// Registry holds the base settings and every resolved profile. It is read-only
// after construction, so concurrent readers need no locking.
type Registry struct {
	base     Settings
	profiles map[ProfileName]Profile
}

// NewRegistry builds every profile by applying its overrides onto a copy of the
// base settings. dbPass is shared by all profiles.
func NewRegistry(dbPass string) *Registry {
	base := Settings{
		Debug:       false,
		Development: false,
		DBPass:      dbPass,
	}

	profiles := make(map[ProfileName]Profile, len(profileOverrides))
	for _, name := range ProfileNames() {
		profiles[name] = Profile{
			Name:     name,
			Settings: profileOverrides[name].apply(base),
		}
	}

	return &Registry{base: base, profiles: profiles}
}

// LoadRegistry resolves DB_PASS from the environment and builds the registry.
// Call it once at startup and pass the result along.
func LoadRegistry() *Registry {
	return NewRegistry(ResolveDBPassword())
}

// Base returns the settings every profile starts from.
func (r *Registry) Base() Settings {
	return r.base
}

// Profile returns the settings for name.
func (r *Registry) Profile(name ProfileName) (Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, unknownProfileError(string(name))
	}
	return p, nil
}

// Lookup parses a raw profile name, e.g. from APP_ENV, and returns its profile.
func (r *Registry) Lookup(raw string) (Profile, error) {
	name, err := ParseProfileName(raw)
	if err != nil {
		return Profile{}, err
	}
	return r.Profile(name)
}

// Profiles returns every profile in declaration order.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.profiles))
	for _, name := range ProfileNames() {
		out = append(out, r.profiles[name])
	}
	return out
}
