package config

// ExtraKey is the key of the npmhandler section inside the host's extra configuration.
const ExtraKey = "npm-handler"

// Recognized option keys.
const (
	KeyExcludePackages = "exclude-packages"
	KeyNpmPath         = "npm-path"
)

// DefaultNpmPath is the installer used when none is configured.
const DefaultNpmPath = "npm"

// EnvConfigPath overrides descriptor discovery with an explicit file.
const EnvConfigPath = "NPMHANDLER_CONFIG"

// Options is the typed form of the npm-handler configuration section.
type Options struct {
	// ExcludePackages lists project-root-relative directories that must not be installed.
	ExcludePackages []string `yaml:"exclude-packages,omitempty" toml:"exclude-packages,omitempty" json:"exclude-packages,omitempty"`

	// NpmPath is the installer executable: absolute, root-relative or a bare command name.
	NpmPath string `yaml:"npm-path,omitempty" toml:"npm-path,omitempty" json:"npm-path,omitempty"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		ExcludePackages: []string{},
		NpmPath:         DefaultNpmPath,
	}
}

// FromExtra reads the npm-handler section of the host's extra configuration.
// Missing or malformed entries fall back to their defaults; it never fails.
func FromExtra(extra map[string]any) Options {
	opts := Default()

	section, ok := extra[ExtraKey].(map[string]any)
	if !ok {
		return opts
	}

	switch list := section[KeyExcludePackages].(type) {
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				opts.ExcludePackages = append(opts.ExcludePackages, s)
			}
		}
	case []string:
		for _, s := range list {
			if s != "" {
				opts.ExcludePackages = append(opts.ExcludePackages, s)
			}
		}
	}

	if path, ok := section[KeyNpmPath].(string); ok && path != "" {
		opts.NpmPath = path
	}

	return opts
}

// Extra returns opts in the shape FromExtra reads, keyed under ExtraKey.
func (o Options) Extra() map[string]any {
	section := make(map[string]any, 2)
	if len(o.ExcludePackages) > 0 {
		list := make([]any, 0, len(o.ExcludePackages))
		for _, s := range o.ExcludePackages {
			list = append(list, s)
		}
		section[KeyExcludePackages] = list
	}
	if o.NpmPath != "" {
		section[KeyNpmPath] = o.NpmPath
	}
	return map[string]any{ExtraKey: section}
}
