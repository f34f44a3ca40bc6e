package config

// DefaultExcludes are watch patterns ignored by default: editor swap and
// backup files that would otherwise trigger spurious rebuilds.
var DefaultExcludes = []string{
	".*",
	"*~",
	"*.swp",
	"*.tmp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   "data",
		OutputDir: "site",
		Port:      8080,
		Watch: WatchConfig{
			Include:    []string{"**/*.json"},
			Exclude:    DefaultExcludes,
			DebounceMS: 200,
		},
	}
}
