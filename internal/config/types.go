package config

// Config is the top-level brochure configuration, corresponding to
// .brochure.yml.
type Config struct {
	// DataDir holds the content documents ({name}.json). Ignored when
	// ContentURL is set.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`
	// ContentURL, when set, is the remote data root the documents are
	// fetched from instead of DataDir.
	ContentURL string      `yaml:"content_url" koanf:"content_url"`
	OutputDir  string      `yaml:"output_dir" koanf:"output_dir"`
	Port       int         `yaml:"port" koanf:"port"`
	Open       bool        `yaml:"open" koanf:"open"`
	Watch      WatchConfig `yaml:"watch" koanf:"watch"`
}

// WatchConfig controls which content changes trigger a rebuild in watch
// mode.
type WatchConfig struct {
	Include    []string `yaml:"include" koanf:"include"`
	Exclude    []string `yaml:"exclude" koanf:"exclude"`
	DebounceMS int      `yaml:"debounce_ms" koanf:"debounce_ms"`
}
