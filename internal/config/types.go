package config

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level site configuration, corresponding to .hana.yml.
type Config struct {
	SiteName string        `yaml:"site_name" koanf:"site_name"`
	Server   ServerConfig  `yaml:"server" koanf:"server"`
	View     ViewConfig    `yaml:"view" koanf:"view"`
	Assets   AssetsConfig  `yaml:"assets" koanf:"assets"`
	Export   ExportConfig  `yaml:"export" koanf:"export"`
	Logging  LoggingConfig `yaml:"logging" koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port                     int  `yaml:"port" koanf:"port"`
	AllowAllOrigins          bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ReadHeaderTimeoutSeconds int  `yaml:"read_header_timeout_seconds" koanf:"read_header_timeout_seconds"`
	ShutdownTimeoutSeconds   int  `yaml:"shutdown_timeout_seconds" koanf:"shutdown_timeout_seconds"`
}

// ViewConfig tunes the per-visitor view state.
type ViewConfig struct {
	ScrollThreshold int `yaml:"scroll_threshold" koanf:"scroll_threshold"`
}

// AssetsConfig controls which files under Dir are served. Include holds
// doublestar globs relative to Dir.
type AssetsConfig struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include" koanf:"include"`
}

// ExportConfig holds static export settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
