package config

// DefaultAssetIncludes are the asset globs served when none are configured.
var DefaultAssetIncludes = []string{
	"images/**/*.{jpg,jpeg,png,webp,avif}",
	"static/**/*.{css,js,svg,ico,woff2}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	include := make([]string, len(DefaultAssetIncludes))
	copy(include, DefaultAssetIncludes)

	return &Config{
		SiteName: "Hana Ramen",
		Server: ServerConfig{
			Port:                     8080,
			AllowAllOrigins:          false,
			ReadHeaderTimeoutSeconds: 10,
			ShutdownTimeoutSeconds:   10,
		},
		View: ViewConfig{
			ScrollThreshold: 30,
		},
		Assets: AssetsConfig{
			Dir:     "public",
			Include: include,
		},
		Export: ExportConfig{
			OutputDir: "dist",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
