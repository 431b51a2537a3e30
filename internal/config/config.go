package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
	Shell       ShellConfig
	Metrics     MetricsConfig
}

// Load reads configuration from the environment (after merging an optional
// .env file) with sensible defaults.
func Load() (Config, error) {
	if err := loadDotEnv(envOrDefault(envEnvFile, defaultEnvFile)); err != nil {
		return Config{}, err
	}
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Shell:       loadShell(),
		Metrics:     loadMetrics(),
	}, nil
}
