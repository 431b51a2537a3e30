package config

const (
	envPort         = "PORT"
	envEnvFile      = "ENV_FILE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envAnchorID     = "SHELL_ANCHOR_ID"
	envTitle        = "SHELL_TITLE"
	envOffline      = "OFFLINE_ENABLED"
	envThemeFile    = "THEME_FILE"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultServiceID = "matchfeed-web"
	defaultPort      = "4000"
	defaultEnvFile   = ".env"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	// Conventional host anchor of the served document.
	defaultAnchorID    = "app"
	defaultTitle       = "Matchfeed"
	defaultOffline     = true
	defaultMetricsPort = "9090"
)

var defaultCORSOrigins = []string{"*"}
