package config

// ShellConfig controls how the host document is assembled.
type ShellConfig struct {
	AnchorID       string
	Title          string
	OfflineEnabled bool   // exposes the worker-registration capability on the host
	ThemeFile      string // optional YAML overrides for design tokens
}

func loadShell() ShellConfig {
	return ShellConfig{
		AnchorID:       envOrDefault(envAnchorID, defaultAnchorID),
		Title:          envOrDefault(envTitle, defaultTitle),
		OfflineEnabled: boolEnvOrDefault(envOffline, defaultOffline),
		ThemeFile:      envOrDefault(envThemeFile, ""),
	}
}
