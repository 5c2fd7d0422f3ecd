package common

const (
	// ToolName is the name of the translator executable.
	ToolName = "sscp"

	// ToolVersion is the current version of the translator.
	ToolVersion = "0.1.0"

	// ConfigFileName is the name of the config file looked up next to the
	// input module when no config is given explicitly.
	ConfigFileName = "sscp.toml"
)
