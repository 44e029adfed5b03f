package internal

const (
	DotEnvPath = "./.env"
	ConfigPath = "config.json"
)
