package config

import (
	"os"
	"strconv"
	"time"
)

const (
	apiBaseURLVar = "HRMS_API_BASE_URL"
	appNameVar    = "APP_NAME"
	folderEnvVar  = "FOLDER"
	timeoutVar    = "HTTP_TIMEOUT_SECONDS"
	logLevelVar   = "LOG_LEVEL"

	// Development default; the backend serves its API under /api.
	defaultBaseURL = "http://localhost:8081/api"

	// The backend defines no timeout; 30s is a deliberate hardening choice so
	// a hung call cannot stall a command forever.
	defaultTimeoutSeconds = 30
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}
var _ APIConfig = EnvVars{}

// GetAPIBaseURL returns the base URL of the HRMS backend API
// (e.g. "https://hrms.example.com/api"). All endpoint paths are relative to it.
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, defaultBaseURL)
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "WorkZen")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

func (EnvVars) GetRequestTimeout() time.Duration {
	seconds, err := strconv.Atoi(GetEnv(timeoutVar, ""))
	if err != nil || seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
