// Package config provides environment-based configuration helpers for
// go-camshim commands.
package config

import "os"

// Environment variables honored by the cmd tools.
const (
	EnvLogLevel       = "CAMSHIM_LOG_LEVEL"
	EnvNoAEConverged  = "CAMSHIM_NO_AE_CONVERGED"
	EnvNoAWBConverged = "CAMSHIM_NO_AWB_CONVERGED"
	EnvNoAFModeEcho   = "CAMSHIM_NO_AF_MODE_ECHO"
)

// LogLevel returns the log level from CAMSHIM_LOG_LEVEL.
// Falls back to the provided default if not set.
func LogLevel(defaultLevel string) string {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		return lvl
	}
	return defaultLevel
}

// Disabled reports whether the given CAMSHIM_NO_* toggle is set.
// Any non-empty value counts as set.
func Disabled(envVar string) bool {
	return os.Getenv(envVar) != ""
}
