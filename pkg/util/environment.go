package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables returns the process environment keyed by variable name
func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, _ := strings.Cut(variable, "=")

		environmentVariables[name] = value
	}

	return environmentVariables
}

// GetEnvironmentVariable returns the fallback when the variable is unset or empty
func GetEnvironmentVariable(name string, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}
