package env

import (
	"os"
	"strings"
)

// ActiveEnv selects which environment block of the configuration is
// used (local, sepolia, mainnet, ...). Defaults to local.
func ActiveEnv() string {
	if v := os.Getenv("ACTIVE_ENV"); v != "" {
		return strings.ToLower(v)
	}
	return "local"
}

// PodName example: demarket-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// AppName example: api
func AppName() string {
	return os.Getenv("APP_NAME")
}
