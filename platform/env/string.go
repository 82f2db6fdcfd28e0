package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return the default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	log.Debugf("env var %s not set, using default %q", env, def)
	return def
}

// Must return the value of an env var, panicking when it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Panicf("missing required env var %s", env)
	}
	return v
}
