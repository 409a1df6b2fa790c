// Package config reads the settings of the server from the environment.
// A .env file in the working directory is loaded first when present.
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var cfg = load()

func load() *viper.Viper {
	// a missing .env is fine, the environment is used as is
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SNAPSHOT_STORE", "badger")
	v.SetDefault("BADGER_PATH", "data/badger")
	v.SetDefault("PROGRESS_STORE", "sqlite")
	v.SetDefault("SQLITE_PATH", "data/progress.db")
	return v
}

// Get ...
func Get(key string) string {
	return cfg.GetString(key)
}

// GetOrDefault ...
func GetOrDefault(key, def string) string {
	env := cfg.GetString(key)
	if env != "" {
		return env
	}
	return def
}

// GetInt returns def when key is unset or not a number.
func GetInt(key string, def int) int {
	if !cfg.IsSet(key) {
		return def
	}
	n := cfg.GetInt(key)
	if n == 0 && cfg.GetString(key) != "0" {
		return def
	}
	return n
}
