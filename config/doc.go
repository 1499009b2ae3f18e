// Package config provides configuration loading and validation for pkgbridge
// hosts.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with godotenv support for .env files. Hosts embed HostConfig
// in their own config structs and extend ApplyDefaults/Validate.
//
// # Usage
//
//	var cfg config.HostConfig
//	err := config.LoadConfig("pkgbridge", &cfg)
//	cfg.ApplyDefaults()
//	err = cfg.Validate()
//
// Environment variables override file values using the PKGBRIDGE_ prefix
// with underscore-separated paths (e.g., PKGBRIDGE_LOGGING_LEVEL).
package config
