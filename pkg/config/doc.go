// Package config loads environment-driven configuration structs.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type
// is parsed once per process and cached, so packages can call Load for the
// same struct from anywhere without paying for reflection twice.
//
// # Usage
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Use LoadEnv to pull in extra .env files before the first Load, and Reset in
// tests that change the environment between cases.
package config
