// Package config loads configuration structs from environment variables
// using caarlos0/env field tags, with .env file support via godotenv. Each
// distinct struct type is parsed once per process and served from cache on
// later calls, so packages can load their own config independently without
// re-reading the environment.
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
