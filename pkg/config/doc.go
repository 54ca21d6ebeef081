// Package config loads typed configuration structs from environment
// variables using `env` struct tags, with optional .env file support for
// local development.
package config
