/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package config provides configuration management for the bookshelf server. Settings are read
// from command-line flags; environment variables override the defaults of flags that are not given
// on the command line.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/botobag/bookshelf/internal/logging"
)

// Config holds all configuration for the bookshelf server.
type Config struct {
	// Server settings
	Addr string
	Path string

	// GraphQL settings
	GraphiQL       bool
	MaxBodySize    uint
	MaxParallelism int

	// Seed the store with the initial authors and books.
	Seed bool

	// Logging settings
	LogLevel  string
	LogFormat string
}

// DefaultConfig returns the configuration used when nothing is given.
func DefaultConfig() *Config {
	return &Config{
		Addr:           ":4000",
		Path:           "/graphql",
		GraphiQL:       true,
		MaxBodySize:    10 << 20,
		MaxParallelism: 10,
		Seed:           true,
		LogLevel:       "info",
		LogFormat:      logging.FormatConsole,
	}
}

// Load reads configuration from args (without the program name) and environment variables.
func Load(args []string) (*Config, error) {
	return load(args, os.LookupEnv)
}

type lookupEnvFunc func(key string) (string, bool)

func load(args []string, lookupEnv lookupEnvFunc) (*Config, error) {
	config := DefaultConfig()

	// Apply environment variables on defaults first so that flags given explicitly win.
	if err := config.applyEnv(lookupEnv); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("bookshelf", flag.ContinueOnError)
	fs.StringVar(&config.Addr, "addr", config.Addr, "address to listen on")
	fs.StringVar(&config.Path, "path", config.Path, "path to serve GraphQL at")
	fs.BoolVar(&config.GraphiQL, "graphiql", config.GraphiQL, "serve GraphiQL to browsers")
	fs.UintVar(&config.MaxBodySize, "max-body-size", config.MaxBodySize, "maximum size of request body in bytes")
	fs.IntVar(&config.MaxParallelism, "max-parallelism", config.MaxParallelism, "maximum number of resolvers running in parallel per request")
	fs.BoolVar(&config.Seed, "seed", config.Seed, "seed the store with initial authors and books")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format (console, json)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) applyEnv(lookupEnv lookupEnvFunc) error {
	var err error

	stringEnv := func(key string, target *string) {
		if value, ok := lookupEnv(key); ok && len(value) > 0 {
			*target = value
		}
	}

	boolEnv := func(key string, target *bool) {
		value, ok := lookupEnv(key)
		if !ok || len(value) == 0 || err != nil {
			return
		}
		parsed, parseErr := strconv.ParseBool(value)
		if parseErr != nil {
			err = fmt.Errorf("config: invalid %s: %w", key, parseErr)
			return
		}
		*target = parsed
	}

	intEnv := func(key string, target *int) {
		value, ok := lookupEnv(key)
		if !ok || len(value) == 0 || err != nil {
			return
		}
		parsed, parseErr := strconv.Atoi(value)
		if parseErr != nil {
			err = fmt.Errorf("config: invalid %s: %w", key, parseErr)
			return
		}
		*target = parsed
	}

	uintEnv := func(key string, target *uint) {
		value, ok := lookupEnv(key)
		if !ok || len(value) == 0 || err != nil {
			return
		}
		parsed, parseErr := strconv.ParseUint(value, 10, 0)
		if parseErr != nil {
			err = fmt.Errorf("config: invalid %s: %w", key, parseErr)
			return
		}
		*target = uint(parsed)
	}

	stringEnv("BOOKSHELF_ADDR", &config.Addr)
	stringEnv("BOOKSHELF_PATH", &config.Path)
	boolEnv("BOOKSHELF_GRAPHIQL", &config.GraphiQL)
	uintEnv("BOOKSHELF_MAX_BODY_SIZE", &config.MaxBodySize)
	intEnv("BOOKSHELF_MAX_PARALLELISM", &config.MaxParallelism)
	boolEnv("BOOKSHELF_SEED", &config.Seed)
	stringEnv("BOOKSHELF_LOG_LEVEL", &config.LogLevel)
	stringEnv("BOOKSHELF_LOG_FORMAT", &config.LogFormat)

	return err
}

// Validate checks values in config.
func (config *Config) Validate() error {
	if !strings.HasPrefix(config.Path, "/") {
		return fmt.Errorf(`config: path must start with "/", got "%s"`, config.Path)
	}
	if config.MaxBodySize == 0 {
		return fmt.Errorf("config: max body size must be positive")
	}
	if config.MaxParallelism <= 0 {
		return fmt.Errorf("config: max parallelism must be positive, got %d", config.MaxParallelism)
	}
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch config.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf(`config: unknown log format "%s"`, config.LogFormat)
	}
	return nil
}
