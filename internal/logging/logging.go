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

// Package logging builds the zap loggers used by the server.
package logging

import (
	"context"
	"fmt"

	gqllog "github.com/graph-gophers/graphql-go/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported output formats
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ParseLevel parses a level name such as "debug" or "info".
func ParseLevel(level string) (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return l, fmt.Errorf("logging: %w", err)
	}
	return l, nil
}

// New creates a logger that writes entries at or above level in the given format.
func New(level string, format string) (*zap.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var config zap.Config
	switch format {
	case FormatJSON:
		config = zap.NewProductionConfig()
	case FormatConsole:
		config = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf(`logging: unknown format "%s"`, format)
	}
	config.Level = zap.NewAtomicLevelAt(l)

	return config.Build()
}

// panicLogger implements the logger interface of graphql-go.
type panicLogger struct {
	logger *zap.Logger
}

var _ gqllog.Logger = panicLogger{}

// PanicLogger returns a logger for graphql-go which reports panics recovered from resolvers to
// logger.
func PanicLogger(logger *zap.Logger) gqllog.Logger {
	return panicLogger{
		logger: logger,
	}
}

// LogPanic implements gqllog.Logger.
func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.logger.Error("graphql: panic occurred in resolver",
		zap.Any("panic", value),
		zap.Stack("stack"))
}
