/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides structured logging using zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TranscriptConfig mirrors the console run to a rotating JSON log file so a
// full transcript of each invocation is preserved.
type TranscriptConfig struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
}

// Config controls logger construction.
type Config struct {
	Level      string            `json:"level"`
	Debug      bool              `json:"debug"`
	Output     string            `json:"output"` // console, stdout or stderr
	TimeFormat string            `json:"time_format"`
	Transcript *TranscriptConfig `json:"transcript,omitempty"`
}

// DefaultConfig returns the configuration used when none is supplied:
// info-level human-readable console output.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Output: "console",
	}
}

// loggerImpl implements the Logger interface without global state.
type loggerImpl struct {
	logger zerolog.Logger
}

// New creates a logger from the provided configuration. If config is nil,
// DefaultConfig is used.
func New(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var output io.Writer

	switch config.Output {
	case "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	if config.Transcript != nil && config.Transcript.Path != "" {
		transcript := &lumberjack.Logger{
			Filename:   config.Transcript.Path,
			MaxSize:    config.Transcript.MaxSizeMB,
			MaxBackups: config.Transcript.MaxBackups,
		}
		output = zerolog.MultiLevelWriter(output, transcript)
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	timeFormat := time.RFC3339
	if config.TimeFormat != "" {
		timeFormat = config.TimeFormat
	}

	zerolog.TimeFieldFormat = timeFormat

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &loggerImpl{logger: zlog}, nil
}

func (l *loggerImpl) Debug() *zerolog.Event { return l.logger.Debug() }
func (l *loggerImpl) Info() *zerolog.Event  { return l.logger.Info() }
func (l *loggerImpl) Warn() *zerolog.Event  { return l.logger.Warn() }
func (l *loggerImpl) Error() *zerolog.Event { return l.logger.Error() }
func (l *loggerImpl) Fatal() *zerolog.Event { return l.logger.Fatal() }
func (l *loggerImpl) With() zerolog.Context { return l.logger.With() }

func (l *loggerImpl) WithComponent(component string) zerolog.Logger {
	return l.logger.With().Str("component", component).Logger()
}
