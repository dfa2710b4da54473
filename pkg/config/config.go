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

// Package config loads and validates netwatch run configuration.
package config

import (
	"errors"
	"time"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

var (
	errLookbackInvalid = errors.New("lookback_hours must be positive")
	errDurationInvalid = errors.New("monitor duration must be positive")
)

const (
	defaultLookbackHours   = 24
	defaultMonitorDuration = 5 * time.Minute
	defaultOutputDir       = "."
)

// MonitorConfig controls the optional live state-change monitor.
type MonitorConfig struct {
	Enabled     bool            `json:"enabled"`
	Duration    models.Duration `json:"duration"`
	ShowVirtual bool            `json:"show_virtual"`
}

// Config represents a full netwatch run configuration.
type Config struct {
	LookbackHours int            `json:"lookback_hours"`
	EventsFile    string         `json:"events_file,omitempty"`
	OutputDir     string         `json:"output_dir"`
	Monitor       MonitorConfig  `json:"monitor"`
	Logging       *logger.Config `json:"logging,omitempty"`
}

// Validate implements the Validator interface, applying defaults for unset
// fields.
func (c *Config) Validate() error {
	if c.LookbackHours == 0 {
		c.LookbackHours = defaultLookbackHours
	}

	if c.LookbackHours < 0 {
		return errLookbackInvalid
	}

	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}

	if c.Monitor.Duration == 0 {
		c.Monitor.Duration = models.Duration(defaultMonitorDuration)
	}

	if c.Monitor.Duration < 0 {
		return errDurationInvalid
	}

	return nil
}

// Lookback returns the historical collection window as a duration.
func (c *Config) Lookback() time.Duration {
	return time.Duration(c.LookbackHours) * time.Hour
}
