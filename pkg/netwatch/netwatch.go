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

// Package netwatch composes the diagnostic stages into a single forward
// pass: classify adapters, collect historical events, correlate, then
// optionally monitor live state. Each stage returns its results and the
// composition happens here; no state is accumulated across stages.
package netwatch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/netwatch/pkg/classify"
	"github.com/carverauto/netwatch/pkg/config"
	"github.com/carverauto/netwatch/pkg/correlate"
	"github.com/carverauto/netwatch/pkg/eventlog"
	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
	"github.com/carverauto/netwatch/pkg/monitor"
)

// ErrNoPhysicalAdapters is the terminal precondition: without at least one
// physical adapter there is nothing to diagnose, and the run aborts before
// any event collection.
var ErrNoPhysicalAdapters = errors.New("no physical network adapters found")

// Options wires the run's collaborators. Zero-value fields fall back to the
// host-backed implementations.
type Options struct {
	Config     *config.Config
	Logger     logger.Logger
	Enumerator classify.Enumerator
	Source     eventlog.Source
	Prober     monitor.StateProber
}

// Summary is the composed result of one run.
type Summary struct {
	RunID           string
	GeneratedAt     time.Time
	Partition       classify.Partition
	Events          []models.NetworkEvent
	Results         []models.CorrelationResult
	RealDisconnects int
	MonitorChanges  []models.StateChangeRecord
	StateLogPath    string
	EventLogPath    string
}

// Run executes one diagnostic pass. The monitor stage runs only when
// enabled in the configuration; a canceled context during monitoring still
// returns the results gathered so far alongside the error.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	cfg := opts.Config
	log := opts.Logger

	if opts.Enumerator == nil {
		opts.Enumerator = classify.NewHostEnumerator()
	}

	if opts.Prober == nil {
		opts.Prober = monitor.NewSysfsProber()
	}

	summary := &Summary{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now(),
	}

	adapters, err := opts.Enumerator.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("adapter enumeration failed: %w", err)
	}

	summary.Partition = classify.Classify(adapters)

	log.Info().
		Int("physical", len(summary.Partition.Physical)).
		Int("virtual", len(summary.Partition.Virtual)).
		Msg("Classified adapters")

	if len(summary.Partition.Physical) == 0 {
		return nil, ErrNoPhysicalAdapters
	}

	summary.Events = collectEvents(ctx, cfg, opts.Source, log)
	summary.Results = correlate.NewEngine().Correlate(summary.Events, summary.Partition)

	for _, r := range summary.Results {
		if r.Physical {
			summary.RealDisconnects++
		}
	}

	log.Info().
		Int("events", len(summary.Events)).
		Int("anchors", len(summary.Results)).
		Int("real_disconnects", summary.RealDisconnects).
		Msg("Correlation complete")

	if !cfg.Monitor.Enabled {
		return summary, nil
	}

	stamp := summary.GeneratedAt.Format("20060102-150405")
	summary.StateLogPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("netwatch_state_%s.csv", stamp))
	summary.EventLogPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("netwatch_events_%s.csv", stamp))

	watched := make([]models.Adapter, 0, len(summary.Partition.Physical)+len(summary.Partition.Virtual))
	watched = append(watched, summary.Partition.Physical...)

	if cfg.Monitor.ShowVirtual {
		watched = append(watched, summary.Partition.Virtual...)
	}

	mon, err := monitor.New(monitor.Config{
		Duration:     cfg.Monitor.Duration.Duration(),
		StateLogPath: summary.StateLogPath,
		EventLogPath: summary.EventLogPath,
		RunID:        summary.RunID,
	}, watched, opts.Prober, log)
	if err != nil {
		return nil, fmt.Errorf("failed to start monitor: %w", err)
	}

	summary.MonitorChanges, err = mon.Run(ctx)
	if err != nil {
		return summary, fmt.Errorf("monitor interrupted: %w", err)
	}

	return summary, nil
}

// collectEvents runs the historical collection stage. Without an event
// export the stage is skipped; correlation then sees an empty set.
func collectEvents(ctx context.Context, cfg *config.Config, source eventlog.Source, log logger.Logger) []models.NetworkEvent {
	if source == nil {
		if cfg.EventsFile == "" {
			log.Warn().Msg("No event export configured, skipping historical collection")
			return nil
		}

		source = eventlog.NewExportSource(cfg.EventsFile)
	}

	since := time.Now().Add(-cfg.Lookback())

	return eventlog.NewCollector(source, log).Collect(ctx, since)
}
