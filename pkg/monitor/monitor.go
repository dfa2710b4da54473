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

// Package monitor polls adapter state on a fixed interval for a bounded
// duration, classifying every detected transition and appending to a pair
// of append-only CSV logs.
package monitor

import (
	"context"
	"time"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const (
	// pollInterval is fixed; the CLI deliberately exposes no flag for it.
	pollInterval = 5 * time.Second

	// recheckDelay is the pause before the post-disconnect re-poll that
	// detects rapid self-recovery (a flapping cable or port).
	recheckDelay = 2 * time.Second
)

const (
	descPhysicalDisconnect = "physical disconnect"
	descSoftwareDisconnect = "software-level disconnect"
	descReconnected        = "reconnected"
	descStateChange        = "state change"
	descFlapRecovery       = "link restored immediately after disconnect, possible flapping"
)

// Config controls one monitoring session.
type Config struct {
	Duration     time.Duration
	StateLogPath string
	EventLogPath string
	RunID        string
}

// Monitor runs the live state-change loop. It is strictly sequential: each
// tick probes every adapter in turn, and a probe failure for one adapter
// never aborts the others.
type Monitor struct {
	cfg      Config
	adapters []models.Adapter
	prober   StateProber
	clock    Clock
	log      logger.Logger
	stateLog *Log[StateRow]
	eventLog *Log[EventRow]
	last     map[string]models.AdapterState
}

func New(cfg Config, adapters []models.Adapter, prober StateProber, log logger.Logger) (*Monitor, error) {
	stateLog, err := NewLog[StateRow](cfg.StateLogPath)
	if err != nil {
		return nil, err
	}

	eventLog, err := NewLog[EventRow](cfg.EventLogPath)
	if err != nil {
		_ = stateLog.Close()
		return nil, err
	}

	return &Monitor{
		cfg:      cfg,
		adapters: adapters,
		prober:   prober,
		clock:    realClock{},
		log:      log,
		stateLog: stateLog,
		eventLog: eventLog,
		last:     make(map[string]models.AdapterState),
	}, nil
}

// Run executes the polling loop until the configured duration elapses or ctx
// is canceled, returning every state-change record detected, in order.
func (m *Monitor) Run(ctx context.Context) ([]models.StateChangeRecord, error) {
	defer func() {
		_ = m.stateLog.Close()
		_ = m.eventLog.Close()
	}()

	m.seed(ctx)

	m.log.Info().
		Dur("interval", pollInterval).
		Dur("duration", m.cfg.Duration).
		Int("adapters", len(m.adapters)).
		Msg("Starting live state-change monitor")

	deadline := m.clock.Now().Add(m.cfg.Duration)

	ticker := m.clock.Ticker(pollInterval)
	defer ticker.Stop()

	var detected []models.StateChangeRecord

	for {
		select {
		case <-ctx.Done():
			return detected, ctx.Err()
		case <-ticker.Chan():
			detected = append(detected, m.tick(ctx)...)
		}

		if !m.clock.Now().Before(deadline) {
			m.log.Info().Int("changes", len(detected)).Msg("Monitor duration reached")
			return detected, nil
		}
	}
}

// seed records the baseline state per adapter without emitting log rows, so
// the first tick diffs against invocation-time state.
func (m *Monitor) seed(ctx context.Context) {
	for _, a := range m.adapters {
		st, err := m.prober.Probe(ctx, a.Name)
		if err != nil {
			m.log.Warn().Err(err).Str("adapter", a.Name).Msg("Baseline probe failed")
			continue
		}

		m.last[a.Name] = st
	}
}

func (m *Monitor) tick(ctx context.Context) []models.StateChangeRecord {
	now := m.clock.Now()

	var detected []models.StateChangeRecord

	for _, a := range m.adapters {
		st, err := m.prober.Probe(ctx, a.Name)
		if err != nil {
			m.log.Warn().Err(err).Str("adapter", a.Name).Msg("Adapter poll failed, continuing")
			continue
		}

		if err := m.stateLog.Append(newStateRow(now, m.cfg.RunID, st)); err != nil {
			m.log.Error().Err(err).Str("adapter", a.Name).Msg("Failed to append state row")
		}

		last, ok := m.last[a.Name]
		if !ok {
			m.last[a.Name] = st
			continue
		}

		changes := diffStates(last, st)
		if len(changes) == 0 {
			continue
		}

		severity, desc := classifyTransition(last, st)

		rec := models.StateChangeRecord{
			Timestamp:   now,
			AdapterName: a.Name,
			Changes:     changes,
			Severity:    severity,
			Description: desc,
		}

		m.appendEvent(rec)
		detected = append(detected, rec)
		m.last[a.Name] = st

		m.log.Warn().
			Str("adapter", a.Name).
			Str("severity", string(severity)).
			Str("transition", desc).
			Msg("Adapter state change detected")

		if severity == models.SeverityCritical {
			if recovery, ok := m.recheck(ctx, a, st); ok {
				detected = append(detected, recovery)
			}
		}
	}

	return detected
}

// recheck re-polls once shortly after a critical disconnect. A link that is
// already back up points at flapping rather than an unplugged cable.
func (m *Monitor) recheck(ctx context.Context, a models.Adapter, prev models.AdapterState) (models.StateChangeRecord, bool) {
	select {
	case <-ctx.Done():
		return models.StateChangeRecord{}, false
	case <-m.clock.After(recheckDelay):
	}

	st, err := m.prober.Probe(ctx, a.Name)
	if err != nil {
		m.log.Warn().Err(err).Str("adapter", a.Name).Msg("Post-disconnect recheck failed")
		return models.StateChangeRecord{}, false
	}

	if st.MediaConnect != models.MediaConnected {
		return models.StateChangeRecord{}, false
	}

	rec := models.StateChangeRecord{
		Timestamp:   m.clock.Now(),
		AdapterName: a.Name,
		Changes:     diffStates(prev, st),
		Severity:    models.SeverityInfo,
		Description: descFlapRecovery,
	}

	m.appendEvent(rec)
	m.last[a.Name] = st

	m.log.Warn().Str("adapter", a.Name).Msg("Link restored within recheck delay, possible flapping")

	return rec, true
}

func (m *Monitor) appendEvent(rec models.StateChangeRecord) {
	if err := m.eventLog.Append(newEventRow(m.cfg.RunID, rec)); err != nil {
		m.log.Error().Err(err).Str("adapter", rec.AdapterName).Msg("Failed to append event row")
	}
}

func diffStates(prev, cur models.AdapterState) []models.FieldChange {
	var changes []models.FieldChange

	if prev.MediaConnect != cur.MediaConnect {
		changes = append(changes, models.FieldChange{
			Field:    "media_connect",
			OldValue: string(prev.MediaConnect),
			NewValue: string(cur.MediaConnect),
		})
	}

	if prev.AdminStatus != cur.AdminStatus {
		changes = append(changes, models.FieldChange{
			Field:    "admin_status",
			OldValue: string(prev.AdminStatus),
			NewValue: string(cur.AdminStatus),
		})
	}

	if prev.OperStatus != cur.OperStatus {
		changes = append(changes, models.FieldChange{
			Field:    "oper_status",
			OldValue: prev.OperStatus,
			NewValue: cur.OperStatus,
		})
	}

	return changes
}

func classifyTransition(prev, cur models.AdapterState) (models.Severity, string) {
	switch {
	case prev.MediaConnect == models.MediaConnected &&
		cur.MediaConnect == models.MediaDisconnected &&
		prev.AdminStatus == models.AdminUp:
		return models.SeverityCritical, descPhysicalDisconnect
	case prev.AdminStatus != models.AdminDown &&
		cur.AdminStatus == models.AdminDown &&
		cur.MediaConnect == models.MediaConnected:
		return models.SeverityWarning, descSoftwareDisconnect
	case prev.AdminStatus != models.AdminUp &&
		cur.AdminStatus == models.AdminUp:
		return models.SeverityInfo, descReconnected
	default:
		return models.SeverityInfo, descStateChange
	}
}
