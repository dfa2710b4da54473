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

package monitor

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/carverauto/netwatch/pkg/models"
)

// StateRow is one full-state snapshot, appended for every adapter on every
// tick regardless of change.
type StateRow struct {
	Timestamp    string `csv:"timestamp"`
	RunID        string `csv:"run_id"`
	Adapter      string `csv:"adapter"`
	MediaConnect string `csv:"media_connect"`
	AdminStatus  string `csv:"admin_status"`
	OperStatus   string `csv:"oper_status"`
}

// EventRow is one detected state change.
type EventRow struct {
	Timestamp   string `csv:"timestamp"`
	RunID       string `csv:"run_id"`
	Adapter     string `csv:"adapter"`
	Severity    string `csv:"severity"`
	Description string `csv:"description"`
	Changes     string `csv:"changes"`
}

// Log is an append-only CSV file. The header is written once at creation;
// rows are only ever appended.
type Log[T any] struct {
	f *os.File
}

func NewLog[T any](path string) (*Log[T], error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create log '%s': %w", path, err)
	}

	if err := gocsv.Marshal(&[]T{}, f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write log header to '%s': %w", path, err)
	}

	return &Log[T]{f: f}, nil
}

func (l *Log[T]) Append(row T) error {
	return gocsv.MarshalWithoutHeaders(&[]T{row}, l.f)
}

func (l *Log[T]) Close() error {
	return l.f.Close()
}

func newStateRow(now time.Time, runID string, st models.AdapterState) StateRow {
	return StateRow{
		Timestamp:    now.Format(time.RFC3339),
		RunID:        runID,
		Adapter:      st.Name,
		MediaConnect: string(st.MediaConnect),
		AdminStatus:  string(st.AdminStatus),
		OperStatus:   st.OperStatus,
	}
}

func newEventRow(runID string, rec models.StateChangeRecord) EventRow {
	changes := make([]string, 0, len(rec.Changes))
	for _, c := range rec.Changes {
		changes = append(changes, fmt.Sprintf("%s: %s -> %s", c.Field, c.OldValue, c.NewValue))
	}

	return EventRow{
		Timestamp:   rec.Timestamp.Format(time.RFC3339),
		RunID:       runID,
		Adapter:     rec.AdapterName,
		Severity:    string(rec.Severity),
		Description: rec.Description,
		Changes:     strings.Join(changes, "; "),
	}
}
