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

package models

import "time"

// Severity grades a collected or detected event.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// NetworkEvent is a system event-log record reduced to the fields the
// correlator needs. Immutable once collected.
type NetworkEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	KindID      int       `json:"kind_id"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message,omitempty"`
}

// CorrelationResult ties one disconnect-class anchor event to the other
// events observed inside its correlation window. Computed on demand per
// anchor, never persisted.
type CorrelationResult struct {
	Anchor      NetworkEvent   `json:"anchor"`
	AdapterName string         `json:"adapter_name,omitempty"`
	Physical    bool           `json:"physical"`
	Correlated  []NetworkEvent `json:"correlated,omitempty"`
}

// Attributed reports whether name extraction identified an adapter for the
// anchor. Unattributed anchors are shown but excluded from the
// real-disconnect tally.
func (r *CorrelationResult) Attributed() bool {
	return r.AdapterName != ""
}

// FieldChange is one tracked field of an adapter going from an old value to
// a new one between two poll ticks.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// StateChangeRecord is appended to the monitor's event log whenever a poll
// tick detects a tracked-field change. Never mutated after append.
type StateChangeRecord struct {
	Timestamp   time.Time     `json:"timestamp"`
	AdapterName string        `json:"adapter_name"`
	Changes     []FieldChange `json:"changes"`
	Severity    Severity      `json:"severity"`
	Description string        `json:"description"`
}
