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

// Package models defines the shared record types for adapter diagnostics.
package models

import "time"

// MediaType values reported by the adapter enumeration layer.
const (
	MediaTypeEthernet = "802.3"
	MediaTypeOther    = "other"
)

// MediaState is the link-layer carrier state of an interface, independent
// of its administrative status.
type MediaState string

const (
	MediaConnected    MediaState = "Connected"
	MediaDisconnected MediaState = "Disconnected"
	MediaUnknown      MediaState = "Unknown"
)

// AdminStatus is the OS-level administrative status of an interface.
type AdminStatus string

const (
	AdminUp   AdminStatus = "Up"
	AdminDown AdminStatus = "Down"
)

// Adapter identifies a network interface. Physical is derived once by the
// classifier and does not change for the rest of the run.
type Adapter struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MediaType   string `json:"media_type"`
	Physical    bool   `json:"physical"`
}

// AdapterState is one observed snapshot of an adapter, taken at a poll tick.
type AdapterState struct {
	Name         string      `json:"name"`
	MediaConnect MediaState  `json:"media_connect"`
	AdminStatus  AdminStatus `json:"admin_status"`
	OperStatus   string      `json:"oper_status"`
	ObservedAt   time.Time   `json:"observed_at"`
}
