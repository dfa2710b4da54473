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

package eventlog

import "github.com/carverauto/netwatch/pkg/models"

// Category describes one event-kind identifier tracked by the collector.
// Disconnect marks the kinds that act as correlation anchors.
type Category struct {
	ID          int
	Description string
	Severity    models.Severity
	Disconnect  bool
}

// Categories returns the fixed table of tracked event kinds.
func Categories() map[int]Category {
	return map[int]Category{
		27:    {ID: 27, Description: "Network adapter disabled", Severity: models.SeverityCritical, Disconnect: true},
		32:    {ID: 32, Description: "Network link established", Severity: models.SeverityInfo},
		1129:  {ID: 1129, Description: "Network connectivity lost", Severity: models.SeverityWarning, Disconnect: true},
		4201:  {ID: 4201, Description: "TCP/IP media connect", Severity: models.SeverityInfo},
		4202:  {ID: 4202, Description: "TCP/IP media disconnect", Severity: models.SeverityWarning, Disconnect: true},
		10400: {ID: 10400, Description: "Network adapter reset", Severity: models.SeverityWarning, Disconnect: true},
		10401: {ID: 10401, Description: "Network adapter configuration changed", Severity: models.SeverityInfo},
	}
}

// DisconnectKinds returns the set of event kinds that qualify as disconnect
// anchors for correlation.
func DisconnectKinds() map[int]bool {
	kinds := make(map[int]bool)

	for id, cat := range Categories() {
		if cat.Disconnect {
			kinds[id] = true
		}
	}

	return kinds
}
