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

package correlate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAdapterName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		ok      bool
	}{
		{
			name:    "quoted adapter name",
			message: `The network adapter "Ethernet0" was disabled`,
			want:    "Ethernet0",
			ok:      true,
		},
		{
			name:    "first quoted segment wins",
			message: `Adapter "eth0" replaced "eth1"`,
			want:    "eth0",
			ok:      true,
		},
		{
			name:    "surrounding whitespace trimmed",
			message: `Link down on " enp3s0 "`,
			want:    "enp3s0",
			ok:      true,
		},
		{
			name:    "no quotes",
			message: "connectivity lost on the primary interface",
			ok:      false,
		},
		{
			name:    "unclosed quote",
			message: `adapter "Ethernet0 went away`,
			ok:      false,
		},
		{
			name:    "empty quoted segment",
			message: `adapter "" went away`,
			ok:      false,
		},
		{
			name:    "empty message",
			message: "",
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAdapterName(tt.message)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
