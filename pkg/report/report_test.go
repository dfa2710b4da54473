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

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/classify"
	"github.com/carverauto/netwatch/pkg/models"
)

func TestRecommend(t *testing.T) {
	anchor := models.NetworkEvent{KindID: 27, Timestamp: time.Now()}
	other := models.NetworkEvent{KindID: 1129, Timestamp: time.Now()}

	t.Run("physical with context suspects hardware", func(t *testing.T) {
		rec := Recommend([]models.CorrelationResult{
			{Anchor: anchor, AdapterName: "eth0", Physical: true, Correlated: []models.NetworkEvent{other}},
		})

		assert.True(t, rec.HardwareSuspected)
		assert.Contains(t, rec.Message, "correlated")
	})

	t.Run("physical without context still flags the link", func(t *testing.T) {
		rec := Recommend([]models.CorrelationResult{
			{Anchor: anchor, AdapterName: "eth0", Physical: true},
		})

		assert.True(t, rec.HardwareSuspected)
	})

	t.Run("virtual only is clean", func(t *testing.T) {
		rec := Recommend([]models.CorrelationResult{
			{Anchor: anchor, AdapterName: "vEthernet", Correlated: []models.NetworkEvent{other}},
		})

		assert.False(t, rec.HardwareSuspected)
	})

	t.Run("no results is clean", func(t *testing.T) {
		assert.False(t, Recommend(nil).HardwareSuspected)
	})
}

func TestPrinterHidesVirtualByDefault(t *testing.T) {
	SetNoColor(true)

	partition := classify.Classify([]models.Adapter{
		{Name: "eth0", MediaType: models.MediaTypeEthernet},
		{Name: "docker0", MediaType: models.MediaTypeEthernet},
	})

	var buf bytes.Buffer

	NewPrinter(&buf, false).PrintAdapters(partition)

	out := buf.String()
	assert.Contains(t, out, "eth0")
	assert.NotContains(t, out, "docker0")
	assert.Contains(t, out, "1 virtual/other adapters hidden")

	buf.Reset()
	NewPrinter(&buf, true).PrintAdapters(partition)
	assert.Contains(t, buf.String(), "docker0")
}

func TestPrinterCorrelations(t *testing.T) {
	SetNoColor(true)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	results := []models.CorrelationResult{
		{
			Anchor:      models.NetworkEvent{Timestamp: base, KindID: 27, Description: "Network adapter disabled"},
			AdapterName: "eth0",
			Physical:    true,
			Correlated: []models.NetworkEvent{
				{Timestamp: base.Add(15 * time.Second), KindID: 1129, Description: "Network connectivity lost"},
			},
		},
		{
			Anchor: models.NetworkEvent{Timestamp: base, KindID: 4202, Description: "TCP/IP media disconnect"},
		},
	}

	var buf bytes.Buffer

	NewPrinter(&buf, false).PrintCorrelations(results)

	out := buf.String()
	assert.Contains(t, out, "[27] Network adapter disabled (eth0)")
	assert.Contains(t, out, "[1129] Network connectivity lost")
	assert.Contains(t, out, "(unattributed)")
}

func TestWriteCorrelationCSV(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "correlations.csv")

	results := []models.CorrelationResult{
		{
			Anchor:      models.NetworkEvent{Timestamp: base, KindID: 27, Description: "Network adapter disabled", Severity: models.SeverityCritical},
			AdapterName: "eth0",
			Physical:    true,
			Correlated: []models.NetworkEvent{
				{Timestamp: base.Add(25 * time.Second), KindID: 32},
				{Timestamp: base.Add(10 * time.Second), KindID: 1129},
			},
		},
	}

	require.NoError(t, WriteCorrelationCSV(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "eth0")

	// The nearest correlated event is the one 10s away.
	assert.Contains(t, lines[1], "1129")
}
