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

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `{"timestamp":"2025-06-01T10:00:00Z","event_id":27,"message":"Adapter \"Ethernet0\" disabled"}
{"timestamp":"2025-06-01T10:00:15Z","event_id":1129,"message":"connectivity lost"}
not json at all
{"timestamp":"2025-05-30T08:00:00Z","event_id":27,"message":"old record"}

{"timestamp":"2025-06-01T11:00:00Z","event_id":32,"message":"link established"}
`

func writeExport(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))

	return path
}

func TestExportSourceFiltersByKindAndWindow(t *testing.T) {
	src := NewExportSource(writeExport(t))
	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	records, err := src.Query(context.Background(), 27, since)
	require.NoError(t, err)

	// The old record falls outside the window; the malformed line and the
	// other kinds are not returned.
	require.Len(t, records, 1)
	assert.Equal(t, `Adapter "Ethernet0" disabled`, records[0].Message)
}

func TestExportSourceMissingFile(t *testing.T) {
	src := NewExportSource(filepath.Join(t.TempDir(), "nope.jsonl"))

	_, err := src.Query(context.Background(), 27, time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open event export")
}

func TestExportSourceCanceledContext(t *testing.T) {
	src := NewExportSource(writeExport(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Query(ctx, 27, time.Time{})
	assert.ErrorIs(t, err, context.Canceled)
}
