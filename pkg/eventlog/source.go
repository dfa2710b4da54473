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
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Record is one raw event-log entry as returned by a Source, before it is
// normalized against the category table.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	EventID   int       `json:"event_id"`
	Message   string    `json:"message"`
}

// Source queries the system event log for one event kind over a trailing
// window. The event log itself is an opaque collaborator; implementations
// only have to return structured records.
type Source interface {
	Query(ctx context.Context, kindID int, since time.Time) ([]Record, error)
}

// ExportSource reads an exported event log in JSON-lines form. The file is
// re-read on every query so repeated collections over the same file and
// window return the same records.
type ExportSource struct {
	Path string
}

func NewExportSource(path string) *ExportSource {
	return &ExportSource{Path: path}
}

func (s *ExportSource) Query(ctx context.Context, kindID int, since time.Time) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event export '%s': %w", s.Path, err)
	}
	defer f.Close()

	var records []Record

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			// Malformed lines are tolerated; the export may be truncated.
			continue
		}

		if rec.EventID != kindID || rec.Timestamp.Before(since) {
			continue
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event export '%s': %w", s.Path, err)
	}

	return records, nil
}
