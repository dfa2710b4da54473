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
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/carverauto/netwatch/pkg/models"
)

// CorrelationRow flattens one anchor for CSV export. One row per anchor;
// the correlated context is reduced to a count and the nearest event.
type CorrelationRow struct {
	Timestamp       string `csv:"timestamp"`
	KindID          int    `csv:"kind_id"`
	Description     string `csv:"description"`
	Severity        string `csv:"severity"`
	Adapter         string `csv:"adapter"`
	Physical        bool   `csv:"physical"`
	CorrelatedCount int    `csv:"correlated_count"`
	NearestKindID   int    `csv:"nearest_kind_id"`
}

// WriteCorrelationCSV exports the correlation results to path.
func WriteCorrelationCSV(path string, results []models.CorrelationResult) error {
	rows := make([]CorrelationRow, 0, len(results))

	for _, r := range results {
		row := CorrelationRow{
			Timestamp:       r.Anchor.Timestamp.Format(time.RFC3339),
			KindID:          r.Anchor.KindID,
			Description:     r.Anchor.Description,
			Severity:        string(r.Anchor.Severity),
			Adapter:         r.AdapterName,
			Physical:        r.Physical,
			CorrelatedCount: len(r.Correlated),
		}

		if nearest, ok := nearestEvent(r); ok {
			row.NearestKindID = nearest.KindID
		}

		rows = append(rows, row)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report '%s': %w", path, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(&rows, f); err != nil {
		return fmt.Errorf("failed to write report '%s': %w", path, err)
	}

	return nil
}

func nearestEvent(r models.CorrelationResult) (models.NetworkEvent, bool) {
	var (
		nearest models.NetworkEvent
		best    time.Duration
		found   bool
	)

	for _, ev := range r.Correlated {
		delta := ev.Timestamp.Sub(r.Anchor.Timestamp)
		if delta < 0 {
			delta = -delta
		}

		if !found || delta < best {
			nearest = ev
			best = delta
			found = true
		}
	}

	return nearest, found
}
