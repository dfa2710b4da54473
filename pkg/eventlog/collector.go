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

// Package eventlog collects historical network events from the system event
// log and normalizes them into a uniform record shape.
package eventlog

import (
	"context"
	"sort"
	"time"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

// Collector queries one Source per tracked event kind and merges the
// results. A failing kind is logged and skipped; it never aborts collection
// of the remaining kinds.
type Collector struct {
	source     Source
	categories map[int]Category
	log        logger.Logger
}

func NewCollector(source Source, log logger.Logger) *Collector {
	return &Collector{
		source:     source,
		categories: Categories(),
		log:        log,
	}
}

// Collect gathers all tracked events newer than since, sorted descending by
// timestamp. Duplicate raw records yield duplicate events; no dedup is
// performed.
func (c *Collector) Collect(ctx context.Context, since time.Time) []models.NetworkEvent {
	ids := make([]int, 0, len(c.categories))
	for id := range c.categories {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	var events []models.NetworkEvent

	for _, id := range ids {
		cat := c.categories[id]

		records, err := c.source.Query(ctx, id, since)
		if err != nil {
			c.log.Warn().Err(err).Int("event_id", id).Msg("Event query failed, continuing with remaining categories")
			continue
		}

		for _, rec := range records {
			events = append(events, models.NetworkEvent{
				Timestamp:   rec.Timestamp,
				KindID:      rec.EventID,
				Description: cat.Description,
				Severity:    cat.Severity,
				Message:     rec.Message,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	return events
}
