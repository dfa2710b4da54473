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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

var errQueryBroken = errors.New("query broken")

// fakeSource serves canned records per event kind and can fail selected
// kinds.
type fakeSource struct {
	records map[int][]Record
	failing map[int]bool
	queries int
}

func (s *fakeSource) Query(_ context.Context, kindID int, since time.Time) ([]Record, error) {
	s.queries++

	if s.failing[kindID] {
		return nil, errQueryBroken
	}

	var out []Record

	for _, rec := range s.records[kindID] {
		if !rec.Timestamp.Before(since) {
			out = append(out, rec)
		}
	}

	return out, nil
}

func TestCollectNormalizesAndSortsDescending(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	src := &fakeSource{records: map[int][]Record{
		27:   {{Timestamp: base, EventID: 27, Message: `Adapter "Ethernet0" disabled`}},
		1129: {{Timestamp: base.Add(15 * time.Second), EventID: 1129, Message: "connectivity lost"}},
		32:   {{Timestamp: base.Add(-time.Minute), EventID: 32, Message: "link established"}},
	}}

	c := NewCollector(src, logger.NewTestLogger())
	events := c.Collect(context.Background(), base.Add(-time.Hour))

	require.Len(t, events, 3)
	assert.Equal(t, 1129, events[0].KindID)
	assert.Equal(t, 27, events[1].KindID)
	assert.Equal(t, 32, events[2].KindID)

	assert.Equal(t, "Network adapter disabled", events[1].Description)
	assert.Equal(t, models.SeverityCritical, events[1].Severity)
	assert.Equal(t, `Adapter "Ethernet0" disabled`, events[1].Message)
}

func TestCollectIsolatesCategoryFailures(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	src := &fakeSource{
		records: map[int][]Record{
			27:   {{Timestamp: base, EventID: 27}},
			4202: {{Timestamp: base, EventID: 4202}},
		},
		failing: map[int]bool{27: true},
	}

	c := NewCollector(src, logger.NewTestLogger())
	events := c.Collect(context.Background(), base.Add(-time.Hour))

	// The failing kind is skipped; the rest are still collected.
	require.Len(t, events, 1)
	assert.Equal(t, 4202, events[0].KindID)
	assert.Equal(t, len(Categories()), src.queries)
}

func TestCollectIsIdempotentOverFixedWindow(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	src := &fakeSource{records: map[int][]Record{
		27:   {{Timestamp: base, EventID: 27, Message: "a"}, {Timestamp: base, EventID: 27, Message: "a"}},
		1129: {{Timestamp: base.Add(time.Second), EventID: 1129, Message: "b"}},
	}}

	c := NewCollector(src, logger.NewTestLogger())
	since := base.Add(-time.Hour)

	first := c.Collect(context.Background(), since)
	second := c.Collect(context.Background(), since)

	// Duplicate raw records yield duplicate events, and repeated collection
	// over the same window yields the same set.
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestCollectHonorsLookbackWindow(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	src := &fakeSource{records: map[int][]Record{
		27: {
			{Timestamp: base.Add(-25 * time.Hour), EventID: 27},
			{Timestamp: base.Add(-time.Hour), EventID: 27},
		},
	}}

	c := NewCollector(src, logger.NewTestLogger())
	events := c.Collect(context.Background(), base.Add(-24*time.Hour))

	require.Len(t, events, 1)
	assert.Equal(t, base.Add(-time.Hour), events[0].Timestamp)
}

func TestDisconnectKinds(t *testing.T) {
	kinds := DisconnectKinds()

	for _, id := range []int{27, 1129, 4202, 10400} {
		assert.True(t, kinds[id], "kind %d should be a disconnect anchor", id)
	}

	for _, id := range []int{32, 4201, 10401} {
		assert.False(t, kinds[id], "kind %d should not be a disconnect anchor", id)
	}
}
