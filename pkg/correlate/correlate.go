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

// Package correlate annotates disconnect-class events with the other events
// observed inside a fixed time window around them.
package correlate

import (
	"time"

	"github.com/carverauto/netwatch/pkg/classify"
	"github.com/carverauto/netwatch/pkg/eventlog"
	"github.com/carverauto/netwatch/pkg/models"
)

// Window is the fixed span around an anchor within which other events count
// as contextually related.
const Window = 30 * time.Second

// Engine computes correlation results over a collected event set.
// Correlation is symmetric in time but asymmetric in role: only
// disconnect-class events act as anchors.
type Engine struct {
	window time.Duration
	kinds  map[int]bool
}

func NewEngine() *Engine {
	return &Engine{
		window: Window,
		kinds:  eventlog.DisconnectKinds(),
	}
}

// Correlate selects the disconnect-class anchors from events, attributes
// each to a physical adapter where the message permits, and attaches every
// other event inside the ±window whose kind differs from the anchor's.
// Anchors whose adapter cannot be identified are still reported, flagged as
// unattributed.
func (e *Engine) Correlate(events []models.NetworkEvent, adapters classify.Partition) []models.CorrelationResult {
	var results []models.CorrelationResult

	for _, anchor := range events {
		if !e.kinds[anchor.KindID] {
			continue
		}

		res := models.CorrelationResult{Anchor: anchor}

		if name, ok := ExtractAdapterName(anchor.Message); ok {
			if a, matched := adapters.MatchPhysical(name); matched {
				res.AdapterName = a.Name
				res.Physical = true
			} else {
				res.AdapterName = name
			}
		}

		res.Correlated = e.windowScan(events, anchor)
		results = append(results, res)
	}

	return results
}

func (e *Engine) windowScan(events []models.NetworkEvent, anchor models.NetworkEvent) []models.NetworkEvent {
	var related []models.NetworkEvent

	for _, ev := range events {
		if ev.KindID == anchor.KindID {
			continue
		}

		delta := ev.Timestamp.Sub(anchor.Timestamp)
		if delta < 0 {
			delta = -delta
		}

		if delta <= e.window {
			related = append(related, ev)
		}
	}

	return related
}
