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

// Package classify partitions network adapters into physical wired-Ethernet
// interfaces and everything else (virtual switches, tunnels, wireless).
// The partition is computed once per run and treated as immutable afterward.
package classify

import (
	"strings"

	"github.com/carverauto/netwatch/pkg/models"
)

// virtualMarkers are substrings of adapter names or descriptions that denote
// virtualization, tunnel or wireless technologies. Matching is
// case-insensitive.
var virtualMarkers = []string{
	"virtual",
	"vmware",
	"hyper-v",
	"vethernet",
	"veth",
	"vmnet",
	"vbox",
	"tap",
	"tun",
	"wg",
	"wireguard",
	"vpn",
	"loopback",
	"docker",
	"bridge",
	"br-",
	"bluetooth",
	"wi-fi",
	"wireless",
	"wlan",
	"802.11",
	"isatap",
	"teredo",
}

// Partition is the result of classifying a set of adapters.
type Partition struct {
	Physical []models.Adapter
	Virtual  []models.Adapter
}

// Classify labels each adapter as physical or virtual. An adapter is virtual
// when its name or description contains a virtual-technology marker, or when
// its declared media type is not wired Ethernet. Everything else is physical.
func Classify(adapters []models.Adapter) Partition {
	var p Partition

	for _, a := range adapters {
		a.Physical = isPhysical(a)

		if a.Physical {
			p.Physical = append(p.Physical, a)
		} else {
			p.Virtual = append(p.Virtual, a)
		}
	}

	return p
}

func isPhysical(a models.Adapter) bool {
	if a.MediaType != models.MediaTypeEthernet {
		return false
	}

	name := strings.ToLower(a.Name)
	desc := strings.ToLower(a.Description)

	for _, marker := range virtualMarkers {
		if strings.Contains(name, marker) || strings.Contains(desc, marker) {
			return false
		}
	}

	return true
}

// MatchPhysical resolves an adapter name extracted from an event message to
// a physical adapter. An exact name match wins; otherwise the first physical
// adapter whose name or description contains the candidate is used. The
// substring fallback can misattribute when one adapter's name appears inside
// another's description; first match wins and this is a known ambiguity of
// the heuristic.
func (p Partition) MatchPhysical(name string) (models.Adapter, bool) {
	if name == "" {
		return models.Adapter{}, false
	}

	lower := strings.ToLower(name)

	for _, a := range p.Physical {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}

	for _, a := range p.Physical {
		if strings.Contains(strings.ToLower(a.Name), lower) ||
			strings.Contains(strings.ToLower(a.Description), lower) {
			return a, true
		}
	}

	return models.Adapter{}, false
}
