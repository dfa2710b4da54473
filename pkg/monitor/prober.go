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

package monitor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

// iffUp is the administrative up bit in the interface flags word.
const iffUp = 0x1

// StateProber fetches the current observed state of one adapter.
type StateProber interface {
	Probe(ctx context.Context, name string) (models.AdapterState, error)
}

// SysfsProber reads adapter state from the kernel's network sysfs tree.
// The carrier attribute is unreadable while the interface is down; that is
// treated as "not applicable", not an error.
type SysfsProber struct {
	// SysfsRoot is overridable for tests; defaults to /sys/class/net.
	SysfsRoot string
}

func NewSysfsProber() *SysfsProber {
	return &SysfsProber{SysfsRoot: "/sys/class/net"}
}

func (p *SysfsProber) Probe(ctx context.Context, name string) (models.AdapterState, error) {
	if err := ctx.Err(); err != nil {
		return models.AdapterState{}, err
	}

	base := filepath.Join(p.SysfsRoot, name)

	st := models.AdapterState{
		Name:       name,
		ObservedAt: time.Now(),
	}

	flagsRaw, err := os.ReadFile(filepath.Join(base, "flags"))
	if err != nil {
		return st, fmt.Errorf("failed to read flags for '%s': %w", name, err)
	}

	flags, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(string(flagsRaw)), "0x"), 16, 64)
	if err != nil {
		return st, fmt.Errorf("failed to parse flags for '%s': %w", name, err)
	}

	st.AdminStatus = models.AdminDown
	if flags&iffUp != 0 {
		st.AdminStatus = models.AdminUp
	}

	st.MediaConnect = models.MediaUnknown

	if carrier, err := os.ReadFile(filepath.Join(base, "carrier")); err == nil {
		if strings.TrimSpace(string(carrier)) == "1" {
			st.MediaConnect = models.MediaConnected
		} else {
			st.MediaConnect = models.MediaDisconnected
		}
	}

	st.OperStatus = "unknown"

	if oper, err := os.ReadFile(filepath.Join(base, "operstate")); err == nil {
		st.OperStatus = strings.TrimSpace(string(oper))
	}

	return st, nil
}
