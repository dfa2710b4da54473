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

package classify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/carverauto/netwatch/pkg/models"
)

// arphrdEther is the sysfs interface type for wired Ethernet.
const arphrdEther = "1"

// Enumerator lists the adapters present on a host. The Physical field of the
// returned adapters is left unset; classification is a separate step.
type Enumerator interface {
	Enumerate(ctx context.Context) ([]models.Adapter, error)
}

// HostEnumerator enumerates adapters via gopsutil, augmented with the
// interface type and driver name from sysfs where available.
type HostEnumerator struct {
	// SysfsRoot is overridable for tests; defaults to /sys/class/net.
	SysfsRoot string
}

func NewHostEnumerator() *HostEnumerator {
	return &HostEnumerator{SysfsRoot: "/sys/class/net"}
}

func (e *HostEnumerator) Enumerate(ctx context.Context) ([]models.Adapter, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate interfaces: %w", err)
	}

	adapters := make([]models.Adapter, 0, len(ifaces))

	for _, iface := range ifaces {
		adapters = append(adapters, models.Adapter{
			Name:        iface.Name,
			Description: e.driverName(iface.Name),
			MediaType:   e.mediaType(iface.Name),
		})
	}

	return adapters, nil
}

// mediaType maps the sysfs interface type onto the declared media type. An
// unreadable type file means the attribute is not applicable, not an error.
func (e *HostEnumerator) mediaType(name string) string {
	data, err := os.ReadFile(filepath.Join(e.SysfsRoot, name, "type"))
	if err != nil {
		return models.MediaTypeOther
	}

	if strings.TrimSpace(string(data)) == arphrdEther {
		return models.MediaTypeEthernet
	}

	return models.MediaTypeOther
}

// driverName pulls the DRIVER= line from the device uevent, giving a rough
// hardware description for substring matching. Absent for virtual devices.
func (e *HostEnumerator) driverName(name string) string {
	data, err := os.ReadFile(filepath.Join(e.SysfsRoot, name, "device", "uevent"))
	if err != nil {
		return ""
	}

	for _, line := range strings.Split(string(data), "\n") {
		if driver, ok := strings.CutPrefix(line, "DRIVER="); ok {
			return driver
		}
	}

	return ""
}
