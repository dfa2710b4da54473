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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netwatch/pkg/models"
)

func writeSysfs(t *testing.T, root, iface, file, content string) {
	t.Helper()

	dir := filepath.Join(root, iface, filepath.Dir(file))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, iface, file), []byte(content), 0o644))
}

func TestMediaType(t *testing.T) {
	root := t.TempDir()
	e := &HostEnumerator{SysfsRoot: root}

	writeSysfs(t, root, "eth0", "type", "1\n")
	writeSysfs(t, root, "ppp0", "type", "512\n")

	assert.Equal(t, models.MediaTypeEthernet, e.mediaType("eth0"))
	assert.Equal(t, models.MediaTypeOther, e.mediaType("ppp0"))

	// Missing type attribute is not applicable, not an error.
	assert.Equal(t, models.MediaTypeOther, e.mediaType("missing"))
}

func TestDriverName(t *testing.T) {
	root := t.TempDir()
	e := &HostEnumerator{SysfsRoot: root}

	writeSysfs(t, root, "eth0", "device/uevent", "DRIVER=e1000e\nPCI_CLASS=20000\n")

	assert.Equal(t, "e1000e", e.driverName("eth0"))
	assert.Empty(t, e.driverName("veth0"))
}
