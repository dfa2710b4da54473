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

package correlate

import "strings"

// ExtractAdapterName pulls an adapter name out of a free-text event message
// by taking the first quoted segment. This is best-effort entity extraction
// from unstructured text: it never fails hard, and a missing or unclosed
// quote simply yields no match, so correlation degrades to an unattributed
// anchor instead of an error.
func ExtractAdapterName(message string) (string, bool) {
	parts := strings.Split(message, `"`)
	if len(parts) < 3 {
		return "", false
	}

	name := strings.TrimSpace(parts[1])
	if name == "" {
		return "", false
	}

	return name, true
}
