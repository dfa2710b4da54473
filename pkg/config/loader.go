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

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Validator allows a configuration struct to validate itself after loading.
type Validator interface {
	Validate() error
}

// FileConfigLoader loads configuration from a local JSON file.
type FileConfigLoader struct{}

// Load reads and unmarshals a JSON file into dst.
func (*FileConfigLoader) Load(_ context.Context, path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	return nil
}

// LoadAndValidate loads configuration from path into dst and runs its
// Validate method when implemented.
func LoadAndValidate(ctx context.Context, path string, dst interface{}) error {
	loader := &FileConfigLoader{}

	if err := loader.Load(ctx, path, dst); err != nil {
		return err
	}

	if v, ok := dst.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid configuration in '%s': %w", path, err)
		}
	}

	return nil
}
