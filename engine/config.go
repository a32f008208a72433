// Copyright 2025 The x12d Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

// Config carries the engine's own knobs, on top of the driver/validate/
// server/exporter sections it loads independently.
type Config struct {
	// MaxErrors bounds findings retained per validation run; 0 falls back
	// to validate.MaxErrors.
	MaxErrors int `config:"maxErrors"`
}
