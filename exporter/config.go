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

package exporter

import "time"

const defaultTimeout = 10 * time.Second

// Config aggregates every sinker's free-form configuration block, each
// enabled independently so a deployment can mirror audit records to
// several destinations at once.
type Config struct {
	Mongo MongoConfig `config:"mongo"`
	File  FileConfig  `config:"file"`
}

// MongoConfig configures the mongosink Sinker.
type MongoConfig struct {
	Enabled    bool          `config:"enabled"`
	URI        string        `config:"uri"`
	Database   string        `config:"database"`
	Collection string        `config:"collection"`
	Timeout    time.Duration `config:"timeout"`
}

func (mc *MongoConfig) Validate() error {
	if mc.Database == "" {
		mc.Database = "x12d"
	}
	if mc.Collection == "" {
		mc.Collection = "audit_records"
	}
	if mc.Timeout <= 0 {
		mc.Timeout = defaultTimeout
	}
	return nil
}

// FileConfig configures the filesink Sinker.
type FileConfig struct {
	Enabled    bool   `config:"enabled"`
	Console    bool   `config:"console"`
	Filename   string `config:"filename"`
	MaxSize    int    `config:"maxSize"`
	MaxBackups int    `config:"maxBackups"`
	MaxAge     int    `config:"maxAge"`
}

func (fc *FileConfig) Validate() {
	if fc.Filename == "" {
		fc.Filename = "x12d-audit.log"
	}
	if fc.MaxSize <= 0 {
		fc.MaxSize = 100
	}
	if fc.MaxAge <= 0 {
		fc.MaxAge = 7
	}
	if fc.MaxBackups <= 0 {
		fc.MaxBackups = 10
	}
}
