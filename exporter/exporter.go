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

// Package exporter mirrors completed validation runs to an audit-trail
// sink, independent of whatever consumer triggered the parse (the HTTP
// server or the CLI). A sink is purely a side-effect: its failure never
// affects the validation result already returned to the caller.
package exporter

import (
	"time"

	"github.com/x12d/x12d/confengine"
	"github.com/x12d/x12d/logger"
	"github.com/x12d/x12d/x12"
)

// AuditRecord is one completed interchange parse, as handed to every
// enabled Sinker.
type AuditRecord struct {
	RunID     string
	Source    string // e.g. "http", "cli"
	Document  string // caller-supplied identifier, not the document bytes
	Stats     x12.Stats
	Findings  []string
	Timestamp time.Time
}

// Sinker writes AuditRecords to a specific destination.
type Sinker interface {
	// Name identifies the sinker, matching its registry key.
	Name() string

	// Sink persists one AuditRecord.
	Sink(record AuditRecord) error

	// Close releases any held resources.
	Close() error
}

// CreateFunc builds a Sinker from its config section.
type CreateFunc func(conf Config) (Sinker, error)

var sinkFactory = map[string]CreateFunc{}

// Register adds a sinker constructor under name. Intended to be called
// from an init() in the package defining the sinker.
func Register(name string, f CreateFunc) {
	sinkFactory[name] = f
}

// Get looks up a previously Registered constructor.
func Get(name string) (CreateFunc, bool) {
	f, ok := sinkFactory[name]
	return f, ok
}

// Exporter fans an AuditRecord out to every sinker enabled in its config.
type Exporter struct {
	sinkers []Sinker
}

// New builds an Exporter from configuration, constructing a Sinker for
// every registered name whose config section sets `enabled: true`.
func New(conf *confengine.Config) (*Exporter, error) {
	var cfg Config
	if err := conf.UnpackChild("exporter", &cfg); err != nil {
		return nil, err
	}

	var sinkers []Sinker
	for name, enabled := range map[string]bool{
		"mongo": cfg.Mongo.Enabled,
		"file":  cfg.File.Enabled,
	} {
		if !enabled {
			continue
		}
		f, ok := Get(name)
		if !ok {
			continue
		}
		s, err := f(cfg)
		if err != nil {
			return nil, err
		}
		sinkers = append(sinkers, s)
	}
	return &Exporter{sinkers: sinkers}, nil
}

// Export hands record to every enabled sinker, logging but not
// propagating individual sink failures: an audit-trail write never
// aborts or delays the caller that triggered the parse.
func (e *Exporter) Export(record AuditRecord) {
	for _, s := range e.sinkers {
		if err := s.Sink(record); err != nil {
			logger.Errorf("sink %s failed: %v", s.Name(), err)
		}
	}
}

// Close releases every sinker's resources.
func (e *Exporter) Close() {
	for _, s := range e.sinkers {
		if err := s.Close(); err != nil {
			logger.Errorf("close sinker %s failed: %v", s.Name(), err)
		}
	}
}
