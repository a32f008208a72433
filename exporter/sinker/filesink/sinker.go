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

// Package filesink writes AuditRecords as newline-delimited JSON to a
// rotated local file (or stdout), for deployments that don't run Mongo.
package filesink

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/x12d/x12d/exporter"
)

func init() {
	exporter.Register("file", New)
}

type Sinker struct {
	wr      io.WriteCloser
	encoder *json.Encoder
	cfg     *exporter.FileConfig
}

func New(conf exporter.Config) (exporter.Sinker, error) {
	cfg := &conf.File
	cfg.Validate()

	var wr io.WriteCloser
	switch {
	case cfg.Console:
		wr = os.Stdout
	default:
		wr = &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			LocalTime:  true,
		}
	}

	return &Sinker{
		wr:      wr,
		cfg:     cfg,
		encoder: json.NewEncoder(wr),
	}, nil
}

func (s *Sinker) Name() string {
	return "file"
}

func (s *Sinker) Sink(record exporter.AuditRecord) error {
	return s.encoder.Encode(record)
}

func (s *Sinker) Close() error {
	if s.cfg.Console {
		return nil
	}
	return s.wr.Close()
}
