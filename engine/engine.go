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

// Package engine wires the driver, validate, server and exporter packages
// together into one runnable program: it owns configuration loading,
// logger setup, and the lifecycle (Start/Reload/Stop) a host process
// drives.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/x12d/x12d/common"
	"github.com/x12d/x12d/confengine"
	"github.com/x12d/x12d/driver"
	"github.com/x12d/x12d/exporter"

	// Sinkers register themselves with the exporter package on import.
	_ "github.com/x12d/x12d/exporter/sinker/filesink"
	_ "github.com/x12d/x12d/exporter/sinker/mongosink"

	"github.com/x12d/x12d/logger"
	"github.com/x12d/x12d/server"
	"github.com/x12d/x12d/validate"
	"github.com/x12d/x12d/x12"
)

// Engine orchestrates one running instance of the program: HTTP server
// (if enabled), audit exporter, and the per-request validation path.
type Engine struct {
	ctx    context.Context
	cancel context.CancelFunc

	conf      *confengine.Config
	cfg       Config
	buildInfo common.BuildInfo

	driverCfg driver.Config
	svr       *server.Server
	exp       *exporter.Exporter
}

func setupLogger(conf *confengine.Config) error {
	var opts logger.Options
	if err := conf.UnpackChild("logger", &opts); err != nil {
		return err
	}

	if opts.Filename == "" {
		opts.Filename = "x12d.log"
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 10
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 7
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = 100
	}

	logger.SetOptions(opts)
	return nil
}

// New builds an Engine from configuration.
func New(conf *confengine.Config, buildInfo common.BuildInfo) (*Engine, error) {
	if err := setupLogger(conf); err != nil {
		return nil, err
	}

	var cfg Config
	if err := conf.UnpackChild("engine", &cfg); err != nil {
		return nil, err
	}
	if cfg.MaxErrors <= 0 {
		cfg.MaxErrors = validate.MaxErrors
	}

	var driverCfg driver.Config
	if err := conf.UnpackChild("driver", &driverCfg); err != nil {
		return nil, err
	}

	exp, err := exporter.New(conf)
	if err != nil {
		return nil, err
	}

	svr, err := server.New(conf)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		ctx:       ctx,
		cancel:    cancel,
		conf:      conf,
		cfg:       cfg,
		buildInfo: buildInfo,
		driverCfg: driverCfg,
		svr:       svr,
		exp:       exp,
	}, nil
}

// Start registers the HTTP routes and, if the server is enabled, begins
// serving in the background.
func (e *Engine) Start() error {
	e.setupRoutes()

	if e.svr != nil {
		go func() {
			if err := e.svr.ListenAndServe(); err != nil {
				logger.Errorf("failed to start server: %v", err)
			}
		}()
	}
	return nil
}

// Stop releases the exporter's sinkers and cancels any in-flight work.
func (e *Engine) Stop() {
	e.exp.Close()
	e.cancel()
}

// Reload re-reads the driver and logger sections of conf; the validate
// section is re-read on every Validate call, so no caching to invalidate
// there.
func (e *Engine) Reload(conf *confengine.Config) error {
	if err := setupLogger(conf); err != nil {
		return err
	}

	var driverCfg driver.Config
	if err := conf.UnpackChild("driver", &driverCfg); err != nil {
		return err
	}

	e.conf = conf
	e.driverCfg = driverCfg
	return nil
}

// Report is the outcome of validating one document.
type Report struct {
	RunID    string                      `json:"run_id"`
	Stats    x12.Stats                   `json:"stats"`
	ParseErr string                      `json:"parse_error,omitempty"`
	Findings []*validate.ValidationError `json:"findings"`
}

// Validate drives r through a freshly built Suite and Driver, then
// records the outcome to every enabled exporter sinker. A fresh Suite is
// built per call so concurrent requests never share validator state —
// each call behaves like a standalone, single-threaded parse.
func (e *Engine) Validate(ctx context.Context, source string, r io.Reader) (*Report, error) {
	suite, err := validate.Load(e.conf, e.cfg.MaxErrors)
	if err != nil {
		return nil, err
	}

	drv := driver.New(e.driverCfg, suite)
	stats, parseErr := drv.Run(ctx, r)

	report := &Report{
		RunID:    drv.RunID(),
		Stats:    stats,
		Findings: suite.Findings(),
	}
	if parseErr != nil {
		report.ParseErr = parseErr.Error()
	}

	e.exp.Export(exporter.AuditRecord{
		RunID:     drv.RunID(),
		Source:    source,
		Document:  source,
		Stats:     stats,
		Findings:  findingMessages(report.Findings),
		Timestamp: time.Now(),
	})

	return report, nil
}

func findingMessages(findings []*validate.ValidationError) []string {
	if len(findings) == 0 {
		return nil
	}
	messages := make([]string, len(findings))
	for i, f := range findings {
		messages[i] = f.Error()
	}
	return messages
}
